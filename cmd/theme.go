package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/session"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the UI theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(sess.Theme)
			return nil
		}
		theme, err := session.ParseTheme(args[0])
		if err != nil {
			return err
		}
		sess.Theme = theme
		if err := sess.Save(); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Theme set to %s\n", theme)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
