package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		user, err := apiClient.Me()
		if err != nil {
			return fmt.Errorf("fetching user: %w", err)
		}
		if flagJSON {
			output.JSON(user)
			return nil
		}
		output.UserInfo(*user)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
