package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if sess.HasToken() {
			// Best effort: local state is cleared even if the server call fails.
			if err := apiClient.Logout(); err != nil {
				fmt.Printf("Warning: server logout failed: %v\n", err)
			}
		}
		sess.ClearAuth()
		if err := sess.Save(); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
