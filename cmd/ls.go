package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/api"
	"github.com/dataroom/cli/internal/cache"
	"github.com/dataroom/cli/internal/output"
	"github.com/dataroom/cli/internal/permissions"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List files in the current workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ws, err := currentWorkspace()
		if err != nil {
			return err
		}
		if !permissions.CanViewFile(sess.User, ws) {
			return fmt.Errorf("you are not a member of workspace %q", ws.Name)
		}
		files, err := cache.Fetch(store, cache.FilesKey(ws.ID), []string{cache.FilesTag(ws.ID)}, func() ([]api.DataRoomFile, error) {
			return apiClient.ListFiles(ws.ID)
		})
		if err != nil {
			return fmt.Errorf("listing files: %w", err)
		}
		if flagJSON {
			output.JSON(files)
			return nil
		}
		output.FileTable(files)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
