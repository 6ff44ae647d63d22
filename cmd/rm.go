package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/cache"
	"github.com/dataroom/cli/internal/permissions"
)

var rmCmd = &cobra.Command{
	Use:   "rm <file-id>",
	Short: "Delete a file from the current workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		fileID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid file id %q", args[0])
		}
		ws, err := currentWorkspace()
		if err != nil {
			return err
		}
		file, err := apiClient.GetFile(ws.ID, fileID)
		if err != nil {
			return fmt.Errorf("fetching file: %w", err)
		}
		// Checked here to avoid a doomed request; the server enforces the
		// same rule.
		if !permissions.CanDeleteFile(sess.User, ws, file) {
			return fmt.Errorf("you cannot delete %q — admins delete any file, editors only their own", file.Name)
		}
		if err := apiClient.DeleteFile(ws.ID, fileID); err != nil {
			return fmt.Errorf("deleting file: %w", err)
		}
		store.Invalidate(cache.FilesTag(ws.ID))
		fmt.Printf("Deleted %q\n", file.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
