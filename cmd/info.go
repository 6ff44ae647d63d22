package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/api"
	"github.com/dataroom/cli/internal/cache"
	"github.com/dataroom/cli/internal/output"
)

var infoCmd = &cobra.Command{
	Use:   "info <file-id>",
	Short: "Show a file's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		fileID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid file id %q", args[0])
		}
		wsID, err := workspaceID()
		if err != nil {
			return err
		}
		file, err := cache.Fetch(store, cache.FileKey(wsID, fileID), []string{cache.FilesTag(wsID)}, func() (*api.DataRoomFile, error) {
			return apiClient.GetFile(wsID, fileID)
		})
		if err != nil {
			return fmt.Errorf("fetching file: %w", err)
		}
		if flagJSON {
			output.JSON(file)
			return nil
		}
		output.FileDetail(*file)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
