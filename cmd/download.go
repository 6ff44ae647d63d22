package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/permissions"
)

var flagOutput string

var downloadCmd = &cobra.Command{
	Use:   "download <file-id>",
	Short: "Download a file from the current workspace",
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
		if !permissions.CanDownloadFile(sess.User, ws) {
			return fmt.Errorf("you are not a member of workspace %q", ws.Name)
		}
		file, err := apiClient.GetFile(ws.ID, fileID)
		if err != nil {
			return fmt.Errorf("fetching file: %w", err)
		}

		dest := flagOutput
		if dest == "" {
			dest = file.Name
		}
		out, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("creating %s: %w", dest, err)
		}
		defer out.Close()

		if err := apiClient.DownloadFile(ws.ID, fileID, out); err != nil {
			os.Remove(dest)
			return fmt.Errorf("downloading: %w", err)
		}
		fmt.Printf("Downloaded %q to %s\n", file.Name, dest)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Destination path (default: the file's name)")
	rootCmd.AddCommand(downloadCmd)
}
