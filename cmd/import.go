package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/drive"
	"github.com/dataroom/cli/internal/importer"
	"github.com/dataroom/cli/internal/output"
	"github.com/dataroom/cli/internal/permissions"
)

var importCmd = &cobra.Command{
	Use:   "import <drive-file-id>...",
	Short: "Import Google Drive files into the current workspace",
	Long: `Import one or more Google Drive files into the current workspace.
Native Google Docs are exported to the matching Office format (.docx, .xlsx,
.pptx) before upload; other files are copied as-is.

Files are imported one at a time. A failed file is reported and skipped; the
rest of the batch continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		client, err := driveClient()
		if err != nil {
			return err
		}
		ws, err := currentWorkspace()
		if err != nil {
			return err
		}
		if !permissions.CanImportFiles(sess.User, ws) {
			return fmt.Errorf("your role in %q does not allow importing files", ws.Name)
		}

		selection := make([]drive.File, 0, len(args))
		for _, id := range args {
			f, err := client.GetFile(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("resolving drive file %s: %w", id, err)
			}
			if f.IsFolder() {
				return fmt.Errorf("%q is a folder — select files to import", f.Name)
			}
			selection = append(selection, *f)
		}

		batch := importer.New(client, apiClient, store, importer.WithSink(output.NewProgressSink()))
		if err := batch.Select(selection); err != nil {
			return err
		}
		sum, err := batch.Run(cmd.Context(), ws.ID)
		if err != nil {
			return err
		}
		if sum.Failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed to import", sum.Failed, sum.Failed+sum.Succeeded)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
