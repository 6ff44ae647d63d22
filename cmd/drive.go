package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/drive"
	"github.com/dataroom/cli/internal/output"
	"github.com/dataroom/cli/internal/session"
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Browse Google Drive",
}

var driveConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Authorize read-only Google Drive access",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID := session.DriveClientID()
		if clientID == "" {
			return fmt.Errorf("GOOGLE_CLIENT_ID is not set")
		}
		cfg := drive.OAuthConfig(clientID, session.DriveClientSecret())

		fmt.Println("Opening browser for Google Drive consent...")
		tok, err := drive.Authorize(cmd.Context(), cfg, openBrowser)
		if err != nil {
			return fmt.Errorf("authorizing: %w", err)
		}

		sess.DriveToken = tok.AccessToken
		if err := sess.Save(); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Println("Google Drive connected.")
		return nil
	},
}

var driveLsCmd = &cobra.Command{
	Use:   "ls [folder-id]",
	Short: "List a Google Drive folder (default: root)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := driveClient()
		if err != nil {
			return err
		}
		folderID := drive.RootFolderID
		if len(args) > 0 {
			folderID = args[0]
		}
		files, err := client.ListFolder(cmd.Context(), folderID)
		if err != nil {
			return fmt.Errorf("listing folder: %w", err)
		}
		if flagJSON {
			output.JSON(files)
			return nil
		}
		output.DriveFileTable(files)
		return nil
	},
}

var driveSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Google Drive by file name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := driveClient()
		if err != nil {
			return err
		}
		files, err := client.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}
		if flagJSON {
			output.JSON(files)
			return nil
		}
		output.DriveFileTable(files)
		return nil
	},
}

// driveClient builds a Drive client from the stored token.
func driveClient() (*drive.Client, error) {
	if !sess.HasDriveToken() {
		return nil, fmt.Errorf("not connected to Google Drive — run \"dataroom drive connect\" first")
	}
	return drive.NewClient(sess.DriveToken), nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}
	return cmd.Start()
}

func init() {
	driveCmd.AddCommand(driveConnectCmd, driveLsCmd, driveSearchCmd)
	rootCmd.AddCommand(driveCmd)
}
