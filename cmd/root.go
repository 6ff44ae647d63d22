package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/api"
	"github.com/dataroom/cli/internal/cache"
	"github.com/dataroom/cli/internal/session"
)

var (
	flagJSON      bool
	flagServerURL string
	flagWorkspace int64

	sess      *session.Session
	apiClient *api.Client
	store     *cache.Store
)

var rootCmd = &cobra.Command{
	Use:   "dataroom",
	Short: "DataRoom CLI — workspaces and file imports from the terminal",
	Long: `DataRoom CLI lets you manage workspaces, browse Google Drive and
import documents into your data room without leaving the terminal.

Get started:
  dataroom login --credential X   Authenticate with a Google ID credential
  dataroom workspace list         List your workspaces
  dataroom workspace use 3        Select a workspace
  dataroom drive connect          Authorize Google Drive access
  dataroom import <drive-file-id> Import a Drive file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := session.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving session path: %w", err)
		}
		sess, err = session.Load(path)
		if err != nil {
			return fmt.Errorf("loading session: %w", err)
		}
		if flagServerURL != "" {
			sess.ServerURL = flagServerURL
		}
		apiClient = api.NewClient(sess.ServerURL, sess.Token)
		store = cache.New(0)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Override server URL (default: from session or http://localhost:5000)")
	rootCmd.PersistentFlags().Int64Var(&flagWorkspace, "workspace", 0, "Workspace ID (default: the selected workspace)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// requireAuth returns an error if no usable token is configured.
func requireAuth() error {
	if sess == nil || !sess.HasToken() {
		return fmt.Errorf("not authenticated — run \"dataroom login\" first")
	}
	if sess.TokenExpired() {
		return fmt.Errorf("session expired — run \"dataroom login\" again")
	}
	return nil
}

// workspaceID resolves the target workspace: the --workspace flag wins over
// the session's selection.
func workspaceID() (int64, error) {
	if flagWorkspace != 0 {
		return flagWorkspace, nil
	}
	if sess.CurrentWorkspaceID != 0 {
		return sess.CurrentWorkspaceID, nil
	}
	return 0, fmt.Errorf("no workspace selected — run \"dataroom workspace use <id>\" or pass --workspace")
}

// currentWorkspace fetches the target workspace through the query cache.
func currentWorkspace() (*api.Workspace, error) {
	id, err := workspaceID()
	if err != nil {
		return nil, err
	}
	return cache.Fetch(store, cache.WorkspaceKey(id), []string{cache.WorkspacesTag()}, func() (*api.Workspace, error) {
		return apiClient.GetWorkspace(id)
	})
}
