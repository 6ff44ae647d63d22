package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/api"
	"github.com/dataroom/cli/internal/cache"
	"github.com/dataroom/cli/internal/output"
)

var (
	flagWsName        string
	flagWsDescription string
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Manage workspaces",
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		workspaces, err := cache.Fetch(store, cache.WorkspacesKey(), []string{cache.WorkspacesTag()}, func() ([]api.Workspace, error) {
			return apiClient.ListWorkspaces()
		})
		if err != nil {
			return fmt.Errorf("listing workspaces: %w", err)
		}
		if flagJSON {
			output.JSON(workspaces)
			return nil
		}
		output.WorkspaceTable(workspaces, sess.CurrentWorkspaceID)
		return nil
	},
}

var workspaceInfoCmd = &cobra.Command{
	Use:   "info [id]",
	Short: "Show a workspace and its members",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if len(args) > 0 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid workspace id %q", args[0])
			}
			flagWorkspace = id
		}
		ws, err := currentWorkspace()
		if err != nil {
			return err
		}
		if flagJSON {
			output.JSON(ws)
			return nil
		}
		output.WorkspaceDetail(*ws)
		return nil
	},
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		ws, err := apiClient.CreateWorkspace(api.CreateWorkspaceRequest{
			Name:        args[0],
			Description: flagWsDescription,
		})
		if err != nil {
			return fmt.Errorf("creating workspace: %w", err)
		}
		store.Invalidate(cache.WorkspacesTag())
		fmt.Printf("Created workspace %q (id %d)\n", ws.Name, ws.ID)
		return nil
	},
}

var workspaceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a workspace's name or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid workspace id %q", args[0])
		}
		req := api.UpdateWorkspaceRequest{}
		if cmd.Flags().Changed("name") {
			req.Name = &flagWsName
		}
		if cmd.Flags().Changed("description") {
			req.Description = &flagWsDescription
		}
		if req.Name == nil && req.Description == nil {
			return fmt.Errorf("pass --name and/or --description")
		}
		ws, err := apiClient.UpdateWorkspace(id, req)
		if err != nil {
			return fmt.Errorf("updating workspace: %w", err)
		}
		store.Invalidate(cache.WorkspacesTag())
		fmt.Printf("Updated workspace %q\n", ws.Name)
		return nil
	},
}

var workspaceRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid workspace id %q", args[0])
		}
		if err := apiClient.DeleteWorkspace(id); err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}
		store.Invalidate(cache.WorkspacesTag(), cache.FilesTag(id))
		if sess.CurrentWorkspaceID == id {
			sess.CurrentWorkspaceID = 0
			_ = sess.Save()
		}
		fmt.Println("Workspace deleted.")
		return nil
	},
}

var workspaceUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Select the current workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid workspace id %q", args[0])
		}
		ws, err := apiClient.GetWorkspace(id)
		if err != nil {
			return fmt.Errorf("fetching workspace: %w", err)
		}
		sess.CurrentWorkspaceID = ws.ID
		if err := sess.Save(); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Using workspace %q (id %d)\n", ws.Name, ws.ID)
		return nil
	},
}

func init() {
	workspaceCreateCmd.Flags().StringVar(&flagWsDescription, "description", "", "Workspace description")
	workspaceUpdateCmd.Flags().StringVar(&flagWsName, "name", "", "New name")
	workspaceUpdateCmd.Flags().StringVar(&flagWsDescription, "description", "", "New description")

	workspaceCmd.AddCommand(workspaceListCmd, workspaceInfoCmd, workspaceCreateCmd, workspaceUpdateCmd, workspaceRmCmd, workspaceUseCmd)
	rootCmd.AddCommand(workspaceCmd)
}
