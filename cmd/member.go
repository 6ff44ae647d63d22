package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/cache"
	"github.com/dataroom/cli/internal/permissions"
)

var flagMemberRole string

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage workspace members",
}

var memberAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Invite a user to the workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		role, ok := permissions.ParseRole(flagMemberRole)
		if !ok {
			return fmt.Errorf("unknown role %q (want admin, editor or reader)", flagMemberRole)
		}
		id, err := workspaceID()
		if err != nil {
			return err
		}
		m, err := apiClient.AddMember(id, args[0], role.String())
		if err != nil {
			return fmt.Errorf("adding member: %w", err)
		}
		store.Invalidate(cache.WorkspacesTag())
		fmt.Printf("Added %s as %s\n", m.Email, m.Role)
		return nil
	},
}

var memberRmCmd = &cobra.Command{
	Use:   "rm <member-id>",
	Short: "Remove a member from the workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		memberID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid member id %q", args[0])
		}
		id, err := workspaceID()
		if err != nil {
			return err
		}
		if err := apiClient.RemoveMember(id, memberID); err != nil {
			return fmt.Errorf("removing member: %w", err)
		}
		store.Invalidate(cache.WorkspacesTag())
		fmt.Println("Member removed.")
		return nil
	},
}

var memberRoleCmd = &cobra.Command{
	Use:   "role <member-id> <role>",
	Short: "Change a member's workspace role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		memberID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid member id %q", args[0])
		}
		role, ok := permissions.ParseRole(args[1])
		if !ok {
			return fmt.Errorf("unknown role %q (want admin, editor or reader)", args[1])
		}
		id, err := workspaceID()
		if err != nil {
			return err
		}
		m, err := apiClient.UpdateMemberRole(id, memberID, role.String())
		if err != nil {
			return fmt.Errorf("updating member role: %w", err)
		}
		store.Invalidate(cache.WorkspacesTag())
		fmt.Printf("%s is now %s\n", m.Email, m.Role)
		return nil
	},
}

func init() {
	memberAddCmd.Flags().StringVar(&flagMemberRole, "role", "reader", "Workspace role: admin, editor, reader")

	memberCmd.AddCommand(memberAddCmd, memberRmCmd, memberRoleCmd)
	rootCmd.AddCommand(memberCmd)
}
