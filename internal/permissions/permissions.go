// Package permissions implements client-side capability checks for workspace
// members. These are pure functions safe to call on every render of a view;
// the server remains the final authority and may still reject a request.
package permissions

import "github.com/dataroom/cli/internal/api"

// Role is a workspace-scoped member role. The set is closed: anything the
// server sends outside of it decodes to roles with no capabilities beyond
// plain membership.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleReader Role = "reader"
)

// ParseRole normalizes a wire role string. Older servers say "user" for
// editor and "viewer" for reader.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "admin":
		return RoleAdmin, true
	case "editor", "user":
		return RoleEditor, true
	case "reader", "viewer":
		return RoleReader, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// findMember matches purely by user ID; email is never used. Callers must
// guarantee unique member IDs — on a collision the first match wins.
func findMember(user *api.User, workspace *api.Workspace) (api.WorkspaceMember, bool) {
	if user == nil || workspace == nil {
		return api.WorkspaceMember{}, false
	}
	for _, m := range workspace.Members {
		if m.ID == user.ID {
			return m, true
		}
	}
	return api.WorkspaceMember{}, false
}

// UserRole returns the user's role within the workspace, or false if either
// argument is nil or the user is not a member.
func UserRole(user *api.User, workspace *api.Workspace) (Role, bool) {
	m, ok := findMember(user, workspace)
	if !ok {
		return "", false
	}
	return ParseRole(m.Role)
}

// CanImportFiles reports whether the user may import files into the
// workspace. Admins and editors can; readers and non-members cannot.
func CanImportFiles(user *api.User, workspace *api.Workspace) bool {
	role, ok := UserRole(user, workspace)
	if !ok {
		return false
	}
	switch role {
	case RoleAdmin, RoleEditor:
		return true
	case RoleReader:
		return false
	}
	return false
}

// CanDeleteFile reports whether the user may delete the given file. Admins
// can delete any file in the workspace; editors only their own uploads;
// readers none.
func CanDeleteFile(user *api.User, workspace *api.Workspace, file *api.DataRoomFile) bool {
	role, ok := UserRole(user, workspace)
	if !ok || file == nil {
		return false
	}
	switch role {
	case RoleAdmin:
		return true
	case RoleEditor:
		return file.UploadedBy == user.ID
	case RoleReader:
		return false
	}
	return false
}

// CanViewFile reports whether the user may view files in the workspace.
// Every member can, regardless of role.
func CanViewFile(user *api.User, workspace *api.Workspace) bool {
	_, ok := findMember(user, workspace)
	return ok
}

// CanDownloadFile reports whether the user may download files in the
// workspace. Same rule as viewing: membership is sufficient.
func CanDownloadFile(user *api.User, workspace *api.Workspace) bool {
	_, ok := findMember(user, workspace)
	return ok
}
