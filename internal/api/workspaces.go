package api

import "fmt"

// ListWorkspaces returns the workspaces the authenticated user belongs to.
func (c *Client) ListWorkspaces() ([]Workspace, error) {
	var out []Workspace
	if err := c.Get("/workspaces", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWorkspace fetches a single workspace with its full member list.
func (c *Client) GetWorkspace(id int64) (*Workspace, error) {
	var w Workspace
	if err := c.Get(fmt.Sprintf("/workspaces/%d", id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWorkspace creates a workspace; the server adds the caller as admin.
func (c *Client) CreateWorkspace(req CreateWorkspaceRequest) (*Workspace, error) {
	var w Workspace
	if err := c.Post("/workspaces", req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWorkspace updates name and/or description.
func (c *Client) UpdateWorkspace(id int64, req UpdateWorkspaceRequest) (*Workspace, error) {
	var w Workspace
	if err := c.Put(fmt.Sprintf("/workspaces/%d", id), req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWorkspace deletes a workspace and its files.
func (c *Client) DeleteWorkspace(id int64) error {
	return c.Delete(fmt.Sprintf("/workspaces/%d", id), nil)
}

// AddMember invites a user to the workspace by email.
func (c *Client) AddMember(workspaceID int64, email, role string) (*WorkspaceMember, error) {
	var m WorkspaceMember
	req := AddMemberRequest{Email: email, Role: role}
	if err := c.Post(fmt.Sprintf("/workspaces/%d/members", workspaceID), req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveMember removes a member from the workspace.
func (c *Client) RemoveMember(workspaceID, memberID int64) error {
	return c.Delete(fmt.Sprintf("/workspaces/%d/members/%d", workspaceID, memberID), nil)
}

// UpdateMemberRole changes a member's workspace role.
func (c *Client) UpdateMemberRole(workspaceID, memberID int64, role string) (*WorkspaceMember, error) {
	var m WorkspaceMember
	body := map[string]string{"role": role}
	if err := c.Patch(fmt.Sprintf("/workspaces/%d/members/%d", workspaceID, memberID), body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
