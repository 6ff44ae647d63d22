package api

import "time"

// User is the identity issued by the auth provider. It is replaced wholesale
// on login/logout and never mutated in place.
type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"` // global role, informational only
	Picture string `json:"picture,omitempty"`
}

// WorkspaceMember is a user enriched with a workspace-scoped role. The role
// is the sole input to client-side permission checks.
type WorkspaceMember struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role"`
}

// Workspace mirrors the backend workspace model.
type Workspace struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	OwnerID     int64             `json:"ownerId"`
	Members     []WorkspaceMember `json:"members"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// DataRoomFile mirrors the backend file model. Files are created by import
// (server-assigned id) and never mutated in place by the client.
type DataRoomFile struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	MimeType      string    `json:"mimeType"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"createdAt"`
	ModifiedAt    time.Time `json:"modifiedAt"`
	GoogleDriveID string    `json:"googleDriveId,omitempty"`
	ThumbnailURL  string    `json:"thumbnailUrl,omitempty"`
	WebViewLink   string    `json:"webViewLink,omitempty"`
	UploadedBy    int64     `json:"uploadedBy"`
	WorkspaceID   int64     `json:"workspaceId"`
}

// LoginResponse is returned by POST /auth/google.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CreateWorkspaceRequest is the body for POST /workspaces.
type CreateWorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateWorkspaceRequest is the body for PUT /workspaces/{id}. Nil fields
// are omitted and left unchanged by the server.
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AddMemberRequest is the body for POST /workspaces/{id}/members. Members
// are invited by email; the server resolves the user record.
type AddMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
