package api

import (
	"fmt"
	"io"
)

// ListFiles returns all files in a workspace.
func (c *Client) ListFiles(workspaceID int64) ([]DataRoomFile, error) {
	var out []DataRoomFile
	if err := c.Get(fmt.Sprintf("/workspaces/%d/files", workspaceID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFile fetches a single file's metadata.
func (c *Client) GetFile(workspaceID, fileID int64) (*DataRoomFile, error) {
	var f DataRoomFile
	if err := c.Get(fmt.Sprintf("/workspaces/%d/files/%d", workspaceID, fileID), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFile deletes a file. The server enforces the same ownership rules
// the client checks with the permissions package.
func (c *Client) DeleteFile(workspaceID, fileID int64) error {
	return c.Delete(fmt.Sprintf("/workspaces/%d/files/%d", workspaceID, fileID), nil)
}

// DownloadFile streams a file's content into w.
func (c *Client) DownloadFile(workspaceID, fileID int64, w io.Writer) error {
	return c.Download(fmt.Sprintf("/workspaces/%d/files/%d/download", workspaceID, fileID), w)
}

// ImportGoogleDrive uploads a blob fetched from Google Drive as a new file in
// the workspace. The multipart body carries the binary under "file" plus the
// source file's Drive id.
func (c *Client) ImportGoogleDrive(workspaceID int64, name string, content []byte, googleDriveID string) (*DataRoomFile, error) {
	var f DataRoomFile
	extra := map[string]string{"googleDriveId": googleDriveID}
	path := fmt.Sprintf("/workspaces/%d/files/import/google-drive", workspaceID)
	if err := c.UploadBlob(path, "file", name, content, extra, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
