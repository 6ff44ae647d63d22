// Package drive is a minimal read-only client for the Google Drive v3 API:
// folder listing, name search, and content download with export of native
// Google Docs formats. All calls use a caller-supplied OAuth bearer token.
package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://www.googleapis.com/drive/v3"

	// RootFolderID is the sentinel id of the Drive root folder.
	RootFolderID = "root"

	// FolderMimeType marks an entry as a folder.
	FolderMimeType = "application/vnd.google-apps.folder"

	listPageSize   = 100
	searchPageSize = 50

	fileFields = "files(id,name,mimeType,size,modifiedTime,thumbnailLink,webViewLink,iconLink)"
)

// File is a Drive file or folder as returned by the list/search endpoints.
// Entries are transient: they are fetched live per query and never persisted.
type File struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MimeType      string `json:"mimeType"`
	Size          int64  `json:"size,string,omitempty"`
	ModifiedTime  string `json:"modifiedTime,omitempty"`
	ThumbnailLink string `json:"thumbnailLink,omitempty"`
	WebViewLink   string `json:"webViewLink,omitempty"`
	IconLink      string `json:"iconLink,omitempty"`
}

// IsFolder reports whether the entry is a folder.
func (f File) IsFolder() bool { return f.MimeType == FolderMimeType }

// Client talks to the Drive API with a fixed bearer token.
type Client struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Drive client for the given access token.
func NewClient(token string) *Client {
	return &Client{
		Token:   token,
		BaseURL: defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Ready reports whether the client holds an access token.
func (c *Client) Ready() bool { return c.Token != "" }

type fileList struct {
	Files []File `json:"files"`
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("google drive: %s", resp.Status)
	}
	return resp, nil
}

func (c *Client) list(ctx context.Context, params url.Values) ([]File, error) {
	resp, err := c.get(ctx, c.BaseURL+"/files?"+params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out fileList
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding file list: %w", err)
	}
	return out.Files, nil
}

// ListFolder returns the non-trashed children of folderID, folders first then
// by name. Use RootFolderID for the top level.
func (c *Client) ListFolder(ctx context.Context, folderID string) ([]File, error) {
	if folderID == "" {
		folderID = RootFolderID
	}
	params := url.Values{}
	params.Set("q", fmt.Sprintf("'%s' in parents and trashed=false", folderID))
	params.Set("orderBy", "folder,name")
	params.Set("pageSize", fmt.Sprintf("%d", listPageSize))
	params.Set("fields", fileFields)
	return c.list(ctx, params)
}

// Search returns non-trashed files whose name contains query, most recently
// modified first. A blank query returns an empty result without a request.
func (c *Client) Search(ctx context.Context, query string) ([]File, error) {
	if strings.TrimSpace(query) == "" {
		return []File{}, nil
	}
	params := url.Values{}
	params.Set("q", fmt.Sprintf("name contains '%s' and trashed=false", escapeQuery(query)))
	params.Set("orderBy", "modifiedTime desc")
	params.Set("pageSize", fmt.Sprintf("%d", searchPageSize))
	params.Set("fields", fileFields)
	return c.list(ctx, params)
}

// GetFile fetches one file's metadata by id.
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	params := url.Values{}
	params.Set("fields", "id,name,mimeType,size,modifiedTime,thumbnailLink,webViewLink,iconLink")
	resp, err := c.get(ctx, c.BaseURL+"/files/"+url.PathEscape(fileID)+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var f File
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding file: %w", err)
	}
	return &f, nil
}

// escapeQuery escapes single quotes and backslashes for the Drive q syntax.
func escapeQuery(q string) string {
	q = strings.ReplaceAll(q, `\`, `\\`)
	return strings.ReplaceAll(q, `'`, `\'`)
}

// Download fetches a file's content. Native Google Docs formats are exported
// to the mapped Office format (PDF for other native types); everything else
// is downloaded as raw bytes.
func (c *Client) Download(ctx context.Context, file File) ([]byte, error) {
	var rawURL string
	if IsNativeDoc(file.MimeType) {
		exportMime := ExportedMimeType(file.MimeType)
		rawURL = fmt.Sprintf("%s/files/%s/export?mimeType=%s", c.BaseURL, file.ID, url.QueryEscape(exportMime))
	} else {
		rawURL = fmt.Sprintf("%s/files/%s?alt=media", c.BaseURL, file.ID)
	}

	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading file content: %w", err)
	}
	return data, nil
}
