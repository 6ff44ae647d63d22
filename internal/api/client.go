// Package api is a thin typed client for the DataRoom backend REST API.
// Each wrapper maps one backend operation to a request and decodes the
// response, or returns an *APIError on a non-2xx status. No retries, no
// backoff — failures surface immediately for the caller to handle.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client wraps HTTP calls to the DataRoom API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Client from a base URL (e.g. http://localhost:5000) and
// bearer token. An empty token is fine for the login endpoint.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/") + "/api",
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Minute, // generous for large imports
		},
	}
}

// APIError is returned when the server sends a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d — %s", e.Status, e.Message)
}

// IsAuthError reports whether the error is an authentication failure
// (missing/invalid token or expired session).
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		// Prefer the server's own error message.
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &errResp) == nil && (errResp.Error != "" || errResp.Detail != "") {
			msg := errResp.Error
			if errResp.Detail != "" {
				msg = errResp.Detail
			}
			return &APIError{Status: resp.StatusCode, Message: msg}
		}
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// Get sends a GET request and decodes the JSON body into out.
func (c *Client) Get(path string, params url.Values, out interface{}) error {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.doJSON(req, out)
}

func (c *Client) sendJSON(method, path string, body interface{}, out interface{}) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	}
	req, err := c.newRequest(method, path, r)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.doJSON(req, out)
}

// Post sends a POST with a JSON body.
func (c *Client) Post(path string, body interface{}, out interface{}) error {
	return c.sendJSON(http.MethodPost, path, body, out)
}

// Put sends a PUT with a JSON body.
func (c *Client) Put(path string, body interface{}, out interface{}) error {
	return c.sendJSON(http.MethodPut, path, body, out)
}

// Patch sends a PATCH with a JSON body.
func (c *Client) Patch(path string, body interface{}, out interface{}) error {
	return c.sendJSON(http.MethodPatch, path, body, out)
}

// Delete sends a DELETE.
func (c *Client) Delete(path string, out interface{}) error {
	req, err := c.newRequest(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.doJSON(req, out)
}

// UploadBlob sends a multipart POST with an in-memory binary payload under
// fieldName plus any extra string fields.
func (c *Client) UploadBlob(path, fieldName, fileName string, content []byte, extraFields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range extraFields {
		if err := writer.WriteField(k, v); err != nil {
			return err
		}
	}
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return err
	}
	if _, err := part.Write(content); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return c.doJSON(req, out)
}

// Download streams a GET response body into w.
func (c *Client) Download(path string, w io.Writer) error {
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	_, err = io.Copy(w, resp.Body)
	return err
}
