package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Workspaces(t *testing.T) {
	t.Run("ListWorkspaces decodes the member list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/workspaces" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode([]Workspace{{
				ID:      1,
				Name:    "deals",
				OwnerID: 2,
				Members: []WorkspaceMember{{ID: 2, Email: "a@example.com", Role: "admin"}},
			}})
		}))
		defer server.Close()

		client := NewClient(server.URL, "tok")
		workspaces, err := client.ListWorkspaces()
		if err != nil {
			t.Fatalf("ListWorkspaces() returned error: %v", err)
		}
		if len(workspaces) != 1 || len(workspaces[0].Members) != 1 {
			t.Fatalf("unexpected result %+v", workspaces)
		}
		if workspaces[0].Members[0].Role != "admin" {
			t.Errorf("expected member role admin, got %s", workspaces[0].Members[0].Role)
		}
	})

	t.Run("UpdateMemberRole patches the member", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPatch || r.URL.Path != "/api/workspaces/1/members/2" {
				t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			}
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			_ = json.NewEncoder(w).Encode(WorkspaceMember{ID: 2, Role: body["role"]})
		}))
		defer server.Close()

		client := NewClient(server.URL, "tok")
		m, err := client.UpdateMemberRole(1, 2, "editor")
		if err != nil {
			t.Fatalf("UpdateMemberRole() returned error: %v", err)
		}
		if m.Role != "editor" {
			t.Errorf("expected role editor, got %s", m.Role)
		}
	})
}

func TestClient_ImportGoogleDrive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/workspaces/42/files/import/google-drive" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if got := r.FormValue("googleDriveId"); got != "drive-123" {
			t.Errorf("expected googleDriveId 'drive-123', got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("reading file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "Report.docx" {
			t.Errorf("expected filename 'Report.docx', got %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if !bytes.Equal(content, []byte("exported-bytes")) {
			t.Errorf("unexpected file content %q", content)
		}

		_ = json.NewEncoder(w).Encode(DataRoomFile{
			ID:            7,
			Name:          header.Filename,
			GoogleDriveID: "drive-123",
			WorkspaceID:   42,
			CreatedAt:     time.Now(),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	f, err := client.ImportGoogleDrive(42, "Report.docx", []byte("exported-bytes"), "drive-123")
	if err != nil {
		t.Fatalf("ImportGoogleDrive() returned error: %v", err)
	}
	if f.ID != 7 || f.GoogleDriveID != "drive-123" {
		t.Errorf("unexpected file %+v", f)
	}
}

func TestClient_Files(t *testing.T) {
	t.Run("DeleteFile targets the file path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/api/workspaces/1/files/9" {
				t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL, "tok")
		if err := client.DeleteFile(1, 9); err != nil {
			t.Fatalf("DeleteFile() returned error: %v", err)
		}
	})

	t.Run("DownloadFile streams the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/workspaces/1/files/9/download" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_, _ = w.Write([]byte("binary-payload"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "tok")
		var buf bytes.Buffer
		if err := client.DownloadFile(1, 9, &buf); err != nil {
			t.Fatalf("DownloadFile() returned error: %v", err)
		}
		if buf.String() != "binary-payload" {
			t.Errorf("unexpected payload %q", buf.String())
		}
	})
}

func TestClient_Auth(t *testing.T) {
	t.Run("GoogleLogin exchanges a credential", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/auth/google" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["credential"] != "id-token" {
				t.Errorf("expected credential 'id-token', got %q", body["credential"])
			}
			_ = json.NewEncoder(w).Encode(LoginResponse{
				User:  User{ID: 1, Email: "a@example.com", Name: "Ada"},
				Token: "session-token",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		resp, err := client.GoogleLogin("id-token")
		if err != nil {
			t.Fatalf("GoogleLogin() returned error: %v", err)
		}
		if resp.Token != "session-token" || resp.User.Email != "a@example.com" {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("Me returns the current user", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/auth/me" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(User{ID: 1, Email: "a@example.com"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "tok")
		u, err := client.Me()
		if err != nil {
			t.Fatalf("Me() returned error: %v", err)
		}
		if u.ID != 1 {
			t.Errorf("unexpected user %+v", u)
		}
	})
}
