package drive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-token")
	client.BaseURL = server.URL
	return client, server
}

func TestClient_ListFolder(t *testing.T) {
	t.Run("sends parent filter, ordering and page size", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("expected bearer token header, got %q", got)
			}
			q := r.URL.Query()
			if got := q.Get("q"); got != "'folder-1' in parents and trashed=false" {
				t.Errorf("unexpected q parameter: %q", got)
			}
			if got := q.Get("orderBy"); got != "folder,name" {
				t.Errorf("unexpected orderBy: %q", got)
			}
			if got := q.Get("pageSize"); got != "100" {
				t.Errorf("unexpected pageSize: %q", got)
			}
			if got := q.Get("fields"); !strings.Contains(got, "files(") {
				t.Errorf("expected a field projection, got %q", got)
			}
			_ = json.NewEncoder(w).Encode(fileList{Files: []File{
				{ID: "a", Name: "Reports", MimeType: FolderMimeType},
				{ID: "b", Name: "notes.txt", MimeType: "text/plain"},
			}})
		})
		defer server.Close()

		files, err := client.ListFolder(context.Background(), "folder-1")
		if err != nil {
			t.Fatalf("ListFolder() returned error: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("expected 2 files, got %d", len(files))
		}
		if !files[0].IsFolder() || files[1].IsFolder() {
			t.Error("expected folder flag to follow mime type")
		}
	})

	t.Run("empty folder id falls back to root", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "'root' in parents and trashed=false" {
				t.Errorf("expected root sentinel, got %q", got)
			}
			_ = json.NewEncoder(w).Encode(fileList{})
		})
		defer server.Close()

		if _, err := client.ListFolder(context.Background(), ""); err != nil {
			t.Fatalf("ListFolder() returned error: %v", err)
		}
	})

	t.Run("non-2xx surfaces provider status", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		defer server.Close()

		_, err := client.ListFolder(context.Background(), "x")
		if err == nil {
			t.Fatal("expected error for 403")
		}
		if !strings.Contains(err.Error(), "403") {
			t.Errorf("expected status in error, got %q", err.Error())
		}
	})
}

func TestClient_Search(t *testing.T) {
	t.Run("blank query short-circuits without a request", func(t *testing.T) {
		requests := 0
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			requests++
			_ = json.NewEncoder(w).Encode(fileList{})
		})
		defer server.Close()

		for _, q := range []string{"", "   ", "\t"} {
			files, err := client.Search(context.Background(), q)
			if err != nil {
				t.Fatalf("Search(%q) returned error: %v", q, err)
			}
			if len(files) != 0 {
				t.Errorf("Search(%q) = %d files, want 0", q, len(files))
			}
		}
		if requests != 0 {
			t.Errorf("expected no network calls, got %d", requests)
		}
	})

	t.Run("sends name filter, recency ordering and page size", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if got := q.Get("q"); got != "name contains 'budget' and trashed=false" {
				t.Errorf("unexpected q parameter: %q", got)
			}
			if got := q.Get("orderBy"); got != "modifiedTime desc" {
				t.Errorf("unexpected orderBy: %q", got)
			}
			if got := q.Get("pageSize"); got != "50" {
				t.Errorf("unexpected pageSize: %q", got)
			}
			_ = json.NewEncoder(w).Encode(fileList{Files: []File{{ID: "a", Name: "budget.xlsx"}}})
		})
		defer server.Close()

		files, err := client.Search(context.Background(), "budget")
		if err != nil {
			t.Fatalf("Search() returned error: %v", err)
		}
		if len(files) != 1 {
			t.Errorf("expected 1 file, got %d", len(files))
		}
	})

	t.Run("escapes quotes in the query", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != `name contains 'o\'brien' and trashed=false` {
				t.Errorf("unexpected q parameter: %q", got)
			}
			_ = json.NewEncoder(w).Encode(fileList{})
		})
		defer server.Close()

		if _, err := client.Search(context.Background(), "o'brien"); err != nil {
			t.Fatalf("Search() returned error: %v", err)
		}
	})
}

func TestClient_Download(t *testing.T) {
	t.Run("native doc hits the export endpoint with mapped mime", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/files/doc-1/export") {
				t.Errorf("expected export path, got %s", r.URL.Path)
			}
			want := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
			if got := r.URL.Query().Get("mimeType"); got != want {
				t.Errorf("expected mapped export mime, got %q", got)
			}
			_, _ = w.Write([]byte("docx-bytes"))
		})
		defer server.Close()

		data, err := client.Download(context.Background(), File{ID: "doc-1", Name: "Plan", MimeType: docMime})
		if err != nil {
			t.Fatalf("Download() returned error: %v", err)
		}
		if string(data) != "docx-bytes" {
			t.Errorf("unexpected payload %q", data)
		}
	})

	t.Run("regular file downloads raw content", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/files/bin-1") {
				t.Errorf("expected media path, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("alt"); got != "media" {
				t.Errorf("expected alt=media, got %q", got)
			}
			_, _ = w.Write([]byte("raw-bytes"))
		})
		defer server.Close()

		data, err := client.Download(context.Background(), File{ID: "bin-1", Name: "scan.pdf", MimeType: "application/pdf"})
		if err != nil {
			t.Fatalf("Download() returned error: %v", err)
		}
		if string(data) != "raw-bytes" {
			t.Errorf("unexpected payload %q", data)
		}
	})

	t.Run("non-2xx surfaces provider status", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer server.Close()

		if _, err := client.Download(context.Background(), File{ID: "gone", MimeType: "application/pdf"}); err == nil {
			t.Fatal("expected error for 404")
		}
	})
}

func TestClient_Ready(t *testing.T) {
	if !NewClient("tok").Ready() {
		t.Error("expected client with token to be ready")
	}
	if NewClient("").Ready() {
		t.Error("expected client without token not to be ready")
	}
}
