package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dataroom/cli/internal/api"
	"github.com/dataroom/cli/internal/drive"
	"github.com/dataroom/cli/internal/importer"
)

// JSON prints v as indented JSON to stdout.
func JSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// WorkspaceTable prints workspaces as a human-readable table. currentID marks
// the selected workspace.
func WorkspaceTable(workspaces []api.Workspace, currentID int64) {
	if len(workspaces) == 0 {
		fmt.Println("No workspaces found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tUPDATED\t")
	for _, ws := range workspaces {
		marker := ""
		if ws.ID == currentID {
			marker = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", ws.ID, ws.Name, len(ws.Members), RelativeTime(ws.UpdatedAt), marker)
	}
	w.Flush()
}

// WorkspaceDetail prints a single workspace with its member list.
func WorkspaceDetail(ws api.Workspace) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", ws.Name)
	fmt.Fprintf(w, "ID:\t%d\n", ws.ID)
	if ws.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", ws.Description)
	}
	fmt.Fprintf(w, "Owner:\t%d\n", ws.OwnerID)
	fmt.Fprintf(w, "Created:\t%s\n", ws.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Updated:\t%s\n", ws.UpdatedAt.Format(time.RFC3339))
	w.Flush()

	fmt.Println()
	MemberTable(ws.Members)
}

// MemberTable prints workspace members.
func MemberTable(members []api.WorkspaceMember) {
	if len(members) == 0 {
		fmt.Println("No members.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, m := range members {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.Role)
	}
	w.Flush()
}

// FileTable prints data-room files.
func FileTable(files []api.DataRoomFile) {
	if len(files) == 0 {
		fmt.Println("No files found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tTYPE\tMODIFIED")
	for _, f := range files {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", f.ID, f.Name, FormatSize(f.Size), shortMIME(f.MimeType), RelativeTime(f.ModifiedAt))
	}
	w.Flush()
}

// FileDetail prints a single file's metadata.
func FileDetail(f api.DataRoomFile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", f.Name)
	fmt.Fprintf(w, "ID:\t%d\n", f.ID)
	fmt.Fprintf(w, "Type:\t%s\n", f.MimeType)
	fmt.Fprintf(w, "Size:\t%s\n", FormatSize(f.Size))
	fmt.Fprintf(w, "Uploaded By:\t%d\n", f.UploadedBy)
	fmt.Fprintf(w, "Workspace:\t%d\n", f.WorkspaceID)
	if f.GoogleDriveID != "" {
		fmt.Fprintf(w, "Drive ID:\t%s\n", f.GoogleDriveID)
	}
	if f.WebViewLink != "" {
		fmt.Fprintf(w, "Web Link:\t%s\n", f.WebViewLink)
	}
	fmt.Fprintf(w, "Created:\t%s\n", f.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Modified:\t%s\n", f.ModifiedAt.Format(time.RFC3339))
	w.Flush()
}

// DriveFileTable prints Google Drive entries.
func DriveFileTable(files []drive.File) {
	if len(files) == 0 {
		fmt.Println("No files found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tTYPE")
	for _, f := range files {
		name := f.Name
		size := FormatSize(f.Size)
		kind := shortMIME(f.MimeType)
		if f.IsFolder() {
			name += "/"
			size = "-"
			kind = "folder"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, name, size, kind)
	}
	w.Flush()
}

// UserInfo prints the authenticated user's details.
func UserInfo(u api.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Name:\t%s\n", u.Name)
	if u.Role != "" {
		fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	}
	fmt.Fprintf(w, "ID:\t%d\n", u.ID)
	w.Flush()
}

// ProgressSink renders import progress line by line as entries change state.
type ProgressSink struct {
	seen map[int]importer.Status
}

// NewProgressSink creates a sink for one batch.
func NewProgressSink() *ProgressSink {
	return &ProgressSink{seen: make(map[int]importer.Status)}
}

// Progress prints a line for every entry that changed to a terminal or
// active state since the last call.
func (p *ProgressSink) Progress(entries []importer.Progress) {
	for i, e := range entries {
		if p.seen[i] == e.Status {
			continue
		}
		p.seen[i] = e.Status
		switch e.Status {
		case importer.StatusUploading:
			fmt.Printf("  importing %s ...\n", e.FileName)
		case importer.StatusSuccess:
			fmt.Printf("  ✓ %s\n", e.FileName)
		case importer.StatusError:
			fmt.Printf("  ✗ %s: %s\n", e.FileName, e.Error)
		}
	}
}

// Completed prints the batch summary.
func (p *ProgressSink) Completed(s importer.Summary) {
	if s.Failed == 0 {
		fmt.Printf("Imported %d file(s).\n", s.Succeeded)
		return
	}
	fmt.Printf("Imported %d file(s), %d failed.\n", s.Succeeded, s.Failed)
}

// FormatSize converts bytes to a human-readable string.
func FormatSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// RelativeTime formats a timestamp relative to now (e.g. "2h ago", "3d ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

func shortMIME(mime string) string {
	// "application/pdf" -> "pdf", "image/png" -> "png"
	parts := strings.Split(mime, "/")
	if len(parts) == 2 {
		s := parts[1]
		if idx := strings.LastIndex(s, "."); idx >= 0 {
			s = s[idx+1:]
		}
		return s
	}
	return mime
}
