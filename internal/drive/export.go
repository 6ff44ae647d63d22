package drive

import "strings"

const nativePrefix = "application/vnd.google-apps."

// Native Google Docs formats are exported to the matching Office format.
// The table is authoritative; any other native type exports as PDF.
var exportMimeTypes = map[string]string{
	"application/vnd.google-apps.document":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.google-apps.spreadsheet":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.google-apps.presentation": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

var exportExtensions = map[string]string{
	"application/vnd.google-apps.document":     ".docx",
	"application/vnd.google-apps.spreadsheet":  ".xlsx",
	"application/vnd.google-apps.presentation": ".pptx",
}

// IsNativeDoc reports whether mimeType is a Google-proprietary document
// format that must be exported before download.
func IsNativeDoc(mimeType string) bool {
	return strings.HasPrefix(mimeType, nativePrefix)
}

// ExportedMimeType returns the mime type the file will carry after download:
// the mapped Office format for native docs (PDF when unmapped), otherwise
// the original mime type unchanged.
func ExportedMimeType(mimeType string) string {
	if IsNativeDoc(mimeType) {
		if m, ok := exportMimeTypes[mimeType]; ok {
			return m
		}
		return "application/pdf"
	}
	return mimeType
}

// ExportedFilename derives the post-export file name: for native docs it
// strips any existing extension and appends the mapped one (.pdf when
// unmapped); non-native names pass through unchanged.
func ExportedFilename(originalName, mimeType string) string {
	if !IsNativeDoc(mimeType) {
		return originalName
	}
	ext, ok := exportExtensions[mimeType]
	if !ok {
		ext = ".pdf"
	}
	name := originalName
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 && !strings.Contains(name[idx+1:], "/") {
		name = name[:idx]
	}
	return name + ext
}
