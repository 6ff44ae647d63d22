// Package session holds the client's persisted state: server URL, the auth
// record (user + token), the Google Drive token, the theme preference, and
// the current workspace selection. State lives in a JSON file under the user
// config dir and survives restarts until explicit logout or change.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/dataroom/cli/internal/api"
)

const (
	dirName   = "dataroom"
	fileName  = "session.json"
	dirPerms  = 0700
	filePerms = 0600

	// DefaultServerURL is used when neither the session file nor the
	// environment provides one.
	DefaultServerURL = "http://localhost:5000"
)

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a theme string.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q (want light, dark or system)", s)
}

func init() {
	// Load .env if present; missing file is fine.
	godotenv.Load()
}

// Session is the explicit state container created at process start and
// saved back on every change. It replaces any notion of ambient globals so
// the permission and service layers stay pure.
type Session struct {
	path string

	ServerURL          string    `json:"server_url"`
	Token              string    `json:"token,omitempty"`
	User               *api.User `json:"user,omitempty"`
	DriveToken         string    `json:"drive_token,omitempty"`
	Theme              Theme     `json:"theme"`
	CurrentWorkspaceID int64     `json:"current_workspace_id,omitempty"`
}

// DefaultPath returns the session file path under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the session from path. A missing file yields a default session
// rather than an error. Environment variables override the stored server URL.
func Load(path string) (*Session, error) {
	s := &Session{path: path, ServerURL: DefaultServerURL, Theme: ThemeSystem}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.applyEnv()
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	s.path = path
	if s.ServerURL == "" {
		s.ServerURL = DefaultServerURL
	}
	if s.Theme == "" {
		s.Theme = ThemeSystem
	}
	s.applyEnv()
	return s, nil
}

func (s *Session) applyEnv() {
	if v := os.Getenv("DATAROOM_SERVER"); v != "" {
		s.ServerURL = v
	}
}

// Save writes the session to disk, creating the directory if needed.
func (s *Session) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerms); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, filePerms)
}

// SetAuth replaces the auth record wholesale.
func (s *Session) SetAuth(user *api.User, token string) {
	s.User = user
	s.Token = token
}

// ClearAuth wipes everything tied to the login: auth record, Drive token and
// workspace selection. Server URL and theme survive logout.
func (s *Session) ClearAuth() {
	s.User = nil
	s.Token = ""
	s.DriveToken = ""
	s.CurrentWorkspaceID = 0
}

// HasToken reports whether a backend session token is present.
func (s *Session) HasToken() bool { return s.Token != "" }

// HasDriveToken reports whether a Google Drive access token is present.
func (s *Session) HasDriveToken() bool { return s.DriveToken != "" }

// TokenExpired reports whether the stored backend token carries an exp claim
// in the past. The signature is not verified — this is a pre-flight check to
// surface an expired session before issuing a request; the server still
// rejects invalid tokens.
func (s *Session) TokenExpired() bool {
	if s.Token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// DriveClientID returns the OAuth client id for the Drive consent flow.
func DriveClientID() string { return os.Getenv("GOOGLE_CLIENT_ID") }

// DriveClientSecret returns the OAuth client secret for the Drive consent flow.
func DriveClientSecret() string { return os.Getenv("GOOGLE_CLIENT_SECRET") }
