// Package auth supplies the bearer token forwarded to the backend.
// The token itself comes from an external login flow; this package
// only stores and hands it out.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken indicates no access token is configured.
var ErrNoToken = errors.New("auth: no access token (run `goalie login` first)")

// TokenSource yields the current access token. It is injected into the
// API client so nothing reads credentials from ambient process state.
type TokenSource interface {
	Token() (string, error)
}

// Static is a fixed token, used for tests and the env-var override.
type Static string

// Token implements TokenSource.
func (s Static) Token() (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

const tokenFileName = "access_token"

// FileStore keeps the token in a mode-0600 file under the data dir.
type FileStore struct {
	path string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, tokenFileName)}
}

// Token implements TokenSource.
func (s *FileStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("auth: reading token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Save persists the token.
func (s *FileStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrNoToken
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("auth: creating token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("auth: writing token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("auth: removing token file: %w", err)
	}
	return nil
}
