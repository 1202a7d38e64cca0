package wallet

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SessionStore persists the wallet session as a JSON file.
//
// Default location uses the OS cache directory with 0600 permissions so only
// the current user can read it:
//
//	macOS:   ~/Library/Caches/mintpad/session.json
//	Linux:   ~/.cache/mintpad/session.json
//	Windows: %LocalAppData%\mintpad\session.json
type SessionStore struct {
	path string
}

// DefaultSessionStore returns the per-user session store.
func DefaultSessionStore() *SessionStore {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return &SessionStore{path: filepath.Join(dir, "mintpad", "session.json")}
}

// NewSessionStore returns a session store backed by the given file path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the persisted session. A missing or unreadable file yields a
// disconnected session, never an error.
func (s *SessionStore) Load() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}
	}
	return sess
}

// Save writes the session with restrictive permissions.
func (s *SessionStore) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}
	// Best-effort: restrict permissions after write.
	_ = os.Chmod(s.path, 0o600)
	return nil
}

// Clear removes the session file.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
