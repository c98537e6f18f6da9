// Package session holds the single source of truth for "who is logged in".
// The session is one JSON document on disk, consulted by the network layer
// (to attach the bearer token) and by the local board (to scope records by
// owner). The store itself never talks to the network and never expires
// sessions; a server-side 401 is what clears it, via the network layer.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"taskboard/internal/model"
)

const fileName = "session.json"

// Store persists the current session under a state directory.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates the state directory if needed and returns a store backed
// by <dir>/session.json.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir %q: %w", dir, err)
	}
	return &Store{path: filepath.Join(dir, fileName)}, nil
}

// Get returns the stored session, or nil when the file is absent or does not
// parse. A corrupt payload is treated as "not logged in", never as an error.
func (s *Store) Get() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil
	}
	return &sess
}

// Set overwrites the stored session.
func (s *Store) Set(sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	if sess := s.Get(); sess != nil {
		return sess.Token
	}
	return ""
}

// IsAuthenticated reports whether a session with a non-empty token exists.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
