package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys
const (
	KeyAppointmentRequests = "appointment_requests"
)

// Store persists one JSON document per key under a data directory. It mirrors
// the browser local-storage contract the portals were built against: a whole
// value is read or rewritten at once, there are no partial updates.
type Store struct {
	dir string
	mu  sync.RWMutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load reads the value under key into v. A missing key leaves v untouched and
// returns nil. A corrupt payload is logged and treated as absent rather than
// surfaced, so a damaged file never takes the portals down.
func (s *Store) Load(key string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("store: discarding corrupt payload under %q: %v", key, err)
		return nil
	}
	return nil
}

// Save overwrites the full value under key. The write goes to a temp file
// first and is renamed into place, so a crash mid-write never leaves a
// half-written document behind.
func (s *Store) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
