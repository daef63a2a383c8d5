package localstore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store is a per-key JSON file store. It mirrors a browser's local storage
// contract: loads that fail for any reason leave the caller's default value
// untouched, and saves are best-effort and never return an error.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Load decodes the value stored under key into out. It returns false when
// the key is missing or the stored JSON is malformed; out is left as-is.
func (s *Store) Load(key string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("localstore: read %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("localstore: decode %q: %v", key, err)
		return false
	}
	return true
}

// Save overwrites the value stored under key. Failures are logged and
// swallowed; persistence is best-effort.
func (s *Store) Save(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Printf("localstore: encode %q: %v", key, err)
		return
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("localstore: write %q: %v", key, err)
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		log.Printf("localstore: rename %q: %v", key, err)
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
