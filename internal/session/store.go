package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when loading a session id with no persisted
// file.
var ErrNotFound = errors.New("session not found")

// Store persists sessions as one YAML file each under Dir. The tool is
// single-user and single-process, so no locking: exactly one loop
// operates on one session at a time by convention.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ensure session dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

func (st *Store) path(id string) string {
	return filepath.Join(st.Dir, id+".yaml")
}

// Save serializes the full session, overwriting any prior save. Save is
// idempotent and safe to call after every state transition.
func (st *Store) Save(s *Session) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(st.path(s.ID), data, 0644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load reads a persisted session by id.
func (st *Store) Load(id string) (*Session, error) {
	data, err := os.ReadFile(st.path(id))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &s, nil
}

// Summary is the listing metadata for one persisted session.
type Summary struct {
	ID           string
	CreatedAt    time.Time
	Finalized    bool
	Iterations   int
	LastModified time.Time
}

// List enumerates all persisted sessions, most recently modified first.
// Unreadable or malformed files are skipped.
func (st *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(st.Dir)
	if err != nil {
		return nil, fmt.Errorf("read session dir: %w", err)
	}

	var summaries []Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(st.Dir, entry.Name()))
		if err != nil {
			continue
		}
		var s Session
		if err := yaml.Unmarshal(data, &s); err != nil || s.ID == "" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}

		summaries = append(summaries, Summary{
			ID:           s.ID,
			CreatedAt:    s.CreatedAt,
			Finalized:    s.Finalized,
			Iterations:   len(s.Iterations),
			LastModified: info.ModTime(),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastModified.After(summaries[j].LastModified)
	})

	return summaries, nil
}
