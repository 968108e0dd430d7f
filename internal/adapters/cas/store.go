// Package cas implements persistent storage of session run records.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

// StateFile is the name of the run store inside the environment directory.
const StateFile = "noxy_state.json"

var _ ports.RunStore = (*Store)(nil)

// Store implements ports.RunStore using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	cache   map[string]domain.RunRecord
	once    sync.Once
	loadErr error
}

// NewStore creates a new RunStore backed by the file at the given path.
// The file is read on first access, so an unreadable store only fails the
// operations that touch it.
func NewStore(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
}

func (s *Store) ensureLoaded() error {
	s.once.Do(func() {
		s.loadErr = s.load()
	})
	return s.loadErr
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read run store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal run store"), "path", s.path)
	}
	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write run store"), "path", s.path)
	}
	return nil
}

// Get retrieves the latest record of a session.
func (s *Store) Get(session string) (*domain.RunRecord, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[session]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and persists the store. A corrupt store file is
// left untouched.
func (s *Store) Put(record domain.RunRecord) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[record.Session] = record
	s.mu.Unlock()

	return s.save()
}

// List returns all records ordered by session name.
func (s *Store) List() ([]domain.RunRecord, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.RunRecord, 0, len(s.cache))
	for _, record := range s.cache {
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b domain.RunRecord) int {
		return strings.Compare(a.Session, b.Session)
	})
	return records, nil
}
