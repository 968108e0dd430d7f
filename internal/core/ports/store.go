package ports

import "go.trai.ch/noxy/internal/core/domain"

// RunStore defines the interface for storing and retrieving session run records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Get retrieves the latest record of a session.
	// Returns nil, nil if not found.
	Get(session string) (*domain.RunRecord, error)
	// Put stores the record, replacing the previous one for the same session.
	Put(record domain.RunRecord) error
	// List returns all records ordered by session name.
	List() ([]domain.RunRecord, error)
}
