package ports

import "go.trai.ch/noxy/internal/core/domain"

// Hasher defines the interface for fingerprinting session runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash computes a fingerprint of the run inputs relative to rootDir.
	ComputeInputHash(inputs domain.RunInputs, rootDir string) (string, error)
}
