// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/noxy/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until it exits.
	//
	// A non-zero exit yields an error carrying the command line and exit_code metadata.
	Execute(ctx context.Context, cmd *domain.Command) error
}
