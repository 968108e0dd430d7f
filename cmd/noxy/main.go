// Package main is the entry point for the noxy session runner.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/noxy/cmd/noxy/commands"
	"go.trai.ch/noxy/internal/app"
	"go.trai.ch/noxy/internal/core/domain"
	_ "go.trai.ch/noxy/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		// Session failures have already been logged and summarized.
		if errors.Is(err, domain.ErrSessionFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
