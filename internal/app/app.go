// Package app implements the application layer for noxy.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/noxy/internal/engine/runner"
	"go.trai.ch/noxy/internal/sessions"
	"go.trai.ch/noxy/internal/ui/summary"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       *runner.Runner
	store        ports.RunStore
	marker       ports.CacheMarker
	fetcher      ports.Fetcher
	editor       ports.RequirementsEditor
	telemetry    ports.Telemetry
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	r *runner.Runner,
	store ports.RunStore,
	marker ports.CacheMarker,
	fetcher ports.Fetcher,
	editor ports.RequirementsEditor,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		runner:       r,
		store:        store,
		marker:       marker,
		fetcher:      fetcher,
		editor:       editor,
		telemetry:    telemetry,
		logger:       logger,
		out:          os.Stdout,
	}
}

// WithOutput sets where summaries and user-facing messages are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Options holds the command line settings shared by every command.
type Options struct {
	ConfigPath string
	// EnvDir overrides the configured environment directory when set.
	EnvDir string
	Debug  bool
}

// RunOptions holds the settings of a run.
type RunOptions struct {
	Options
	NoReuseExisting bool
	InstallOnly     bool
	PosArgs         []string
}

// Run executes the named sessions, or every session when none are named.
func (a *App) Run(ctx context.Context, names []string, opts RunOptions) error {
	options, reg, err := a.load(opts.Options)
	if err != nil {
		return err
	}
	if opts.NoReuseExisting {
		options.ReuseExisting = false
	}
	if opts.InstallOnly {
		options.InstallOnly = true
	}

	defs, err := reg.Select(names)
	if err != nil {
		return err
	}

	results, runErr := a.runner.Run(ctx, defs, runner.Options{
		EnvDir:        options.EnvDir,
		ReuseExisting: options.ReuseExisting,
		InstallOnly:   options.InstallOnly,
		PosArgs:       opts.PosArgs,
	})
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}

	summary.New(a.out).Results(results)
	return runErr
}

// List prints the available sessions.
func (a *App) List(_ context.Context, opts Options) error {
	_, reg, err := a.load(opts)
	if err != nil {
		return err
	}

	defs := reg.All()
	entries := make([]summary.Entry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, summary.Entry{Name: def.Name, Description: def.Description})
	}
	summary.New(a.out).Sessions(entries)
	return nil
}

// Status prints the latest recorded run of every session.
func (a *App) Status(_ context.Context, opts Options) error {
	if opts.Debug {
		a.logger.SetLevel(domain.LogLevelDebug)
	}
	records, err := a.store.List()
	if err != nil {
		return zerr.Wrap(err, "failed to read run records")
	}
	summary.New(a.out).Records(records)
	return nil
}

func (a *App) load(opts Options) (*domain.Options, *sessions.Registry, error) {
	if opts.Debug {
		a.logger.SetLevel(domain.LogLevelDebug)
	}

	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}
	options, err := a.configLoader.Load(path)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.EnvDir != "" {
		options.EnvDir = opts.EnvDir
	}

	catalog := sessions.NewCatalog(options, a.marker, a.fetcher, a.editor)
	catalog.SetOutput(a.out)
	reg, err := catalog.Registry()
	if err != nil {
		return nil, nil, err
	}
	return options, reg, nil
}
