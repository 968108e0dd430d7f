// Package runner executes selected sessions one after another.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/noxy/internal/engine/session"
	"go.trai.ch/zerr"
)

// Options control a single invocation of the runner.
type Options struct {
	EnvDir        string
	ReuseExisting bool
	InstallOnly   bool
	PosArgs       []string
}

// Result is the outcome of one session.
type Result struct {
	Session  string
	Status   domain.RunStatus
	Duration time.Duration
	Err      error
}

// Runner creates each session's environment, runs the session body and
// records the outcome.
type Runner struct {
	backends  map[domain.Backend]ports.EnvironmentBackend
	executor  ports.Executor
	hasher    ports.Hasher
	store     ports.RunStore
	telemetry ports.Telemetry
	logger    ports.Logger
	clock     clockwork.Clock
}

// New creates a Runner using the real clock.
func New(
	executor ports.Executor,
	hasher ports.Hasher,
	store ports.RunStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	backends ...ports.EnvironmentBackend,
) *Runner {
	r := &Runner{
		backends:  make(map[domain.Backend]ports.EnvironmentBackend, len(backends)),
		executor:  executor,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		clock:     clockwork.NewRealClock(),
	}
	for _, b := range backends {
		r.backends[b.Kind()] = b
	}
	return r
}

// WithClock replaces the clock used to time sessions.
func (r *Runner) WithClock(clock clockwork.Clock) *Runner {
	r.clock = clock
	return r
}

// Run runs defs sequentially. A failing session does not stop the ones after
// it; once ctx is done the remaining sessions are skipped.
//
// The returned error wraps domain.ErrSessionFailed when any session failed.
func (r *Runner) Run(ctx context.Context, defs []session.Definition, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(defs))
	var errs []error

	for _, def := range defs {
		if ctx.Err() != nil {
			r.logger.Warn("Skipping " + def.Name + ": " + ctx.Err().Error())
			results = append(results, Result{Session: def.Name, Status: domain.RunStatusSkipped})
			continue
		}

		res := r.runOne(ctx, def, opts)
		results = append(results, res)
		if res.Err != nil {
			errs = append(errs, zerr.Wrap(res.Err, def.Name))
		}
	}

	if ctx.Err() != nil {
		errs = append(errs, ctx.Err())
	}
	if len(errs) > 0 {
		return results, errors.Join(append([]error{domain.ErrSessionFailed}, errs...)...)
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, def session.Definition, opts Options) Result {
	r.logger.Info("Running session " + def.Name)
	started := r.clock.Now()

	ctx, vertex := r.telemetry.Record(ctx, def.Name)
	err := r.execute(ctx, def, opts, vertex)
	vertex.Complete(err)

	res := Result{
		Session:  def.Name,
		Status:   domain.RunStatusSuccess,
		Duration: r.clock.Since(started),
		Err:      err,
	}
	if err != nil {
		res.Status = domain.RunStatusFailed
		r.logger.Error(zerr.With(err, "session", def.Name))
	} else {
		r.logger.Info("Session " + def.Name + " was successful in " + res.Duration.Round(time.Millisecond).String())
	}

	r.record(def, opts, res, started)
	return res
}

func (r *Runner) execute(ctx context.Context, def session.Definition, opts Options, vertex ports.Vertex) error {
	backend, ok := r.backends[def.Backend]
	if !ok {
		return zerr.With(domain.ErrUnknownBackend, "backend", string(def.Backend))
	}

	env := domain.NewEnvironment(opts.EnvDir, def.Name, def.Python, def.Backend, opts.ReuseExisting)
	if err := backend.Create(ctx, env); err != nil {
		return err
	}

	s := session.New(session.Config{
		Env:         env,
		Backend:     backend,
		Executor:    r.executor,
		Logger:      r.logger,
		Vertex:      vertex,
		PosArgs:     opts.PosArgs,
		InstallOnly: opts.InstallOnly,
	})
	return def.Func(ctx, s)
}

// record stores the run; failing to do so is logged and never fails the session.
func (r *Runner) record(def session.Definition, opts Options, res Result, started time.Time) {
	hash, err := r.hasher.ComputeInputHash(domain.RunInputs{
		Session: def.Name,
		Python:  def.Python,
		PosArgs: opts.PosArgs,
		Files:   def.Files,
	}, ".")
	if err != nil {
		r.logger.Debug("Could not fingerprint inputs of " + def.Name + ": " + err.Error())
	}

	rec := domain.RunRecord{
		ID:        uuid.NewString(),
		Session:   def.Name,
		Python:    def.Python,
		InputHash: hash,
		Status:    res.Status,
		StartedAt: started,
		Duration:  res.Duration,
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	if err := r.store.Put(rec); err != nil {
		r.logger.Warn("Could not record run of " + def.Name + ": " + err.Error())
	}
}
