package sessions

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/engine/session"
	"go.trai.ch/zerr"
)

// PrepareEnv brings a conda session environment in line with its lock file,
// then installs the selected Iris checkout and prints diagnostics on request.
func (c *Catalog) PrepareEnv(ctx context.Context, s *session.Session) error {
	env := s.Env()
	lockfile := c.opts.Lock.SessionLockfile(s.Python())

	if !c.marker.Populated(env, lockfile) {
		s.Debug("Populating conda env: " + env.Location)
		if err := c.populate(ctx, s, lockfile); err != nil {
			return err
		}
	} else {
		changed, err := c.marker.Changed(env, lockfile)
		if err != nil {
			return err
		}
		if changed {
			s.Debug("Lockfile changed. Recreating conda env: " + env.Location)
			if err := s.Recreate(ctx); err != nil {
				return err
			}
			if err := c.populate(ctx, s, lockfile); err != nil {
				return err
			}
		}
	}
	s.Debug("Environment up to date: " + env.Location)

	if ref, ok := domain.ResolveSourceArtifact(c.opts.IrisSource, s.PosArgs()); ok {
		if err := c.installIris(ctx, s, ref); err != nil {
			return err
		}
	}

	if s.Verbose() {
		prefix := "--prefix=" + env.Location
		for _, args := range [][]string{
			{"conda", "info"},
			{"conda", "list", prefix},
			{"conda", "list", prefix, "--explicit"},
		} {
			if err := s.RunAlways(ctx, args...); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) populate(ctx context.Context, s *session.Session, lockfile string) error {
	if err := s.CondaInstall(ctx, "--file="+lockfile); err != nil {
		return err
	}
	return c.marker.Save(s.Env(), lockfile)
}

// installIris checks out ref in the session's Iris clone and installs it in develop mode.
func (c *Catalog) installIris(ctx context.Context, s *session.Session, ref string) error {
	tmp, err := s.CreateTmp()
	if err != nil {
		return err
	}
	irisDir := filepath.Join(tmp, "iris")

	if info, err := os.Stat(irisDir); err != nil || !info.IsDir() {
		if err := s.RunAlways(ctx, "git", "clone", c.opts.IrisRepository, irisDir); err != nil {
			return zerr.With(err, "repository", c.opts.IrisRepository)
		}
	}

	restore := s.Cd(irisDir)
	err = s.RunAlways(ctx, "git", "fetch", "origin")
	if err == nil {
		err = s.RunAlways(ctx, "git", "checkout", ref)
	}
	restore()
	if err != nil {
		return zerr.With(err, "ref", ref)
	}

	return s.Install(ctx, "--no-deps", "--editable", irisDir)
}
