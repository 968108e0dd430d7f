package sessions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/engine/session"
	"go.trai.ch/zerr"
)

const (
	lockDirPerm  = 0o750
	lockFilePerm = 0o644

	irisDependencyPrefix = "iris"
)

// UpdateLockfiles re-resolves every requirements/py*.yml env spec with
// conda-lock and stores the results under the lock directory.
func (c *Catalog) UpdateLockfiles(ctx context.Context, s *session.Session) error {
	if err := s.Install(ctx, "conda-lock"); err != nil {
		return err
	}

	specs, err := filepath.Glob(filepath.Join(c.opts.RequirementsDir, "py[0-9]*.yml"))
	if err != nil {
		return zerr.Wrap(err, "failed to list env specs")
	}

	for _, spec := range specs {
		if err := c.lockSpec(ctx, s, spec); err != nil {
			return zerr.With(err, "spec", spec)
		}
	}
	return nil
}

func (c *Catalog) lockSpec(ctx context.Context, s *session.Session, spec string) error {
	pyString := strings.TrimSuffix(filepath.Base(spec), filepath.Ext(spec))
	template := c.opts.Lock.LockfilePath(pyString, true)
	lockfile := c.opts.Lock.LockfilePath(pyString, false)

	if err := os.Mkdir(filepath.Dir(template), lockDirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return zerr.With(zerr.Wrap(err, "failed to create lock directory"), "path", filepath.Dir(template))
	}

	// The env spec is edited when an Iris checkout is selected, so work on a copy.
	tmp, err := s.CreateTmp()
	if err != nil {
		return err
	}
	local := filepath.Join(tmp, filepath.Base(spec))
	if err := copyFile(spec, local); err != nil {
		return err
	}

	args := []string{
		"conda-lock",
		"lock",
		"--filename-template=" + template,
		"--file=" + local,
		"--platform=" + c.opts.Lock.Platform,
	}

	if ref, ok := domain.ResolveSourceArtifact(c.opts.IrisSource, s.PosArgs()); ok {
		irisSpec, err := c.fetchIrisSpec(ctx, local, tmp, pyString, ref)
		if err != nil {
			return err
		}
		args = append(args, "--file="+irisSpec)
	}

	if err := s.RunSilent(ctx, args...); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.out, "Conda lock file created: %s\n", lockfile)
	return nil
}

// fetchIrisSpec drops Iris from the local spec and downloads Iris' own spec for ref.
func (c *Catalog) fetchIrisSpec(ctx context.Context, local, tmp, pyString, ref string) (string, error) {
	if err := c.editor.StripDependencies(local, irisDependencyPrefix); err != nil {
		return "", err
	}

	data, err := c.fetcher.Fetch(ctx, c.opts.IrisRequirementsFor(ref, pyString+".yml"))
	if err != nil {
		return "", err
	}

	path := filepath.Join(tmp, pyString+"-iris.yml")
	if err := os.WriteFile(path, data, lockFilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write iris env spec"), "path", path)
	}
	return path, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // Path comes from the requirements glob
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read env spec"), "path", src)
	}
	if err := os.WriteFile(dst, data, lockFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to copy env spec"), "path", dst)
	}
	return nil
}
