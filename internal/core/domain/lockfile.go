// Package domain contains the core domain models for sessions, environments and lock files.
package domain

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultLockDir is the directory holding the generated lock files.
	DefaultLockDir = "requirements/nox.lock"

	// DefaultLockPlatform is the platform every lock file is resolved for.
	DefaultLockPlatform = "linux-64"

	// PlatformPlaceholder is the literal conda-lock substitutes in --filename-template.
	PlatformPlaceholder = "{platform}"

	lockfileExt = ".lock"
)

// LockLayout describes where lock files live and which platform they target.
type LockLayout struct {
	Dir      string
	Platform string
}

// DefaultLockLayout returns the layout used when no configuration overrides it.
func DefaultLockLayout() LockLayout {
	return LockLayout{Dir: DefaultLockDir, Platform: DefaultLockPlatform}
}

// LockfilePath returns the lock file path for pyString (e.g. "38", "3.8" or "py38").
// With placeholder set, the platform segment is left as {platform}.
func (l LockLayout) LockfilePath(pyString string, placeholder bool) string {
	platform := l.Platform
	if placeholder {
		platform = PlatformPlaceholder
	}
	name := PyString(pyString) + "-" + platform + lockfileExt
	return filepath.Join(filepath.FromSlash(l.Dir), name)
}

// SessionLockfile returns the lock file for an interpreter version such as "3.8".
func (l LockLayout) SessionLockfile(python string) string {
	return l.LockfilePath(python, false)
}

// LockfilePath returns the lock file path for pyString using the default layout.
func LockfilePath(pyString string, placeholder bool) string {
	return DefaultLockLayout().LockfilePath(pyString, placeholder)
}

// PyString normalizes an interpreter version to the "py<digits>" form used in file names.
func PyString(version string) string {
	s := strings.ReplaceAll(strings.TrimSpace(version), ".", "")
	if strings.HasPrefix(s, "py") {
		return s
	}
	return "py" + s
}
