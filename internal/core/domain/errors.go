package domain

import "go.trai.ch/zerr"

var (
	// ErrSessionNotFound is returned when a requested session is not defined.
	ErrSessionNotFound = zerr.New("session not found")

	// ErrSessionFailed is returned when one or more sessions fail.
	ErrSessionFailed = zerr.New("session failed")

	// ErrDuplicateSession is returned when two sessions share a name.
	ErrDuplicateSession = zerr.New("session already defined")

	// ErrUnknownBackend is returned when no environment backend of the requested kind is available.
	ErrUnknownBackend = zerr.New("unknown environment backend")

	// ErrCondaUnsupported is returned when a conda operation is requested from a non-conda environment.
	ErrCondaUnsupported = zerr.New("conda install is only supported by conda environments")

	// ErrEmptyCommand is returned when a command has no program to run.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrFetchFailed is returned when a remote file cannot be downloaded.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrInvalidRequirements is returned when an environment spec cannot be rewritten.
	ErrInvalidRequirements = zerr.New("invalid requirements file")
)
