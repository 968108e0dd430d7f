package domain

import "time"

// RunStatus is the outcome of a session run.
type RunStatus string

const (
	// RunStatusSuccess indicates every step of the session succeeded.
	RunStatusSuccess RunStatus = "success"
	// RunStatusFailed indicates a step of the session failed.
	RunStatusFailed RunStatus = "failed"
	// RunStatusSkipped indicates the session was not run.
	RunStatusSkipped RunStatus = "skipped"
)

// RunRecord is the persisted result of the latest run of a session.
type RunRecord struct {
	ID        string        `json:"id,omitzero"`
	Session   string        `json:"session,omitzero"`
	Python    string        `json:"python,omitzero"`
	InputHash string        `json:"input_hash,omitzero"`
	Status    RunStatus     `json:"status,omitzero"`
	StartedAt time.Time     `json:"started_at,omitzero"`
	Duration  time.Duration `json:"duration,omitzero"`
	Error     string        `json:"error,omitzero"`
}

// RunInputs describes what a session run depends on, for fingerprinting.
type RunInputs struct {
	Session string
	Python  string
	PosArgs []string
	// Files are paths or glob patterns whose contents feed the fingerprint.
	Files []string
}
