package summary_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/engine/runner"
	"go.trai.ch/noxy/internal/ui/summary"
)

func TestPrinter_Results(t *testing.T) {
	var buf bytes.Buffer
	summary.New(&buf).Results([]runner.Result{
		{Session: "flake8", Status: domain.RunStatusSuccess, Duration: 1234 * time.Millisecond},
		{Session: "tests-3.8", Status: domain.RunStatusFailed, Duration: 250 * time.Millisecond},
		{Session: "black", Status: domain.RunStatusSkipped},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Sessions:",
		"✓ flake8 was successful in 1.2s",
		"✗ tests-3.8 failed in 250ms",
		"~ black was skipped",
	}, lines)
}

func TestPrinter_Results_Empty(t *testing.T) {
	var buf bytes.Buffer
	summary.New(&buf).Results(nil)
	assert.Empty(t, buf.String())
}

func TestPrinter_Records(t *testing.T) {
	var buf bytes.Buffer
	summary.New(&buf).Records([]domain.RunRecord{{
		Session:   "tests-3.8",
		Status:    domain.RunStatusSuccess,
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local),
		Duration:  3 * time.Second,
	}})

	out := buf.String()
	assert.Contains(t, out, "tests-3.8")
	assert.Contains(t, out, "was successful")
	assert.Contains(t, out, "2024-05-01 12:00:00")
	assert.Contains(t, out, "3s")
}

func TestPrinter_Records_Empty(t *testing.T) {
	var buf bytes.Buffer
	summary.New(&buf).Records(nil)
	assert.Equal(t, "No sessions have been run yet.\n", buf.String())
}

func TestPrinter_Sessions(t *testing.T) {
	var buf bytes.Buffer
	summary.New(&buf).Sessions([]summary.Entry{
		{Name: "flake8", Description: "Perform flake8 linting of the code-base."},
	})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Sessions defined:\n"))
	assert.Contains(t, out, "flake8")
	assert.Contains(t, out, "Perform flake8 linting of the code-base.")
}
