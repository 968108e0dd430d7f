// Package summary renders session outcomes and recorded runs for the terminal.
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/engine/runner"
	"go.trai.ch/noxy/internal/ui/style"
)

const timeLayout = "2006-01-02 15:04:05"

// Printer writes styled summaries to w. Colors are dropped when w is not a terminal.
type Printer struct {
	w       io.Writer
	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	skipped lipgloss.Style
	muted   lipgloss.Style
	name    lipgloss.Style
}

// New creates a Printer for w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		header:  r.NewStyle().Bold(true).Foreground(style.Iris),
		success: r.NewStyle().Foreground(style.Green),
		failure: r.NewStyle().Foreground(style.Red),
		skipped: r.NewStyle().Foreground(style.Yellow),
		muted:   r.NewStyle().Foreground(style.Slate),
		name:    r.NewStyle().Width(nameWidth),
	}
}

const nameWidth = 20

// Results prints one line per session outcome.
func (p *Printer) Results(results []runner.Result) {
	if len(results) == 0 {
		return
	}
	p.println(p.header.Render("Sessions:"))
	for _, res := range results {
		icon, text := p.status(res.Status)
		line := icon + " " + res.Session + " " + text
		if res.Status != domain.RunStatusSkipped {
			line += p.muted.Render(" in " + formatDuration(res.Duration))
		}
		p.println(line)
	}
}

// Records prints the recorded runs as a table.
func (p *Printer) Records(records []domain.RunRecord) {
	if len(records) == 0 {
		p.println(p.muted.Render("No sessions have been run yet."))
		return
	}
	for _, rec := range records {
		icon, text := p.status(rec.Status)
		p.println(fmt.Sprintf("%s %s %s %s %s",
			icon,
			p.name.Render(rec.Session),
			text,
			p.muted.Render(rec.StartedAt.Local().Format(timeLayout)),
			p.muted.Render(formatDuration(rec.Duration)),
		))
	}
}

// Sessions prints the available sessions with their descriptions.
func (p *Printer) Sessions(entries []Entry) {
	p.println(p.header.Render("Sessions defined:"))
	for _, e := range entries {
		p.println(p.success.Render(style.Dot) + " " + p.name.Render(e.Name) + " " + p.muted.Render(e.Description))
	}
}

// Entry is a listed session.
type Entry struct {
	Name        string
	Description string
}

func (p *Printer) status(status domain.RunStatus) (icon, text string) {
	switch status {
	case domain.RunStatusSuccess:
		return p.success.Render(style.Check), p.success.Render("was successful")
	case domain.RunStatusFailed:
		return p.failure.Render(style.Cross), p.failure.Render("failed")
	default:
		return p.skipped.Render(style.Tilde), p.skipped.Render("was skipped")
	}
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
