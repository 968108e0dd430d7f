// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor that streams process output to logger.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command with the system environment overlaid by cmd.Env.
// PATH entries from cmd.Env are prepended to the system PATH, so tools installed
// in a session environment win over the host's.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command) error {
	name := cmd.Program()
	if name == "" {
		return domain.ErrEmptyCommand
	}

	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	proc := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // commands are defined by sessions
	// Keep the name as invoked rather than the resolved path.
	proc.Args[0] = name
	proc.Dir = cmd.Dir
	proc.Env = cmdEnv

	var captured *lockedBuffer
	stdoutLog := &logWriter{emit: e.logger.Info}
	stderrLog := &logWriter{emit: func(line string) { e.logger.Warn(line) }}
	var stdout, stderr io.Writer = stdoutLog, stderrLog
	if cmd.Silent {
		captured = &lockedBuffer{}
		stdout, stderr = captured, captured
	}
	proc.Stdout = teeWriter(stdout, cmd.Stdout)
	proc.Stderr = teeWriter(stderr, cmd.Stderr)

	e.logger.Debug(strings.Join(cmd.Args, " "))
	runErr := proc.Run()
	stdoutLog.Flush()
	stderrLog.Flush()

	if runErr == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	err := zerr.Wrap(runErr, domain.ErrCommandFailed.Error())
	err = zerr.With(err, "command", strings.Join(cmd.Args, " "))
	err = zerr.With(err, "exit_code", exitCode)
	if captured != nil {
		output := captured.String()
		// Silent commands only surface their output when they fail.
		e.logger.Warn(output)
		err = zerr.With(err, "output", tail(output, maxTailLines))
	}
	return err
}

const maxTailLines = 20

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

func teeWriter(primary, extra io.Writer) io.Writer {
	if extra == nil {
		return primary
	}
	return io.MultiWriter(primary, extra)
}

// logWriter splits a byte stream into lines and emits each complete line.
// Partial lines are held until a newline arrives or Flush is called.
type logWriter struct {
	emit func(string)
	mu   sync.Mutex
	buf  []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// resolveEnvironment merges the system environment with the session environment.
func resolveEnvironment(sysEnv, sessionEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv))
	order := make([]string, 0, len(sysEnv))
	set := func(k, v string) {
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range sessionEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
