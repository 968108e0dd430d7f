package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"go.trai.ch/noxy/internal/adapters/logger"
	"go.trai.ch/noxy/internal/core/domain"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close pipe: %v", err)
	}
	output := <-done
	_ = r.Close()
	return output
}

func TestNew_WritesToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		logger.New().Info("populating conda env")
	})

	if !strings.Contains(output, "populating conda env") {
		t.Errorf("Expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Warn("some warning")
	lg.Error(os.ErrPermission)

	output := buf.String()
	for _, want := range []string{"WARN", "some warning", "ERROR", "permission denied"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestLogger_DebugRequiresLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("Expected debug output to be suppressed at info level, got: %s", buf.String())
	}

	lg.SetLevel(domain.LogLevelDebug)
	lg.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected debug output after SetLevel, got: %s", buf.String())
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)
	lg.SetLevel(domain.LogLevelDebug)

	lg.SetOutput(&second)
	lg.Debug("moved")

	if first.Len() != 0 {
		t.Errorf("Expected nothing on the original writer, got: %s", first.String())
	}
	if !strings.Contains(second.String(), "moved") {
		t.Errorf("Expected message on the new writer with the level preserved, got: %s", second.String())
	}
}
