package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	if got := Level(true); got != slog.LevelDebug {
		t.Errorf("Level(true) = %v, want %v", got, slog.LevelDebug)
	}
	if got := Level(false); got != slog.LevelWarn {
		t.Errorf("Level(false) = %v, want %v", got, slog.LevelWarn)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("quiet mode drops debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Debug("debug message")
		logger.Info("info message")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}

		logger.Warn("warn message")
		if !strings.Contains(buf.String(), "warn message") {
			t.Errorf("expected warning in output, got %q", buf.String())
		}
	})

	t.Run("verbose mode shows debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.Debug("scan report loaded", "path", "scan.json", "findings", 3)

		output := buf.String()
		if !strings.Contains(output, "level=DEBUG") {
			t.Errorf("expected debug level in output, got %q", output)
		}
		if !strings.Contains(output, "path=scan.json") {
			t.Errorf("expected path attribute in output, got %q", output)
		}
		if !strings.Contains(output, "findings=3") {
			t.Errorf("expected findings attribute in output, got %q", output)
		}
	})
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)
	logger.Debug("result", "target", "alpine:3.18")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected valid JSON, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "result" {
		t.Errorf("expected msg 'result', got %v", record["msg"])
	}
	if record["target"] != "alpine:3.18" {
		t.Errorf("expected target attribute, got %v", record["target"])
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("expected discard logger to be disabled for every level")
	}
}
