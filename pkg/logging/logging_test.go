package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("split failed", "bill_id", "b1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "split failed") || !strings.Contains(out, "bill_id=b1") {
		t.Errorf("warn message missing or unformatted: %q", out)
	}
}
