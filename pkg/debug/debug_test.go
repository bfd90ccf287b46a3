package debug

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevEnabled, prevLogger := enabled, logger
	t.Cleanup(func() {
		enabled, logger = prevEnabled, prevLogger
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	return &buf
}

func TestLogWritesWhenEnabled(t *testing.T) {
	buf := withBuffer(t)

	Log("selected tutorial %d", 3)
	LogTiming("render", 5*time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "selected tutorial 3") {
		t.Errorf("expected formatted message in output, got %q", out)
	}
	if !strings.Contains(out, "render") {
		t.Errorf("expected timing entry in output, got %q", out)
	}
	if !strings.Contains(out, "picbook") {
		t.Errorf("expected logger name in output, got %q", out)
	}
}

func TestLogSilentWhenDisabled(t *testing.T) {
	buf := withBuffer(t)
	SetEnabled(false)

	Log("should not appear")
	LogIf(true, "nor this")
	LogEnterExit("fn")()

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
	if Enabled() {
		t.Error("Enabled() should be false")
	}
}

func TestLogIfAndEnterExit(t *testing.T) {
	buf := withBuffer(t)

	LogIf(false, "skipped")
	LogIf(true, "kept")
	LogEnterExit("advance")()

	out := buf.String()
	if strings.Contains(out, "skipped") {
		t.Error("LogIf(false) should not log")
	}
	for _, want := range []string{"kept", "-> advance", "<- advance"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}
