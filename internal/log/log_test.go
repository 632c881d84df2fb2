package log

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitVerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Verbose: true, Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Debug("poll tick", "remaining", "5s")
	if !strings.Contains(buf.String(), "poll tick") {
		t.Errorf("debug message missing from verbose output: %q", buf.String())
	}
}

func TestInitQuietHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Debug("hidden")
	Info("also hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug/info leaked into quiet output: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warning missing from output: %q", out)
	}
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Verbose: true, JSONFormat: true, Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Info("timer fired", "action", "logout")
	out := buf.String()
	if !strings.Contains(out, `"msg":"timer fired"`) || !strings.Contains(out, `"action":"logout"`) {
		t.Errorf("unexpected JSON output: %q", out)
	}
}

func TestInitWritesDebugFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := Init(Options{Stderr: &buf, DebugDir: dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	Debug("armed", "duration", "30s")

	matches, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("debug file missing: matches=%v err=%v", matches, err)
	}
}
