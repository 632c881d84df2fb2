package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, d := range []time.Duration{0, 30 * time.Second, 90 * time.Minute, 100000 * time.Hour} {
		path := filepath.Join(dir, "config.yaml")
		if err := Save(path, File{Duration: d, Action: "logout", CreatedAt: time.Now()}); err != nil {
			t.Fatalf("Save(%v): %v", d, err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load after Save(%v): %v", d, err)
		}
		if cfg.Duration != d {
			t.Errorf("round trip: got %v, want %v", cfg.Duration, d)
		}
		if cfg.Action != "logout" {
			t.Errorf("Action = %q, want %q", cfg.Action, "logout")
		}
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "config.yaml")
	if err := Save(path, File{Duration: time.Minute}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, File{Duration: time.Minute}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := Save(path, File{Duration: time.Hour}); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Duration != time.Hour {
		t.Errorf("Duration = %v, want 1h", cfg.Duration)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load = %v, want ErrNotFound", err)
	}
}

func TestLoadReadFailure(t *testing.T) {
	// A path that exists but cannot be read as a file (here: a directory)
	// is a read failure, distinct from not-found and from bad content.
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrRead) {
		t.Errorf("Load on directory = %v, want ErrRead", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "{{{not yaml"},
		{"missing field", "action: logout\n"},
		{"negative", "duration_seconds: -5\n"},
		{"wrong type", "duration_seconds: soon\n"},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name+".yaml")
		os.WriteFile(path, []byte(tt.content), 0644)
		_, err := Load(path)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Load = %v, want ErrInvalid", tt.name, err)
		}
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
duration_seconds: 300
action: sleep
some_future_setting: true
`
	os.WriteFile(path, []byte(content), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Duration != 5*time.Minute {
		t.Errorf("Duration = %v, want 5m", cfg.Duration)
	}
	if cfg.Action != "sleep" {
		t.Errorf("Action = %q, want %q", cfg.Action, "sleep")
	}
}

func TestLoadAcceptsJSONDocument(t *testing.T) {
	// YAML is a JSON superset, so configs written by other tools in JSON
	// still load.
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"duration_seconds": 90}`), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", cfg.Duration)
	}
}

func TestLoadZeroMeansFireImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("duration_seconds: 0\n"), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Duration != 0 {
		t.Errorf("Duration = %v, want 0", cfg.Duration)
	}
}
