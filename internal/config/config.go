// Package config persists timer settings so a duration can be reused
// without re-typing it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned by Load when the config file does not exist.
	ErrNotFound = errors.New("config not found")
	// ErrRead is returned by Load when the file exists but cannot be read.
	ErrRead = errors.New("config not readable")
	// ErrInvalid is returned by Load when the file is not valid YAML or
	// lacks a usable duration_seconds field.
	ErrInvalid = errors.New("invalid config")
	// ErrWrite is returned by Save when the file cannot be written.
	ErrWrite = errors.New("config not writable")
)

// File is one persisted config record.
type File struct {
	Duration  time.Duration
	Action    string
	CreatedAt time.Time
}

// wire mirrors File on disk. The duration is stored as integer seconds; a
// pointer distinguishes a missing field from an explicit zero. Unknown fields
// in the backing file are ignored so newer writers stay readable.
type wire struct {
	DurationSeconds *int64     `yaml:"duration_seconds"`
	Action          string     `yaml:"action,omitempty"`
	CreatedAt       *time.Time `yaml:"created_at,omitempty"`
}

// Dir returns the per-user settings directory, ~/.offclock.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".offclock")
	}
	return filepath.Join(homeDir, ".offclock")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Save writes cfg to path, creating parent directories as needed. An
// existing file at path is overwritten.
func Save(path string, cfg File) error {
	if cfg.Duration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalid)
	}
	w := wire{Action: cfg.Action}
	secs := int64(cfg.Duration / time.Second)
	w.DurationSeconds = &secs
	if !cfg.CreatedAt.IsZero() {
		created := cfg.CreatedAt
		w.CreatedAt = &created
	}

	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Load reads the config at path. Each call re-reads the backing file; nothing
// is cached between invocations.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return File{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var w wire
	if err := yaml.Unmarshal(data, &w); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if w.DurationSeconds == nil {
		return File{}, fmt.Errorf("%w: %s lacks duration_seconds", ErrInvalid, path)
	}
	if *w.DurationSeconds < 0 {
		return File{}, fmt.Errorf("%w: negative duration_seconds in %s", ErrInvalid, path)
	}

	cfg := File{
		Duration: time.Duration(*w.DurationSeconds) * time.Second,
		Action:   w.Action,
	}
	if w.CreatedAt != nil {
		cfg.CreatedAt = *w.CreatedAt
	}
	return cfg, nil
}
