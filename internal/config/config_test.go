package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero region", func(c *Config) { c.RegionSize = 0 }},
		{"negative region", func(c *Config) { c.RegionSize = -1 }},
		{"zero scenarios", func(c *Config) { c.Scenarios = 0 }},
		{"negative jitter", func(c *Config) { c.JitterMax = -1 }},
		{"zero pattern min", func(c *Config) { c.PatternMin = 0 }},
		{"inverted pattern range", func(c *Config) { c.PatternMin, c.PatternMax = 10, 5 }},
		{"zero fixed prob", func(c *Config) { c.FixedProb = 0 }},
		{"fixed prob above one", func(c *Config) { c.FixedProb = 1.5 }},
		{"zero occurrences", func(c *Config) { c.OccMin = 0 }},
		{"inverted occurrence range", func(c *Config) { c.OccMin, c.OccMax = 8, 3 }},
		{"region below pattern plus jitter", func(c *Config) { c.RegionSize = 100; c.JitterMax = 90; c.PatternMax = 32 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() passed for %+v, want error", cfg)
			}
		})
	}
}

func TestValidateAcceptsEdgeValues(t *testing.T) {
	cfg := Default()
	cfg.FixedProb = 1 // all positions fixed is allowed
	cfg.JitterMax = 0
	cfg.OccMin, cfg.OccMax = 1, 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v for edge values, want nil", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	body := "seed: 291\nscenarios: 16\nregion_size: 65536\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) = %v", path, err)
	}
	if cfg.Seed != 291 || cfg.Scenarios != 16 || cfg.RegionSize != 65536 || cfg.LogLevel != "debug" {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	// untouched fields keep their defaults
	if cfg.PatternMin != DefaultPatternMin || cfg.FixedProb != DefaultFixedProb {
		t.Errorf("defaults lost in overlay: %+v", cfg)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scenarios: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of invalid config succeeded, want error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbled.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML succeeded, want error")
	}
}
