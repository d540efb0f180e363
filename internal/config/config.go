// Package config holds the tunable knobs of a benchmark run. Values come
// from built-in defaults, overridden by an optional YAML file, overridden
// in turn by command-line flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the generation knobs. The probability and range values have
// no empirical rationale beyond broad stress coverage: wildcards present
// but not dominant, varied pattern lengths, several implanted occurrences,
// unaligned window starts.
const (
	// DefaultRegionSize is the haystack size when no file is supplied.
	DefaultRegionSize = 64 << 20
	// DefaultScenarios is the number of generated test cases per run.
	DefaultScenarios = 512
	// DefaultJitterMax bounds the random offset the window start is
	// advanced by, forcing scanners to cope with unaligned data.
	DefaultJitterMax = 100
	// DefaultPatternMin and DefaultPatternMax bound the generated
	// pattern length.
	DefaultPatternMin = 5
	DefaultPatternMax = 32
	// DefaultFixedProb is the probability that a pattern position is a
	// fixed byte rather than a wildcard.
	DefaultFixedProb = 0.9
	// DefaultOccMin and DefaultOccMax bound how many occurrences are
	// stamped into each scenario window.
	DefaultOccMin = 2
	DefaultOccMax = 10
)

// Config is the full set of run parameters.
type Config struct {
	// Seed drives all randomness. Zero resolves to a fresh seed from the
	// entropy source at startup.
	Seed       uint32  `yaml:"seed"`
	RegionSize int     `yaml:"region_size"`
	Scenarios  int     `yaml:"scenarios"`
	JitterMax  int     `yaml:"jitter_max"`
	PatternMin int     `yaml:"pattern_min"`
	PatternMax int     `yaml:"pattern_max"`
	FixedProb  float64 `yaml:"fixed_prob"`
	OccMin     int     `yaml:"occurrences_min"`
	OccMax     int     `yaml:"occurrences_max"`
	LogLevel   string  `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed:       0,
		RegionSize: DefaultRegionSize,
		Scenarios:  DefaultScenarios,
		JitterMax:  DefaultJitterMax,
		PatternMin: DefaultPatternMin,
		PatternMax: DefaultPatternMax,
		FixedProb:  DefaultFixedProb,
		OccMin:     DefaultOccMin,
		OccMax:     DefaultOccMax,
		LogLevel:   "info",
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults unchanged. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.RegionSize <= 0 {
		return fmt.Errorf("region_size must be positive, got %d", c.RegionSize)
	}
	if c.Scenarios <= 0 {
		return fmt.Errorf("scenarios must be positive, got %d", c.Scenarios)
	}
	if c.JitterMax < 0 {
		return fmt.Errorf("jitter_max must not be negative, got %d", c.JitterMax)
	}
	if c.PatternMin < 1 {
		return fmt.Errorf("pattern_min must be at least 1, got %d", c.PatternMin)
	}
	if c.PatternMax < c.PatternMin {
		return fmt.Errorf("pattern_max %d below pattern_min %d", c.PatternMax, c.PatternMin)
	}
	if c.FixedProb <= 0 || c.FixedProb > 1 {
		return fmt.Errorf("fixed_prob must be in (0, 1], got %g", c.FixedProb)
	}
	if c.OccMin < 1 {
		return fmt.Errorf("occurrences_min must be at least 1, got %d", c.OccMin)
	}
	if c.OccMax < c.OccMin {
		return fmt.Errorf("occurrences_max %d below occurrences_min %d", c.OccMax, c.OccMin)
	}
	// even the most jittered window must still fit the longest pattern
	if c.PatternMax+c.JitterMax > c.RegionSize {
		return fmt.Errorf("region_size %d too small for pattern_max %d with jitter_max %d",
			c.RegionSize, c.PatternMax, c.JitterMax)
	}
	return nil
}
