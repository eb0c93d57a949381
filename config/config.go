// Package config loads the pipeline's yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"daylists/data"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoKeywords          = errors.New("at least one keyword is required")
	ErrUnknownKeyword      = errors.New("keywords must be one of: morning, afternoon, evening, night")
	ErrInvalidSearchLimit  = errors.New("search_limit must be between 1 and 50")
	ErrInvalidMinTracks    = errors.New("min_tracks must be non-negative")
	ErrInvalidMinFollowers = errors.New("min_followers must be non-negative")
	ErrMissingRawDir       = errors.New("raw_dir is required")
	ErrMissingDBPath       = errors.New("db_path is required")
	ErrInvalidDelay        = errors.New("request_delay_ms must be non-negative")
)

// Config holds the settings for both pipeline stages. Spotify credentials
// are not configured here; they come from the environment.
type Config struct {
	// Keywords are the daypart search terms the collector visits, in
	// order.
	Keywords []string `yaml:"keywords"`

	// SearchLimit is the page size requested per search variation.
	SearchLimit int `yaml:"search_limit"`

	// MinTracks and MinFollowers are the collector's inclusion filters.
	MinTracks    int64 `yaml:"min_tracks"`
	MinFollowers int64 `yaml:"min_followers"`

	// RawDir is where playlist records are stored between the stages.
	RawDir string `yaml:"raw_dir"`

	// DBPath is the sqlite database file the normalizer writes.
	DBPath string `yaml:"db_path"`

	// RequestDelayMS is the flat pause between catalog requests. It is
	// pacing to stay under the rate limit, not retry backoff.
	RequestDelayMS int64 `yaml:"request_delay_ms"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Keywords:       slices.Clone(data.Dayparts),
		SearchLimit:    10,
		MinTracks:      10,
		MinFollowers:   50,
		RawDir:         "data/raw",
		DBPath:         "daylists.db",
		RequestDelayMS: 1000,
	}
}

// Load reads a yaml config file, overlaying it on the defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config '%s': %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", path, err)
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if len(cfg.Keywords) == 0 {
		return ErrNoKeywords
	}
	for _, keyword := range cfg.Keywords {
		if !slices.Contains(data.Dayparts, keyword) {
			return fmt.Errorf("%w: got '%s'", ErrUnknownKeyword, keyword)
		}
	}
	if cfg.SearchLimit < 1 || cfg.SearchLimit > 50 {
		return ErrInvalidSearchLimit
	}
	if cfg.MinTracks < 0 {
		return ErrInvalidMinTracks
	}
	if cfg.MinFollowers < 0 {
		return ErrInvalidMinFollowers
	}
	if cfg.RawDir == "" {
		return ErrMissingRawDir
	}
	if cfg.DBPath == "" {
		return ErrMissingDBPath
	}
	if cfg.RequestDelayMS < 0 {
		return ErrInvalidDelay
	}
	return nil
}

// RequestDelay returns the inter-request pause as a duration.
func (cfg *Config) RequestDelay() time.Duration {
	return time.Duration(cfg.RequestDelayMS) * time.Millisecond
}
