// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/moviematch/internal/recommend/algorithms"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// DefaultK is the number of results when a request leaves K unset.
	// Default: 20.
	DefaultK int `json:"default_k"`

	// MaxK caps the number of results a request may ask for.
	// Default: 100.
	MaxK int `json:"max_k"`

	// Cutoff is the minimum similarity ratio for a fuzzy title match.
	// Default: 0.6.
	Cutoff float64 `json:"cutoff"`

	// MaxCandidates is the number of close matches considered. The best
	// one drives the recommendation; the rest are reported as alternatives.
	// Default: 3.
	MaxCandidates int `json:"max_candidates"`

	// BuildWorkers bounds the goroutines used to build the similarity
	// matrix. Zero means runtime.NumCPU().
	BuildWorkers int `json:"build_workers"`

	// Cache contains query cache parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains query cache parameters.
type CacheConfig struct {
	// Enabled controls whether responses are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is how long a cached response stays valid.
	// Default: 10 minutes.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached responses.
	// Default: 1024.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultK:      20,
		MaxK:          100,
		Cutoff:        algorithms.DefaultCutoff,
		MaxCandidates: algorithms.DefaultMaxMatches,
		BuildWorkers:  0,
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 1024,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k must be >= default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	if c.Cutoff < 0 || c.Cutoff > 1 {
		return fmt.Errorf("cutoff must be in [0, 1], got %f", c.Cutoff)
	}
	if c.MaxCandidates < 1 {
		return fmt.Errorf("max_candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.BuildWorkers < 0 {
		return fmt.Errorf("build_workers must be non-negative, got %d", c.BuildWorkers)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
