// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig describes where the movie catalog comes from and how it is refreshed.
type CatalogConfig struct {
	// Path is the CSV file holding the catalog. Required.
	Path string `koanf:"path"`

	// Watch enables fsnotify-based reloads when the file changes.
	Watch bool `koanf:"watch"`

	// WatchDebounce coalesces bursts of write events into one reload.
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// ReloadInterval forces a periodic reload. Zero disables it.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// RecommendConfig holds recommender settings.
type RecommendConfig struct {
	// DefaultK is the number of results returned when a request omits k.
	DefaultK int `koanf:"default_k"`

	// MaxK caps the k a caller can ask for.
	MaxK int `koanf:"max_k"`

	// Cutoff is the minimum fuzzy ratio for a title to count as a match (0, 1].
	Cutoff float64 `koanf:"cutoff"`

	// MaxCandidates is how many close matches the matcher keeps.
	MaxCandidates int `koanf:"max_candidates"`

	// BuildWorkers bounds similarity matrix construction. 0 = runtime.NumCPU().
	BuildWorkers int `koanf:"build_workers"`

	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings, mirrored into logging.Config at startup.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Addr returns the host:port the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load is the entry point used by the binaries.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
