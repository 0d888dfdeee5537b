// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Catalog.Path != "movies.csv" {
		t.Errorf("Catalog.Path = %q, want movies.csv", cfg.Catalog.Path)
	}
	if cfg.Recommend.DefaultK != 20 {
		t.Errorf("Recommend.DefaultK = %d, want 20", cfg.Recommend.DefaultK)
	}
	if cfg.Recommend.Cutoff != 0.6 {
		t.Errorf("Recommend.Cutoff = %g, want 0.6", cfg.Recommend.Cutoff)
	}
	if cfg.Recommend.MaxCandidates != 3 {
		t.Errorf("Recommend.MaxCandidates = %d, want 3", cfg.Recommend.MaxCandidates)
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestServerConfigAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := s.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"empty catalog path", func(c *Config) { c.Catalog.Path = "  " }, "MOVIES_CSV"},
		{"watch without debounce", func(c *Config) {
			c.Catalog.Watch = true
			c.Catalog.WatchDebounce = 0
		}, "CATALOG_WATCH_DEBOUNCE"},
		{"negative reload interval", func(c *Config) { c.Catalog.ReloadInterval = -time.Second }, "CATALOG_RELOAD_INTERVAL"},
		{"zero k", func(c *Config) { c.Recommend.DefaultK = 0 }, "RECOMMEND_TOP_K"},
		{"max below default", func(c *Config) { c.Recommend.MaxK = 10 }, "RECOMMEND_MAX_K"},
		{"cutoff zero", func(c *Config) { c.Recommend.Cutoff = 0 }, "RECOMMEND_CUTOFF"},
		{"cutoff above one", func(c *Config) { c.Recommend.Cutoff = 1.5 }, "RECOMMEND_CUTOFF"},
		{"cutoff one allowed", func(c *Config) { c.Recommend.Cutoff = 1 }, ""},
		{"no candidates", func(c *Config) { c.Recommend.MaxCandidates = 0 }, "RECOMMEND_MAX_CANDIDATES"},
		{"negative workers", func(c *Config) { c.Recommend.BuildWorkers = -1 }, "RECOMMEND_BUILD_WORKERS"},
		{"cache ttl", func(c *Config) { c.Recommend.CacheTTL = 0 }, "RECOMMEND_CACHE_TTL"},
		{"cache disabled ignores ttl", func(c *Config) {
			c.Recommend.CacheEnabled = false
			c.Recommend.CacheTTL = 0
		}, ""},
		{"cache entries", func(c *Config) { c.Recommend.CacheMaxEntries = 0 }, "RECOMMEND_CACHE_MAX_ENTRIES"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"rate limit requests", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log level any case", func(c *Config) { c.Logging.Level = "WARN" }, ""},
		{"log level disabled", func(c *Config) { c.Logging.Level = "disabled" }, ""},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
