// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// recommendConfig maps application config onto the engine config.
func recommendConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	return &recommend.Config{
		DefaultK:      r.DefaultK,
		MaxK:          r.MaxK,
		Cutoff:        r.Cutoff,
		MaxCandidates: r.MaxCandidates,
		BuildWorkers:  r.BuildWorkers,
		Cache: recommend.CacheConfig{
			Enabled:    r.CacheEnabled,
			TTL:        r.CacheTTL,
			MaxEntries: r.CacheMaxEntries,
		},
	}
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newEngine(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	return recommend.NewEngine(recommendConfig(cfg), logger)
}
