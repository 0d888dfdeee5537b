// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// Recommender is the part of recommend.Engine the handlers use.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Similar(ctx context.Context, index, k int) (*recommend.Response, error)
	Suggest(prefix string, limit int) ([]recommend.Suggestion, error)
	Status() recommend.Status
}

// CatalogReloader reloads the catalog file into the engine.
type CatalogReloader interface {
	Reload(ctx context.Context, trigger string) (*models.ReloadResult, error)
	Path() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommendations, similar movies, title suggestions
//   - handlers_catalog.go: catalog status and reload
//   - handlers_health.go: liveness and readiness
type Handler struct {
	engine    Recommender
	reloader  CatalogReloader
	version   string
	startTime time.Time
}

// NewHandler creates a handler. reloader may be nil, in which case the
// reload endpoint answers 503.
func NewHandler(engine Recommender, reloader CatalogReloader, version string) *Handler {
	return &Handler{
		engine:    engine,
		reloader:  reloader,
		version:   version,
		startTime: time.Now(),
	}
}
