// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// CatalogStatus describes the loaded catalog and model.
type CatalogStatus struct {
	Path string `json:"path,omitempty"`
	recommend.Status
}

// Catalog returns the active model status.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := CatalogStatus{Status: h.engine.Status()}
	if h.reloader != nil {
		status.Path = h.reloader.Path()
	}

	w.Header().Set("Cache-Control", "no-cache")
	respondSuccess(w, r, status, time.Since(start), false)
}

// ReloadCatalog re-reads the catalog file and swaps in a new model. On
// failure the previous model stays active.
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeNotReady, "Catalog reload is not available", nil)
		return
	}

	start := time.Now()
	result, err := h.reloader.Reload(r.Context(), metrics.TriggerManual)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeReloadFailed,
			"Catalog reload failed, the previous catalog is still active", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("movies", result.Movies).
		Int64("model_version", result.ModelVersion).
		Msg("Catalog reloaded via API")

	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, r, result, time.Since(start), false)
}
