// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moviematch/internal/models"
)

func (h *Handler) healthStatus(status string) models.HealthStatus {
	s := h.engine.Status()
	return models.HealthStatus{
		Status:       status,
		Version:      h.version,
		ModelLoaded:  s.Ready,
		ModelVersion: s.ModelVersion,
		Movies:       s.Movies,
		Uptime:       time.Since(h.startTime).Seconds(),
		Timestamp:    time.Now(),
	}
}

// HealthLive reports that the process is serving. Always 200.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, r, h.healthStatus("alive"), 0, false)
}

// HealthReady reports 200 once a model is loaded and 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	health := h.healthStatus("ready")
	if !health.ModelLoaded {
		health.Status = "not_ready"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     health,
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    &models.APIError{Code: ErrCodeNotReady, Message: msgNotReady},
		})
		return
	}

	respondSuccess(w, r, health, 0, false)
}
