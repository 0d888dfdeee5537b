// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package models

import (
	"time"
)

// APIResponse is the envelope of every API response.
//
// Status is "success" with Data set, or "error" with Error set.
//
//	{
//	  "status": "success",
//	  "data": {"match": {"title": "Avatar", "index": 0, "score": 0.909}, "items": [...]},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 2}
//	}
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NO_MATCH", "message": "No close match found. Please try another movie name."},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata accompanies every response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError carries a machine-readable code and a message for humans.
//
// Codes:
//   - VALIDATION_ERROR: malformed parameters
//   - EMPTY_QUERY: blank title
//   - NO_MATCH: no catalog title close enough to the query
//   - NOT_FOUND: unknown movie index
//   - NOT_READY: no model loaded yet
//   - RELOAD_FAILED: catalog reload rejected, previous model still active
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	ModelLoaded  bool      `json:"model_loaded"`
	ModelVersion int64     `json:"model_version,omitempty"`
	Movies       int       `json:"movies,omitempty"`
	Uptime       float64   `json:"uptime_seconds"`
	Timestamp    time.Time `json:"timestamp"`
}

// ReloadResult describes a completed catalog reload.
type ReloadResult struct {
	Path         string `json:"path"`
	Movies       int    `json:"movies"`
	ModelVersion int64  `json:"model_version"`
	Fingerprint  string `json:"fingerprint"`
	DurationMS   int64  `json:"duration_ms"`
}
