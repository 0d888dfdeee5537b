// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/middleware"
	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/recommend"
	"github.com/tomtom215/moviematch/internal/validation"
)

// Error codes used in API responses.
const (
	ErrCodeValidation   = validation.ErrorCode
	ErrCodeEmptyQuery   = "EMPTY_QUERY"
	ErrCodeNoMatch      = "NO_MATCH"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeNotReady     = "NOT_READY"
	ErrCodeReloadFailed = "RELOAD_FAILED"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// User-facing messages.
const (
	msgEmptyQuery = "Please enter a movie name."
	msgNoMatch    = "No close match found. Please try another movie name."
	msgNotReady   = "Recommendations are not available yet, the catalog is still loading."
	msgInternal   = "Internal server error"
)

// sanitizeLogValue escapes control characters so request input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes the envelope with an ETag. Handlers that set
// Cache-Control before calling keep their value. Successful responses
// default to no-cache: results depend on the active model, which a reload
// can replace at any time.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	if h.Get("Cache-Control") == "" {
		if status >= http.StatusBadRequest {
			h.Set("Cache-Control", "no-store")
		} else {
			h.Set("Cache-Control", "no-cache")
		}
	}
	h.Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a weak ETag over the response body.
func generateETag(data []byte) string {
	return `W/"` + strconv.FormatUint(xxhash.Sum64(data), 16) + `"`
}

func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, queryTime time.Duration, cached bool) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			RequestID:   middleware.GetRequestID(r.Context()),
			QueryTimeMS: queryTime.Milliseconds(),
			Cached:      cached,
		},
	})
}

// respondError sends an error response. err is logged, never returned to the client.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// respondEngineError maps recommender errors to status codes.
// notFoundOnIndex reports a bad index as 404 rather than 500, for endpoints
// where the index comes from the caller.
func respondEngineError(w http.ResponseWriter, err error, notFoundOnIndex bool) {
	switch {
	case errors.Is(err, recommend.ErrEmptyQuery):
		respondError(w, http.StatusBadRequest, ErrCodeEmptyQuery, msgEmptyQuery, nil)
	case errors.Is(err, recommend.ErrNoMatch):
		respondError(w, http.StatusNotFound, ErrCodeNoMatch, msgNoMatch, nil)
	case errors.Is(err, recommend.ErrNotReady):
		respondError(w, http.StatusServiceUnavailable, ErrCodeNotReady, msgNotReady, nil)
	case errors.Is(err, recommend.ErrIndexOutOfRange) && notFoundOnIndex:
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "No movie with that index", nil)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, msgInternal, err)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// parseIntParam parses an optional integer parameter. Unlike a lenient
// default, garbage input is reported so the caller can answer 400.
func parseIntParam(value string, defaultValue int, name string) (int, *models.APIError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &models.APIError{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("%s must be an integer", name),
			Details: map[string]interface{}{"field": name, "value": sanitizeLogValue(value)},
		}
	}
	return n, nil
}
