// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/middleware"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// Recommendations returns the movies most similar to the catalog title
// closest to ?title=.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	title := q.Get("title")
	if strings.TrimSpace(title) == "" {
		respondError(w, http.StatusBadRequest, ErrCodeEmptyQuery, msgEmptyQuery, nil)
		return
	}

	k, apiErr := parseIntParam(q.Get("k"), 0, "k")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	req := RecommendationsRequest{Title: title, K: k}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Query:     req.Title,
		K:         req.K,
		RequestID: middleware.GetRequestID(r.Context()),
	})
	if err != nil {
		logging.Ctx(r.Context()).Debug().
			Str("title", sanitizeLogValue(req.Title)).
			Err(err).
			Msg("Recommendation request failed")
		respondEngineError(w, err, false)
		return
	}

	respondSuccess(w, r, resp, time.Since(start), resp.Metadata.CacheHit)
}

// Similar returns the movies most similar to the movie at {index}.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	index, apiErr := parseIntParam(chi.URLParam(r, "index"), -1, "index")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	k, apiErr := parseIntParam(r.URL.Query().Get("k"), 0, "k")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	req := SimilarRequest{Index: index, K: k}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	resp, err := h.engine.Similar(r.Context(), req.Index, req.K)
	if err != nil {
		respondEngineError(w, err, true)
		return
	}

	respondSuccess(w, r, resp, time.Since(start), false)
}

// SuggestTitles autocompletes catalog titles for ?prefix=.
func (h *Handler) SuggestTitles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	limit, apiErr := parseIntParam(q.Get("limit"), 0, "limit")
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	req := SuggestRequest{Prefix: q.Get("prefix"), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	suggestions, err := h.engine.Suggest(req.Prefix, req.Limit)
	if err != nil {
		respondEngineError(w, err, false)
		return
	}
	if suggestions == nil {
		suggestions = []recommend.Suggestion{}
	}

	respondSuccess(w, r, suggestions, time.Since(start), false)
}
