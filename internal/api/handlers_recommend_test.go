// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/moviematch/internal/recommend"
)

func TestRecommendations_Success(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)
	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations?title=Matrx")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Errorf("status field = %q", env.Status)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("expected ETag header")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	var resp recommend.Response
	decodeData(t, env, &resp)

	if resp.Match.Title != "The Matrix" {
		t.Errorf("match = %q, want The Matrix", resp.Match.Title)
	}
	if len(resp.Items) != 4 {
		t.Fatalf("items = %d, want 4 (whole catalog)", len(resp.Items))
	}
	if resp.Items[0].Title != "The Matrix" || resp.Items[0].Rank != 1 {
		t.Errorf("first item = %+v, want the matched movie at rank 1", resp.Items[0])
	}
	if resp.Items[1].Title != "Matrix Reloaded" {
		t.Errorf("second item = %q, want Matrix Reloaded", resp.Items[1].Title)
	}
	for i := 1; i < len(resp.Items); i++ {
		if resp.Items[i].Score > resp.Items[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}
	if resp.Metadata.RequestID != rec.Header().Get("X-Request-ID") {
		t.Errorf("metadata request id %q does not match header %q",
			resp.Metadata.RequestID, rec.Header().Get("X-Request-ID"))
	}
}

func TestModelResponses_NotCachedByClients(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)

	for _, target := range []string{
		"/api/v1/recommendations?title=Matrx",
		"/api/v1/recommendations/similar/0",
		"/api/v1/titles/suggest?prefix=the",
	} {
		t.Run(target, func(t *testing.T) {
			rec, _ := doRequest(t, router, http.MethodGet, target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
				t.Errorf("Cache-Control = %q, want no-cache", got)
			}
		})
	}
}

func TestRecommendations_K(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)
	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations?title=Avatar&k=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp recommend.Response
	decodeData(t, env, &resp)
	if len(resp.Items) != 2 {
		t.Errorf("items = %d, want 2", len(resp.Items))
	}
	if resp.Metadata.K != 2 {
		t.Errorf("metadata k = %d, want 2", resp.Metadata.K)
	}
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"missing title", "/api/v1/recommendations", http.StatusBadRequest, ErrCodeEmptyQuery},
		{"blank title", "/api/v1/recommendations?title=%20%20", http.StatusBadRequest, ErrCodeEmptyQuery},
		{"no match", "/api/v1/recommendations?title=Xyzzyplugh12345", http.StatusNotFound, ErrCodeNoMatch},
		{"non-integer k", "/api/v1/recommendations?title=Avatar&k=ten", http.StatusBadRequest, ErrCodeValidation},
		{"negative k", "/api/v1/recommendations?title=Avatar&k=-1", http.StatusBadRequest, ErrCodeValidation},
		{"huge k", "/api/v1/recommendations?title=Avatar&k=5000", http.StatusBadRequest, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := doRequest(t, router, http.MethodGet, tt.target)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Fatalf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
			if rec.Header().Get("Cache-Control") != "no-store" {
				t.Errorf("Cache-Control = %q, want no-store", rec.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestRecommendations_Messages(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)

	_, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations?title=")
	if env.Error == nil || env.Error.Message != "Please enter a movie name." {
		t.Errorf("empty query message = %+v", env.Error)
	}

	_, env = doRequest(t, router, http.MethodGet, "/api/v1/recommendations?title=Xyzzyplugh12345")
	if env.Error == nil || env.Error.Message != "No close match found. Please try another movie name." {
		t.Errorf("no match message = %+v", env.Error)
	}
}

func TestRecommendations_NotReady(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, false), nil)
	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations?title=Avatar")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotReady {
		t.Errorf("error = %+v, want NOT_READY", env.Error)
	}
}

func TestRecommendations_CachedFlag(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)
	_, first := doRequest(t, router, http.MethodGet, "/api/v1/recommendations?title=Notebook")
	_, second := doRequest(t, router, http.MethodGet, "/api/v1/recommendations?title=Notebook")

	if first.Metadata.Cached {
		t.Error("first request should not be served from cache")
	}
	if !second.Metadata.Cached {
		t.Error("second identical request should be served from cache")
	}
}

func TestSimilar(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"valid", "/api/v1/recommendations/similar/1?k=2", http.StatusOK, ""},
		{"out of range", "/api/v1/recommendations/similar/99", http.StatusNotFound, ErrCodeNotFound},
		{"negative", "/api/v1/recommendations/similar/-1", http.StatusBadRequest, ErrCodeValidation},
		{"not a number", "/api/v1/recommendations/similar/abc", http.StatusBadRequest, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := doRequest(t, router, http.MethodGet, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode == "" {
				var resp recommend.Response
				decodeData(t, env, &resp)
				if resp.Match.Title != "Matrix Reloaded" || len(resp.Items) != 2 {
					t.Errorf("response = %+v", resp)
				}
				return
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestSuggestTitles(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/titles/suggest?prefix=mat")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []recommend.Suggestion
	decodeData(t, env, &got)
	if len(got) != 1 || got[0].Title != "Matrix Reloaded" {
		t.Errorf("suggestions = %+v, want [Matrix Reloaded]", got)
	}

	_, env = doRequest(t, router, http.MethodGet, "/api/v1/titles/suggest?prefix=zzz")
	got = nil
	decodeData(t, env, &got)
	if got == nil || len(got) != 0 {
		t.Errorf("no hits should be an empty list, got %v", got)
	}

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/titles/suggest?prefix=")
	if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Errorf("blank prefix: status = %d, error = %+v", rec.Code, env.Error)
	}
}
