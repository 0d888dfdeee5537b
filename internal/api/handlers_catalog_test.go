// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/models"
)

func TestCatalog_Status(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, true)
	router := newTestRouter(t, engine, &fakeReloader{engine: engine, corpus: testCorpus(t)})

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/catalog")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Cache-Control") != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", rec.Header().Get("Cache-Control"))
	}

	var status CatalogStatus
	decodeData(t, env, &status)
	if !status.Ready || status.Movies != 4 || status.ModelVersion != 1 {
		t.Errorf("status = %+v", status)
	}
	if status.Path != "testdata/movies.csv" {
		t.Errorf("path = %q", status.Path)
	}
	if status.Fingerprint == "" {
		t.Error("expected fingerprint")
	}
}

func TestReloadCatalog(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, true)
	reloader := &fakeReloader{engine: engine, corpus: testCorpus(t)}
	router := newTestRouter(t, engine, reloader)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/catalog/reload")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result models.ReloadResult
	decodeData(t, env, &result)
	if result.ModelVersion != 2 || result.Movies != 4 {
		t.Errorf("result = %+v, want version 2 with 4 movies", result)
	}
	if reloader.calls.Load() != 1 {
		t.Errorf("reload calls = %d, want 1", reloader.calls.Load())
	}
	if len(reloader.triggers) != 1 || reloader.triggers[0] != metrics.TriggerManual {
		t.Errorf("triggers = %v, want [%s]", reloader.triggers, metrics.TriggerManual)
	}
}

func TestReloadCatalog_Failure(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, true)
	router := newTestRouter(t, engine, &fakeReloader{engine: engine, fail: true})

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/catalog/reload")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeReloadFailed {
		t.Errorf("error = %+v, want RELOAD_FAILED", env.Error)
	}
	if !engine.Ready() || engine.Status().ModelVersion != 1 {
		t.Error("previous model should stay active after a failed reload")
	}
}

func TestReloadCatalog_NoReloader(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/catalog/reload")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeNotReady {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestReloadCatalog_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestEngine(t, true), nil)
	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/catalog/reload")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
