// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// envelope mirrors models.APIResponse with Data left raw for typed decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testCorpus(t *testing.T) *catalog.Corpus {
	t.Helper()
	c, err := catalog.NewCorpus([]catalog.MovieRecord{
		{Index: 0, Title: "The Matrix", Genres: "Action Sci-Fi", Director: "Lana Wachowski"},
		{Index: 1, Title: "Matrix Reloaded", Genres: "Action Sci-Fi", Director: "Lana Wachowski"},
		{Index: 2, Title: "Notebook", Genres: "Romance", Director: "Nick Cassavetes"},
		{Index: 3, Title: "Avatar", Genres: "Action Adventure Fantasy", Director: "James Cameron"},
	})
	if err != nil {
		t.Fatalf("NewCorpus() error = %v", err)
	}
	return c
}

func newTestEngine(t *testing.T, loaded bool) *recommend.Engine {
	t.Helper()
	e, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if loaded {
		if _, err := e.Load(context.Background(), testCorpus(t)); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}
	return e
}

// fakeReloader reloads the in-memory test corpus into an engine.
type fakeReloader struct {
	engine *recommend.Engine
	corpus *catalog.Corpus
	fail   bool
	calls  atomic.Int32

	mu       sync.Mutex
	triggers []string
}

func (f *fakeReloader) Reload(ctx context.Context, trigger string) (*models.ReloadResult, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.triggers = append(f.triggers, trigger)
	f.mu.Unlock()
	if f.fail {
		return nil, errors.New("open movies.csv: no such file or directory")
	}
	m, err := f.engine.Load(ctx, f.corpus)
	if err != nil {
		return nil, err
	}
	return &models.ReloadResult{
		Path:         f.Path(),
		Movies:       f.corpus.Len(),
		ModelVersion: m.Version(),
		Fingerprint:  m.Fingerprint(),
	}, nil
}

func (f *fakeReloader) Path() string { return "testdata/movies.csv" }

func newTestRouter(t *testing.T, engine *recommend.Engine, reloader CatalogReloader) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(engine, reloader, "test"), NewChiMiddleware(cfg)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON body %q: %v", method, target, rec.Body.String(), err)
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
