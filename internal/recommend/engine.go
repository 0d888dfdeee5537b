// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomtom215/moviematch/internal/cache"
	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/recommend/algorithms"
)

// Engine serves recommendations from the active Model.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// Active snapshot; nil until the first successful Load.
	model   atomic.Pointer[Model]
	version atomic.Int64
	loadMu  sync.Mutex

	// nil when caching is disabled
	cache *cache.LRU[cacheKey, *Response]

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// cacheKey scopes a cached response to one model.
type cacheKey struct {
	fingerprint string
	version     int64
	query       string
	k           int
}

// NewEngine creates an engine with no model loaded.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[cacheKey, *Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Load builds a model from corpus and makes it active. Builds are
// serialized. On failure the previously active model keeps serving.
func (e *Engine) Load(ctx context.Context, corpus *catalog.Corpus) (*Model, error) {
	if corpus == nil {
		return nil, catalog.ErrEmptyCatalog
	}

	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	start := time.Now()
	version := e.version.Load() + 1

	e.logger.Info().
		Int("movies", corpus.Len()).
		Str("fingerprint", corpus.FingerprintHex()).
		Int64("version", version).
		Msg("building recommendation model")

	m, err := BuildModel(ctx, corpus, e.config.BuildWorkers, version)
	if err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, 0, err)
		e.logger.Error().Err(err).Int64("version", version).Msg("model build failed")
		return nil, err
	}

	e.version.Store(version)
	e.model.Store(m)
	e.clearCache()

	metrics.RecordModelBuild(m.BuildDuration(), corpus.Len(), m.VocabularySize(), version, nil)
	e.logger.Info().
		Int64("version", version).
		Int("movies", corpus.Len()).
		Int("vocabulary", m.VocabularySize()).
		Dur("duration", m.BuildDuration()).
		Msg("recommendation model ready")

	return m, nil
}

// Model returns the active model, or nil before the first Load.
func (e *Engine) Model() *Model {
	return e.model.Load()
}

// Ready reports whether a model is loaded.
func (e *Engine) Ready() bool {
	return e.model.Load() != nil
}

// Recommend resolves req.Query to the closest catalog title and returns the
// movies most similar to it.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "recommend.Recommend")
	defer span.End()

	req = e.prepareRequest(ctx, req)
	logger := e.requestLogger(req)
	span.SetAttributes(attribute.Int("recommend.k", req.K))

	resp, err := e.recommend(ctx, req, start, logger)
	e.finish(span, start, err)
	if err != nil {
		logger.Debug().Err(err).Msg("recommendation failed")
		return nil, err
	}

	logger.Debug().
		Str("match", resp.Match.Title).
		Int("returned", len(resp.Items)).
		Bool("cache_hit", resp.Metadata.CacheHit).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")
	return resp, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommend(ctx context.Context, req Request, start time.Time, logger zerolog.Logger) (*Response, error) {
	// Only a blank query is rejected before matching.
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	m := e.model.Load()
	if m == nil {
		return nil, ErrNotReady
	}

	key := cacheKey{fingerprint: m.Fingerprint(), version: m.Version(), query: req.Query, k: req.K}
	if resp := e.cachedResponse(key, req, start); resp != nil {
		logger.Debug().Msg("cache hit")
		return resp, nil
	}

	_, matchSpan := otel.Tracer(tracerName).Start(ctx, "recommend.Match")
	matches, err := algorithms.CloseMatches(req.Query, m.Corpus().Titles(), e.config.MaxCandidates, e.config.Cutoff)
	matchSpan.SetAttributes(attribute.Int("recommend.matches", len(matches)))
	matchSpan.End()
	if err != nil {
		return nil, fmt.Errorf("match title: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoMatch, req.Query)
	}

	best := e.resolveMatch(m, matches[0])
	metrics.RecordMatchScore(best.Score)

	items, err := m.rank(best.Index, req.K)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Query:        req.Query,
		Match:        best,
		Alternatives: e.alternatives(m, best, matches[1:]),
		Items:        items,
		Metadata:     e.metadata(m, req, start, false),
	}
	e.storeCache(key, resp)
	return resp, nil
}

// Similar returns the movies most similar to the catalog row index.
func (e *Engine) Similar(ctx context.Context, index, k int) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	_, span := otel.Tracer(tracerName).Start(ctx, "recommend.Similar")
	defer span.End()

	req := e.prepareRequest(ctx, Request{K: k})
	span.SetAttributes(attribute.Int("recommend.index", index), attribute.Int("recommend.k", req.K))

	resp, err := e.similar(index, req, start)
	e.finish(span, start, err)
	return resp, err
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) similar(index int, req Request, start time.Time) (*Response, error) {
	m := e.model.Load()
	if m == nil {
		return nil, ErrNotReady
	}

	movie, ok := m.Corpus().Movie(index)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	items, err := m.rank(index, req.K)
	if err != nil {
		return nil, err
	}

	return &Response{
		Match:    MatchedTitle{Title: movie.Title, Index: index, Score: 1},
		Items:    items,
		Metadata: e.metadata(m, req, start, false),
	}, nil
}

// Suggest returns up to limit catalog titles beginning with prefix,
// ignoring case. A non-positive limit uses the trie default.
func (e *Engine) Suggest(prefix string, limit int) ([]Suggestion, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyQuery
	}
	m := e.model.Load()
	if m == nil {
		return nil, ErrNotReady
	}
	return m.suggest(prefix, limit), nil
}

// Status returns information about the active model and engine counters.
// Expired cache entries are pruned first so CacheSize counts live entries.
func (e *Engine) Status() Status {
	s := Status{
		Requests: e.requestCount.Load(),
		Errors:   e.errorCount.Load(),
	}
	if e.cache != nil {
		if n := e.cache.CleanupExpired(); n > 0 {
			e.logger.Debug().Int("expired", n).Msg("pruned expired cache entries")
		}
		stats := e.cache.Stats()
		s.CacheHits = stats.Hits
		s.CacheMisses = stats.Misses
		s.CacheEvictions = stats.Evictions
		s.CacheSize = stats.Size
		metrics.UpdateCacheEntries(stats.Size)
	}

	m := e.model.Load()
	if m == nil {
		return s
	}
	s.Ready = true
	s.Movies = m.Corpus().Len()
	s.VocabularySize = m.VocabularySize()
	s.ModelVersion = m.Version()
	s.Fingerprint = m.Fingerprint()
	s.BuiltAt = m.BuiltAt()
	s.BuildDurationMS = m.BuildDuration().Milliseconds()
	return s
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// clearCache drops all cached responses.
func (e *Engine) clearCache() {
	if e.cache != nil {
		e.cache.Clear()
		metrics.UpdateCacheEntries(0)
	}
}

// prepareRequest applies defaults and fills in the request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	if req.K <= 0 {
		req.K = e.config.DefaultK
	}
	if req.K > e.config.MaxK {
		req.K = e.config.MaxK
	}
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) requestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("k", req.K).
		Logger()
}

// resolveMatch maps a fuzzy hit to the first catalog row carrying that title.
func (e *Engine) resolveMatch(m *Model, hit algorithms.Match) MatchedTitle {
	idx, ok := m.Corpus().IndexOfTitle(hit.Title)
	if !ok {
		idx = hit.Position
	}
	return MatchedTitle{Title: hit.Title, Index: idx, Score: hit.Score}
}

func (e *Engine) alternatives(m *Model, best MatchedTitle, rest []algorithms.Match) []MatchedTitle {
	if len(rest) == 0 {
		return nil
	}
	seen := map[string]bool{best.Title: true}
	out := make([]MatchedTitle, 0, len(rest))
	for _, hit := range rest {
		if seen[hit.Title] {
			continue
		}
		seen[hit.Title] = true
		out = append(out, e.resolveMatch(m, hit))
	}
	return out
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) metadata(m *Model, req Request, start time.Time, cacheHit bool) ResponseMetadata {
	return ResponseMetadata{
		RequestID:    req.RequestID,
		K:            req.K,
		ModelVersion: m.Version(),
		Fingerprint:  m.Fingerprint(),
		LatencyMS:    time.Since(start).Milliseconds(),
		CacheHit:     cacheHit,
		Timestamp:    time.Now(),
	}
}

// cachedResponse returns a copy of a cached response with fresh metadata.
// Callers own the copy; the stored entry is never handed out.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cachedResponse(key cacheKey, req Request, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		return nil
	}

	resp := cached.clone()
	resp.Metadata.RequestID = req.RequestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	return resp
}

func (e *Engine) storeCache(key cacheKey, resp *Response) {
	if e.cache == nil {
		return
	}
	e.cache.Add(key, resp.clone())
	metrics.UpdateCacheEntries(e.cache.Len())
}

// finish records the outcome of a request on its span and in metrics.
func (e *Engine) finish(span trace.Span, start time.Time, err error) {
	outcome := outcomeOf(err)
	if outcome == metrics.OutcomeError {
		e.errorCount.Add(1)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("recommend.outcome", outcome))
	metrics.RecordRecommendation(outcome, time.Since(start))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrEmptyQuery):
		return metrics.OutcomeEmptyQuery
	case errors.Is(err, ErrNoMatch):
		return metrics.OutcomeNoMatch
	case errors.Is(err, ErrNotReady):
		return metrics.OutcomeNotReady
	default:
		return metrics.OutcomeError
	}
}
