// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "empty_query", "no_match", "not_ready", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviematch_recommend_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
	)

	MatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviematch_match_score",
			Help:    "Similarity ratio of the accepted fuzzy title match",
			Buckets: []float64{0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95, 1},
		},
	)

	// Query Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviematch_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviematch_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_cache_entries",
			Help: "Current number of cached recommendation responses",
		},
	)

	// Model Build Metrics
	ModelBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviematch_model_build_duration_seconds",
			Help:    "Time to vectorize the catalog and build the similarity matrix",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	ModelBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_model_builds_total",
			Help: "Total number of model builds by result",
		},
		[]string{"result"}, // "success", "failure"
	)

	ModelMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_model_movies",
			Help: "Number of movies in the active model",
		},
	)

	ModelVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_model_vocabulary_size",
			Help: "Number of distinct terms in the active model",
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_model_version",
			Help: "Version of the active model (increments on every reload)",
		},
	)

	// Catalog Metrics
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"trigger", "result"}, // trigger: Trigger* constants
	)

	CatalogLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_catalog_last_reload_timestamp",
			Help: "Unix timestamp of the last successful catalog reload",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// Trigger labels for CatalogReloads.
const (
	TriggerStartup  = "startup"
	TriggerWatch    = "watch"
	TriggerInterval = "interval"
	TriggerManual   = "manual"
)

// Outcome labels for RecommendRequests.
const (
	OutcomeOK         = "ok"
	OutcomeEmptyQuery = "empty_query"
	OutcomeNoMatch    = "no_match"
	OutcomeNotReady   = "not_ready"
	OutcomeError      = "error"
)

// RecordRecommendation records one recommendation request.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordMatchScore records the ratio of an accepted title match.
func RecordMatchScore(score float64) {
	MatchScore.Observe(score)
}

// RecordCacheLookup records a query cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// UpdateCacheEntries sets the current query cache size.
func UpdateCacheEntries(n int) {
	CacheEntries.Set(float64(n))
}

// RecordModelBuild records a model build. On success the model gauges are
// updated to describe the new active model.
func RecordModelBuild(duration time.Duration, movies, vocabulary int, version int64, err error) {
	ModelBuildDuration.Observe(duration.Seconds())
	if err != nil {
		ModelBuilds.WithLabelValues("failure").Inc()
		return
	}
	ModelBuilds.WithLabelValues("success").Inc()
	ModelMovies.Set(float64(movies))
	ModelVocabularySize.Set(float64(vocabulary))
	ModelVersion.Set(float64(version))
}

// RecordCatalogReload records a catalog reload attempt.
func RecordCatalogReload(trigger string, err error) {
	if err != nil {
		CatalogReloads.WithLabelValues(trigger, "failure").Inc()
		return
	}
	CatalogReloads.WithLabelValues(trigger, "success").Inc()
	CatalogLastReload.Set(float64(time.Now().Unix()))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// StartUptimeTracker returns a function that refreshes the uptime gauge.
func StartUptimeTracker(start time.Time) func() {
	return func() {
		AppUptime.Set(time.Since(start).Seconds())
	}
}
