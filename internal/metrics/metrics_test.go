// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRecommendation(t *testing.T) {
	outcomes := []string{OutcomeOK, OutcomeEmptyQuery, OutcomeNoMatch, OutcomeNotReady, OutcomeError}

	for _, outcome := range outcomes {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequests.WithLabelValues(outcome))
			RecordRecommendation(outcome, 3*time.Millisecond)
			after := testutil.ToFloat64(RecommendRequests.WithLabelValues(outcome))
			if after != before+1 {
				t.Errorf("counter for %s = %v, want %v", outcome, after, before+1)
			}
		})
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits)
	misses := testutil.ToFloat64(CacheMisses)

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	if got := testutil.ToFloat64(CacheHits); got != hits+1 {
		t.Errorf("CacheHits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses); got != misses+2 {
		t.Errorf("CacheMisses = %v, want %v", got, misses+2)
	}

	UpdateCacheEntries(7)
	if got := testutil.ToFloat64(CacheEntries); got != 7 {
		t.Errorf("CacheEntries = %v, want 7", got)
	}
}

func TestRecordModelBuild(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		result string
	}{
		{"success", nil, "success"},
		{"failure", errors.New("empty corpus"), "failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(ModelBuilds.WithLabelValues(tt.result))
			RecordModelBuild(120*time.Millisecond, 4803, 21000, 3, tt.err)
			if got := testutil.ToFloat64(ModelBuilds.WithLabelValues(tt.result)); got != before+1 {
				t.Errorf("ModelBuilds{%s} = %v, want %v", tt.result, got, before+1)
			}
		})
	}

	RecordModelBuild(time.Millisecond, 10, 50, 9, nil)
	if got := testutil.ToFloat64(ModelMovies); got != 10 {
		t.Errorf("ModelMovies = %v, want 10", got)
	}
	if got := testutil.ToFloat64(ModelVersion); got != 9 {
		t.Errorf("ModelVersion = %v, want 9", got)
	}

	// A failed build leaves the active model gauges alone.
	RecordModelBuild(time.Millisecond, 99, 99, 99, errors.New("boom"))
	if got := testutil.ToFloat64(ModelVocabularySize); got != 50 {
		t.Errorf("ModelVocabularySize = %v, want 50 after failed build", got)
	}
}

func TestRecordCatalogReload(t *testing.T) {
	before := testutil.ToFloat64(CatalogReloads.WithLabelValues("watch", "success"))
	RecordCatalogReload("watch", nil)
	if got := testutil.ToFloat64(CatalogReloads.WithLabelValues("watch", "success")); got != before+1 {
		t.Errorf("reloads{watch,success} = %v, want %v", got, before+1)
	}
	if testutil.ToFloat64(CatalogLastReload) <= 0 {
		t.Error("CatalogLastReload should be set after a successful reload")
	}

	before = testutil.ToFloat64(CatalogReloads.WithLabelValues(TriggerManual, "failure"))
	RecordCatalogReload(TriggerManual, errors.New("missing columns"))
	if got := testutil.ToFloat64(CatalogReloads.WithLabelValues(TriggerManual, "failure")); got != before+1 {
		t.Errorf("reloads{manual,failure} = %v, want %v", got, before+1)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))
	RecordAPIRequest("GET", "/api/v1/recommendations", 200, 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("api_active_requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
}

func TestAppInfoAndUptime(t *testing.T) {
	SetAppInfo("1.0.0", "go1.25")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", "go1.25")); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}

	tick := StartUptimeTracker(time.Now().Add(-time.Minute))
	tick()
	if got := testutil.ToFloat64(AppUptime); got < 60 {
		t.Errorf("app_uptime_seconds = %v, want >= 60", got)
	}
}

func TestMetricsRegistered(t *testing.T) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := make(map[string]bool)
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	// Unlabelled collectors are always exported, even before first use.
	for _, name := range []string{
		"moviematch_recommend_duration_seconds",
		"moviematch_cache_hits_total",
		"moviematch_model_movies",
		"moviematch_catalog_last_reload_timestamp",
		"api_active_requests",
	} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	m := &dto.Metric{}
	if err := h.Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordMatchScore(t *testing.T) {
	before := histogramCount(t, MatchScore)
	RecordMatchScore(0.91)
	RecordMatchScore(1)
	if got := histogramCount(t, MatchScore); got != before+2 {
		t.Errorf("match score samples = %d, want %d", got, before+2)
	}

	m := &dto.Metric{}
	if err := MatchScore.Write(m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleSum() < 1.91 {
		t.Errorf("sample sum = %v, want >= 1.91", m.GetHistogram().GetSampleSum())
	}
}
