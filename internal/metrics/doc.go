// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package metrics provides Prometheus metrics for MovieMatch.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the HTTP server:

	curl http://localhost:8501/metrics

# Available Metrics

Recommendations:
  - moviematch_recommend_requests_total{outcome}: requests by outcome
    (ok, empty_query, no_match, not_ready, error)
  - moviematch_recommend_duration_seconds: end-to-end engine latency
  - moviematch_match_score: ratio of the accepted fuzzy title match

Query cache:
  - moviematch_cache_hits_total, moviematch_cache_misses_total
  - moviematch_cache_entries

Model:
  - moviematch_model_build_duration_seconds
  - moviematch_model_builds_total{result}
  - moviematch_model_movies, moviematch_model_vocabulary_size
  - moviematch_model_version

Catalog:
  - moviematch_catalog_reloads_total{trigger,result}
  - moviematch_catalog_last_reload_timestamp

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Application:
  - app_info{version,go_version}
  - app_uptime_seconds

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start))

Label values are drawn from small fixed sets. Never use titles or queries as
label values.
*/
package metrics
