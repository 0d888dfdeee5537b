// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package config loads and validates MovieMatch configuration.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, ./config.yaml or /etc/moviematch/config.yaml), then
environment variables. Only the variables listed below are read.

Catalog:
  - MOVIES_CSV / CATALOG_PATH: catalog CSV file (default: movies.csv)
  - CATALOG_WATCH: reload when the file changes (default: false)
  - CATALOG_WATCH_DEBOUNCE: quiet period before a reload (default: 2s)
  - CATALOG_RELOAD_INTERVAL: periodic reload, 0 disables (default: 0)

Recommender:
  - RECOMMEND_TOP_K: results per request (default: 20)
  - RECOMMEND_MAX_K: upper bound for k (default: 100)
  - RECOMMEND_CUTOFF: fuzzy match threshold (default: 0.6)
  - RECOMMEND_MAX_CANDIDATES: close matches kept (default: 3)
  - RECOMMEND_BUILD_WORKERS: similarity build parallelism (default: NumCPU)
  - RECOMMEND_CACHE_ENABLED / RECOMMEND_CACHE_TTL / RECOMMEND_CACHE_MAX_ENTRIES

Server and security:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8501), HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Example YAML:

	catalog:
	  path: /data/movies.csv
	  watch: true
	recommend:
	  default_k: 20
	  cutoff: 0.6
*/
package config
