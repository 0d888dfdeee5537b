// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package main is the MovieMatch HTTP server.
//
// Startup order:
//
//  1. Configuration (Koanf v2: defaults, config.yaml, environment)
//  2. Logging (zerolog)
//  3. Recommendation engine
//  4. Catalog load and first model build; the process exits if this fails
//  5. Supervisor tree: catalog watcher (optional) and HTTP server
//
// SIGINT and SIGTERM cancel the tree; the HTTP server drains in-flight
// requests for up to HTTP_SHUTDOWN_TIMEOUT.
//
// Example:
//
//	export MOVIES_CSV=/data/movies.csv
//	export CATALOG_WATCH=true
//	./moviematch-server
//	curl 'http://localhost:8501/api/v1/recommendations?title=avatar'
package main
