// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package api serves the MovieMatch HTTP API using the Chi router.

# Endpoints

	GET  /api/v1/recommendations?title=<title>&k=<k>
	GET  /api/v1/recommendations/similar/{index}?k=<k>
	GET  /api/v1/titles/suggest?prefix=<prefix>&limit=<n>
	GET  /api/v1/catalog
	POST /api/v1/catalog/reload
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

Every JSON response uses the models.APIResponse envelope. Engine errors map
to status codes as follows:

	recommend.ErrEmptyQuery       400 EMPTY_QUERY
	recommend.ErrNoMatch          404 NO_MATCH
	recommend.ErrIndexOutOfRange  404 NOT_FOUND (similar), 500 otherwise
	recommend.ErrNotReady         503 NOT_READY

# Middleware

Global: request ID with logging context, RealIP, Recoverer, CORS.
API routes: per-IP rate limiting (go-chi/httprate), Prometheus metrics and
gzip compression. The whole router is wrapped in otelhttp so each request
gets a server span that engine spans attach to.
*/
package api
