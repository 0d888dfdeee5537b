// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package models defines the JSON shapes shared by the HTTP API: the
// response envelope, error details and the health and reload payloads.
// Recommendation payloads are defined by package recommend.
package models
