// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import "errors"

// Errors returned by the engine. Callers test them with errors.Is.
var (
	// ErrEmptyQuery is returned for a blank query. The matcher is not run.
	ErrEmptyQuery = errors.New("please enter a movie name")

	// ErrNoMatch is returned when no title reaches the match cutoff.
	ErrNoMatch = errors.New("no close match found")

	// ErrNotReady is returned before the first model has been loaded.
	ErrNotReady = errors.New("recommendation model not loaded")

	// ErrIndexOutOfRange is returned for a row index outside the catalog.
	ErrIndexOutOfRange = errors.New("movie index out of range")
)
