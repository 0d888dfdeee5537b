// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"context"
	"errors"
)

// Errors returned by the algorithms in this package.
var (
	// ErrEmptyCorpus is returned when vectorizing zero documents.
	ErrEmptyCorpus = errors.New("cannot vectorize an empty corpus")

	// ErrIndexOutOfRange is returned when a row index is outside the matrix.
	ErrIndexOutOfRange = errors.New("row index out of range")
)

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
