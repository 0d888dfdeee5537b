// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

// RecommendationsRequest holds the query parameters of /recommendations.
// K of zero means the engine default.
type RecommendationsRequest struct {
	Title string `query:"title" validate:"notblank,max=500"`
	K     int    `query:"k" validate:"gte=0,lte=1000"`
}

// SimilarRequest holds the parameters of /recommendations/similar/{index}.
type SimilarRequest struct {
	Index int `query:"index" validate:"gte=0"`
	K     int `query:"k" validate:"gte=0,lte=1000"`
}

// SuggestRequest holds the query parameters of /titles/suggest.
type SuggestRequest struct {
	Prefix string `query:"prefix" validate:"notblank,max=200"`
	Limit  int    `query:"limit" validate:"gte=0,lte=50"`
}
