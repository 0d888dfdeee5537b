// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"time"
)

// Request is a recommendation request for a free-text movie title.
type Request struct {
	// Query is the title as typed by the user. It is matched fuzzily and
	// case sensitively against the catalog titles.
	Query string `json:"query"`

	// K is the number of results. Zero uses Config.DefaultK; values above
	// Config.MaxK are capped.
	K int `json:"k,omitempty"`

	// RequestID is echoed in the response metadata. Generated if empty.
	RequestID string `json:"request_id,omitempty"`
}

// MatchedTitle is a catalog title the query resolved to.
type MatchedTitle struct {
	Title string  `json:"title"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// Recommendation is one ranked result.
type Recommendation struct {
	// Rank starts at 1.
	Rank     int     `json:"rank"`
	Index    int     `json:"index"`
	Title    string  `json:"title"`
	Genres   string  `json:"genres"`
	Director string  `json:"director,omitempty"`
	Score    float64 `json:"score"`
}

// Response is the result of a recommendation request.
type Response struct {
	// Query is the request query. Empty for Similar.
	Query string `json:"query,omitempty"`

	// Match is the title the recommendations are based on.
	Match MatchedTitle `json:"match"`

	// Alternatives are the other close matches, best first.
	Alternatives []MatchedTitle `json:"alternatives,omitempty"`

	// Items are the ranked recommendations. The matched movie itself is
	// included and normally ranks first.
	Items []Recommendation `json:"items"`

	Metadata ResponseMetadata `json:"metadata"`
}

// clone returns a copy that shares no slices with r.
func (r *Response) clone() *Response {
	c := *r
	c.Items = make([]Recommendation, len(r.Items))
	copy(c.Items, r.Items)
	if r.Alternatives != nil {
		c.Alternatives = append([]MatchedTitle(nil), r.Alternatives...)
	}
	return &c
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID    string    `json:"request_id"`
	K            int       `json:"k"`
	ModelVersion int64     `json:"model_version"`
	Fingerprint  string    `json:"fingerprint"`
	LatencyMS    int64     `json:"latency_ms"`
	CacheHit     bool      `json:"cache_hit"`
	Timestamp    time.Time `json:"timestamp"`
}

// Suggestion is an autocomplete hit.
type Suggestion struct {
	Title string `json:"title"`
	Index int    `json:"index"`
}

// Status describes the active model and engine counters.
type Status struct {
	Ready           bool      `json:"ready"`
	Movies          int       `json:"movies"`
	VocabularySize  int       `json:"vocabulary_size"`
	ModelVersion    int64     `json:"model_version"`
	Fingerprint     string    `json:"fingerprint,omitempty"`
	BuiltAt         time.Time `json:"built_at,omitempty"`
	BuildDurationMS int64     `json:"build_duration_ms"`

	Requests       int64 `json:"requests"`
	Errors         int64 `json:"errors"`
	CacheHits      int64 `json:"cache_hits"`
	CacheMisses    int64 `json:"cache_misses"`
	CacheEvictions int64 `json:"cache_evictions"`
	CacheSize      int   `json:"cache_size"`
}
