// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// Matcher defaults.
const (
	DefaultMaxMatches = 3
	DefaultCutoff     = 0.6
)

// ErrInvalidMatchParams is returned for n < 1 or a cutoff outside [0, 1].
var ErrInvalidMatchParams = errors.New("invalid fuzzy match parameters")

// Match is one fuzzy title candidate.
type Match struct {
	// Title is the candidate as it appears in the catalog.
	Title string `json:"title"`

	// Position is the candidate's position in the list that was searched.
	Position int `json:"position"`

	// Score is the Ratcliff/Obershelp similarity ratio in [0, 1].
	Score float64 `json:"score"`
}

// CloseMatches returns up to n titles whose similarity ratio to query is at
// least cutoff, best first.
//
// Scoring uses difflib's SequenceMatcher over Unicode code points with the
// query as the second sequence, so results agree with Python's
// difflib.get_close_matches for the same inputs: the cheap upper bounds
// (real quick ratio, quick ratio) filter candidates before the full ratio is
// computed, and equal scores are ordered by the lexicographically larger
// title first. Matching is case sensitive; duplicate titles may each appear.
func CloseMatches(query string, titles []string, n int, cutoff float64) ([]Match, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be > 0, got %d", ErrInvalidMatchParams, n)
	}
	if cutoff < 0 || cutoff > 1 {
		return nil, fmt.Errorf("%w: cutoff must be in [0, 1], got %g", ErrInvalidMatchParams, cutoff)
	}

	sm := difflib.NewMatcher(nil, splitRunes(query))

	var found []Match
	for pos, title := range titles {
		sm.SetSeq1(splitRunes(title))
		if sm.RealQuickRatio() < cutoff || sm.QuickRatio() < cutoff {
			continue
		}
		if score := sm.Ratio(); score >= cutoff {
			found = append(found, Match{Title: title, Position: pos, Score: score})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Score != found[j].Score {
			return found[i].Score > found[j].Score
		}
		return found[i].Title > found[j].Title
	})
	if len(found) > n {
		found = found[:n]
	}
	return found, nil
}

// BestMatch returns the single closest title, or false when nothing reaches cutoff.
func BestMatch(query string, titles []string, cutoff float64) (string, bool) {
	matches, err := CloseMatches(query, titles, DefaultMaxMatches, cutoff)
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0].Title, true
}

// splitRunes turns s into one element per code point, the unit
// SequenceMatcher compares.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
