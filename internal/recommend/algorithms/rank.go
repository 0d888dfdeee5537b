// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"fmt"
	"sort"
)

// Ranked is one entry of a ranked similarity row.
type Ranked struct {
	// Rank starts at 1.
	Rank  int
	Index int
	Score float64
}

// TopK orders row by descending score and returns the first min(k, len(row))
// entries. The sort is stable, so equal scores keep ascending index order.
// The queried row's own entry is not excluded.
func TopK(row []float64, k int) ([]Ranked, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	k = min(k, len(row))
	out := make([]Ranked, k)
	for r := 0; r < k; r++ {
		idx := order[r]
		out[r] = Ranked{Rank: r + 1, Index: idx, Score: row[idx]}
	}
	return out, nil
}
