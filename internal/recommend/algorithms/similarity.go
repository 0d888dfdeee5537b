// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// rowBand is the number of consecutive rows one worker task computes.
const rowBand = 32

// SimilarityMatrix is a dense, symmetric N x N matrix of cosine similarities.
type SimilarityMatrix struct {
	n    int
	data []float64
}

// posting is one non-zero entry of a term column.
type posting struct {
	doc    int
	weight float64
}

// NewSimilarityMatrix computes pairwise cosine similarity for vectors.
//
// Only the upper triangle is computed, by walking an inverted index
// (term -> postings) so each row costs time proportional to the documents it
// shares terms with. The lower triangle is mirrored from it, which makes the
// result exactly symmetric. Rows of zero-norm vectors are all zero; every
// other diagonal entry is 1. Values are clamped to [0, 1].
//
// workers bounds parallelism; 0 or less means runtime.NumCPU().
func NewSimilarityMatrix(ctx context.Context, vectors []SparseVector, workers int) (*SimilarityMatrix, error) {
	n := len(vectors)
	m := &SimilarityMatrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m, nil
	}

	norms := make([]float64, n)
	postings := make(map[int][]posting)
	for d, v := range vectors {
		if len(v.Indices) != len(v.Values) {
			return nil, fmt.Errorf("vector %d has %d indices but %d values", d, len(v.Indices), len(v.Values))
		}
		norms[d] = v.Norm()
		if norms[d] == 0 {
			continue
		}
		for k, c := range v.Indices {
			postings[c] = append(postings[c], posting{doc: d, weight: v.Values[k]})
		}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < n; start += rowBand {
		if err := gctx.Err(); err != nil {
			break
		}
		lo, hi := start, min(start+rowBand, n)
		g.Go(func() error {
			acc := make([]float64, n)
			for i := lo; i < hi; i++ {
				if ContextCancelled(gctx) {
					return gctx.Err()
				}
				m.fillRow(i, vectors[i], norms, postings, acc)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building similarity matrix: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("building similarity matrix: %w", err)
	}
	return m, nil
}

// fillRow writes row i for columns j >= i and mirrors each value to (j, i).
// Cells written here are never written by another row, so workers do not overlap.
func (m *SimilarityMatrix) fillRow(i int, v SparseVector, norms []float64, postings map[int][]posting, acc []float64) {
	if norms[i] == 0 {
		return
	}

	for k, c := range v.Indices {
		wi := v.Values[k]
		for _, p := range postings[c] {
			if p.doc >= i {
				acc[p.doc] += wi * p.weight
			}
		}
	}

	n := m.n
	m.data[i*n+i] = 1
	acc[i] = 0
	for j := i + 1; j < n; j++ {
		dot := acc[j]
		if dot == 0 {
			continue
		}
		acc[j] = 0
		sim := clamp01(dot / (norms[i] * norms[j]))
		m.data[i*n+j] = sim
		m.data[j*n+i] = sim
	}
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Size returns N.
func (m *SimilarityMatrix) Size() int {
	return m.n
}

// At returns the similarity between rows i and j.
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns a read-only view of row i. Callers must not modify it.
func (m *SimilarityMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, m.n)
	}
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n], nil
}
