// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

var movieBlobs = []string{
	"Action Science Fiction hacker simulation Welcome to the Real World Keanu Reeves Lana Wachowski",
	"Action Science Fiction hacker sequel Free your mind Keanu Reeves Lana Wachowski",
	"Romance Drama love letters Ryan Gosling Nick Cassavetes",
	"     ",
	"Adventure Fantasy space war James Cameron",
}

func buildMatrix(t *testing.T, docs []string, workers int) *SimilarityMatrix {
	t.Helper()
	_, vectors, err := FitTransform(docs)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	m, err := NewSimilarityMatrix(context.Background(), vectors, workers)
	if err != nil {
		t.Fatalf("NewSimilarityMatrix() error = %v", err)
	}
	return m
}

func TestSimilarityMatrix_Properties(t *testing.T) {
	t.Parallel()

	m := buildMatrix(t, movieBlobs, 2)
	if m.Size() != len(movieBlobs) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(movieBlobs))
	}

	for i := 0; i < m.Size(); i++ {
		wantDiag := 1.0
		if i == 3 {
			wantDiag = 0 // zero vector
		}
		if !almostEqual(m.At(i, i), wantDiag) {
			t.Errorf("At(%d,%d) = %v, want %v", i, i, m.At(i, i), wantDiag)
		}
		for j := 0; j < m.Size(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("asymmetric at (%d,%d): %v vs %v", i, j, m.At(i, j), m.At(j, i))
			}
			if v := m.At(i, j); v < 0 || v > 1 {
				t.Errorf("At(%d,%d) = %v outside [0,1]", i, j, v)
			}
		}
	}

	for j := 0; j < m.Size(); j++ {
		if m.At(3, j) != 0 {
			t.Errorf("zero-norm row 3 has At(3,%d) = %v", j, m.At(3, j))
		}
	}

	if m.At(0, 1) <= m.At(0, 2) {
		t.Errorf("sequel similarity %v should exceed unrelated %v", m.At(0, 1), m.At(0, 2))
	}
}

func TestSimilarityMatrix_MatchesPairwiseCosine(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	words := []string{"action", "drama", "romance", "space", "war", "love", "hacker", "alien", "detective", "comedy"}
	docs := make([]string, 150)
	for i := range docs {
		n := 1 + rng.Intn(8)
		parts := make([]string, n)
		for k := range parts {
			parts[k] = words[rng.Intn(len(words))]
		}
		docs[i] = strings.Join(parts, " ")
	}

	_, vectors, err := FitTransform(docs)
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{1, 3, 0} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()
			m, err := NewSimilarityMatrix(context.Background(), vectors, workers)
			if err != nil {
				t.Fatal(err)
			}
			for i := range vectors {
				for j := range vectors {
					want := vectors[i].Dot(vectors[j]) / (vectors[i].Norm() * vectors[j].Norm())
					if i == j {
						want = 1
					}
					if want > 1 {
						want = 1
					}
					if !almostEqual(m.At(i, j), want) {
						t.Fatalf("At(%d,%d) = %v, want %v", i, j, m.At(i, j), want)
					}
				}
			}
		})
	}
}

func TestSimilarityMatrix_Empty(t *testing.T) {
	t.Parallel()

	m, err := NewSimilarityMatrix(context.Background(), nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m.Size() != 0 {
		t.Errorf("Size() = %d, want 0", m.Size())
	}
}

func TestSimilarityMatrix_Row(t *testing.T) {
	t.Parallel()

	m := buildMatrix(t, movieBlobs, 1)
	row, err := m.Row(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(row) != m.Size() || row[2] != m.At(2, 2) {
		t.Errorf("Row(2) = %v", row)
	}

	for _, i := range []int{-1, m.Size()} {
		if _, err := m.Row(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Row(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestSimilarityMatrix_MalformedVector(t *testing.T) {
	t.Parallel()

	bad := []SparseVector{{Indices: []int{0, 1}, Values: []float64{1}}}
	if _, err := NewSimilarityMatrix(context.Background(), bad, 1); err == nil {
		t.Error("expected error for mismatched indices and values")
	}
}

func TestSimilarityMatrix_Cancelled(t *testing.T) {
	t.Parallel()

	_, vectors, err := FitTransform(movieBlobs)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSimilarityMatrix(ctx, vectors, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
