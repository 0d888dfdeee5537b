// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tomtom215/moviematch/internal/cache"
	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/recommend/algorithms"
)

const tracerName = "internal/recommend"

// Model is an immutable snapshot built from one catalog. Every index used by
// the model refers to a row of that catalog.
type Model struct {
	corpus  *catalog.Corpus
	vocab   *algorithms.Vocabulary
	matrix  *algorithms.SimilarityMatrix
	titles  *cache.Trie
	version int64

	builtAt       time.Time
	buildDuration time.Duration
}

// BuildModel vectorizes corpus and computes its similarity matrix.
func BuildModel(ctx context.Context, corpus *catalog.Corpus, workers int, version int64) (*Model, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "recommend.BuildModel")
	defer span.End()
	span.SetAttributes(attribute.Int("catalog.movies", corpus.Len()))

	start := time.Now()

	vocab, vectors, err := algorithms.FitTransform(corpus.FeatureBlobs())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("vectorize catalog: %w", err)
	}

	matrix, err := algorithms.NewSimilarityMatrix(ctx, vectors, workers)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}

	titles := cache.NewTrie()
	for i, title := range corpus.Titles() {
		titles.InsertWithData(title, i)
	}

	span.SetAttributes(attribute.Int("model.vocabulary", vocab.Size()))

	return &Model{
		corpus:        corpus,
		vocab:         vocab,
		matrix:        matrix,
		titles:        titles,
		version:       version,
		builtAt:       time.Now(),
		buildDuration: time.Since(start),
	}, nil
}

// Corpus returns the catalog the model was built from.
func (m *Model) Corpus() *catalog.Corpus { return m.corpus }

// VocabularySize returns the number of TF-IDF columns.
func (m *Model) VocabularySize() int { return m.vocab.Size() }

// Version returns the model version assigned by the engine.
func (m *Model) Version() int64 { return m.version }

// Fingerprint returns the catalog fingerprint as hex.
func (m *Model) Fingerprint() string { return m.corpus.FingerprintHex() }

// BuiltAt returns when the build finished.
func (m *Model) BuiltAt() time.Time { return m.builtAt }

// BuildDuration returns how long the build took.
func (m *Model) BuildDuration() time.Duration { return m.buildDuration }

// Similarity returns the cosine similarity of rows i and j.
func (m *Model) Similarity(i, j int) float64 { return m.matrix.At(i, j) }

// rank returns the top k rows most similar to index, joined with their
// catalog records.
func (m *Model) rank(index, k int) ([]Recommendation, error) {
	row, err := m.matrix.Row(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	ranked, err := algorithms.TopK(row, k)
	if err != nil {
		return nil, err
	}

	items := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		movie, ok := m.corpus.Movie(r.Index)
		if !ok {
			return nil, fmt.Errorf("%w: ranked row %d", ErrIndexOutOfRange, r.Index)
		}
		items = append(items, Recommendation{
			Rank:     r.Rank,
			Index:    r.Index,
			Title:    movie.Title,
			Genres:   movie.Genres,
			Director: movie.Director,
			Score:    r.Score,
		})
	}
	return items, nil
}

// suggest returns up to limit titles starting with prefix, case-insensitively.
func (m *Model) suggest(prefix string, limit int) []Suggestion {
	hits := m.titles.AutocompleteWithLimit(prefix, limit)
	out := make([]Suggestion, 0, len(hits))
	for _, h := range hits {
		idx, _ := h.Data.(int)
		out = append(out, Suggestion{Title: h.Value, Index: idx})
	}
	return out
}
