// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package algorithms implements the numeric core of the recommender.
//
// The pipeline has four stages, each usable on its own:
//
//   - Tokenize / FitTransform: TF-IDF vectorization with smoothed idf and
//     L2-normalized rows
//   - NewSimilarityMatrix: dense pairwise cosine similarity built from a
//     sparse inverted index by a bounded worker pool
//   - CloseMatches / BestMatch: difflib-compatible fuzzy title matching
//   - TopK: stable descending ranking of one similarity row
//
// # Usage Example
//
//	vocab, vectors, err := algorithms.FitTransform(corpus.FeatureBlobs())
//	if err != nil {
//	    return err
//	}
//	matrix, err := algorithms.NewSimilarityMatrix(ctx, vectors, 0)
//	if err != nil {
//	    return err
//	}
//	title, ok := algorithms.BestMatch("the matrx", corpus.Titles(), 0.6)
//	if !ok {
//	    return errNoMatch
//	}
//	i, _ := corpus.IndexOfTitle(title)
//	row, err := matrix.Row(i)
//	if err != nil {
//	    return err
//	}
//	top, err := algorithms.TopK(row, 20)
//
// # Thread Safety
//
// Vocabulary, SparseVector and SimilarityMatrix are immutable after
// construction and safe for concurrent reads. All functions are pure.
package algorithms
