// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package recommend implements the content-based movie recommendation engine.
//
// # Architecture
//
// A catalog is turned into an immutable Model in one pass:
//
//   - Feature composition: six descriptive fields joined per movie
//   - Vectorization: TF-IDF with smoothed IDF and L2-normalized rows
//   - Similarity: the full pairwise cosine matrix, built in parallel
//   - Title index: a prefix trie for autocomplete
//
// A request then resolves the free-text query to the closest catalog title
// with a Ratcliff/Obershelp fuzzy match and returns the top-K rows of that
// movie's similarity row. The queried movie is part of its own results and
// normally ranks first.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	if _, err := engine.Load(ctx, corpus); err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{Query: "Avatr"})
//	switch {
//	case errors.Is(err, recommend.ErrEmptyQuery):
//	    // ask for a title
//	case errors.Is(err, recommend.ErrNoMatch):
//	    // nothing close enough
//	}
//
// # Thread Safety
//
// The engine is safe for concurrent use. Requests read the active Model
// through an atomic pointer; Load builds a replacement off to the side and
// swaps it in, so readers never block on a rebuild and never observe a
// partially built model.
package recommend
