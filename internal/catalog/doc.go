// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package catalog holds the movie catalog: the loaded records, the text blob
each record contributes to the vectorizer, and the CSV loader.

A Corpus is immutable once built. Row i always carries Index == i; the loader
rejects files whose index column disagrees with row position rather than
silently remapping, because similarity matrix rows are addressed by position.

# CSV Format

The file must have a header row containing at least:

	index,title,genres,keywords,tagline,cast,director,overview

Column order is free and extra columns are ignored. Empty cells and short
rows are read as empty strings.

# Usage

	corpus, err := catalog.Load(ctx, "movies.csv")
	if err != nil {
	    return err // ErrMissingColumns, ErrEmptyCatalog, ErrIndexMismatch, or I/O
	}
	blobs := corpus.FeatureBlobs()
*/
package catalog
