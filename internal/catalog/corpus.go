// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Catalog integrity errors. All of them are fatal at startup.
var (
	ErrMissingColumns = errors.New("catalog is missing required columns")
	ErrEmptyCatalog   = errors.New("catalog has no movies")
	ErrIndexMismatch  = errors.New("catalog index does not match row position")
)

// Corpus is an ordered, immutable list of movies.
type Corpus struct {
	movies      []MovieRecord
	titleIndex  map[string]int
	titles      []string
	fingerprint uint64
}

// NewCorpus validates movies and builds lookup tables. The slice is copied.
func NewCorpus(movies []MovieRecord) (*Corpus, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Corpus{
		movies:     make([]MovieRecord, len(movies)),
		titleIndex: make(map[string]int, len(movies)),
		titles:     make([]string, len(movies)),
	}
	copy(c.movies, movies)

	h := xxhash.New()
	for i := range c.movies {
		m := &c.movies[i]
		if m.Index != i {
			return nil, fmt.Errorf("%w: row %d has index %d", ErrIndexMismatch, i, m.Index)
		}
		c.titles[i] = m.Title
		// Duplicate titles resolve to the first row.
		if _, seen := c.titleIndex[m.Title]; !seen {
			c.titleIndex[m.Title] = i
		}
		writeRecord(h, m)
	}
	c.fingerprint = h.Sum64()

	return c, nil
}

func writeRecord(h *xxhash.Digest, m *MovieRecord) {
	for _, f := range []string{m.Title, m.Genres, m.Keywords, m.Tagline, m.Cast, m.Director, m.Overview} {
		_, _ = h.WriteString(f)
		_, _ = h.Write([]byte{0x1f})
	}
	_, _ = h.Write([]byte{0x1e})
}

// Len returns the number of movies.
func (c *Corpus) Len() int {
	return len(c.movies)
}

// Movie returns the record at row i.
func (c *Corpus) Movie(i int) (MovieRecord, bool) {
	if i < 0 || i >= len(c.movies) {
		return MovieRecord{}, false
	}
	return c.movies[i], true
}

// Titles returns the titles in row order. Callers must not modify the slice.
func (c *Corpus) Titles() []string {
	return c.titles
}

// IndexOfTitle returns the first row whose title equals title exactly.
func (c *Corpus) IndexOfTitle(title string) (int, bool) {
	i, ok := c.titleIndex[title]
	return i, ok
}

// FeatureBlobs returns Compose(m) for every movie, in row order.
func (c *Corpus) FeatureBlobs() []string {
	blobs := make([]string, len(c.movies))
	for i := range c.movies {
		blobs[i] = Compose(c.movies[i])
	}
	return blobs
}

// Fingerprint is an xxhash of every field of every row. Two corpora with the
// same fingerprint produce the same similarity matrix.
func (c *Corpus) Fingerprint() uint64 {
	return c.fingerprint
}

// FingerprintHex formats Fingerprint for logs and API responses.
func (c *Corpus) FingerprintHex() string {
	return fmt.Sprintf("%016x", c.fingerprint)
}
