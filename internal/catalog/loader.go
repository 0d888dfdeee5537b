// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// RequiredColumns must all appear in the CSV header.
var RequiredColumns = []string{"index", "title", "genres", "keywords", "tagline", "cast", "director", "overview"}

// Load opens path and reads a catalog from it.
func Load(ctx context.Context, path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	corpus, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return corpus, nil
}

// Read parses a catalog CSV from r. Cancellation is checked between rows.
func Read(ctx context.Context, r io.Reader) (*Corpus, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	movies := make([]MovieRecord, 0, 1024)
	for row := 0; ; row++ {
		if row%512 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}

		rawIndex := strings.TrimSpace(cols.get(rec, "index"))
		idx, err := strconv.Atoi(rawIndex)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d has non-integer index %q", ErrIndexMismatch, row, rawIndex)
		}
		if idx != row {
			return nil, fmt.Errorf("%w: row %d has index %d", ErrIndexMismatch, row, idx)
		}

		movies = append(movies, MovieRecord{
			Index:    idx,
			Title:    cols.get(rec, "title"),
			Genres:   cols.feature(rec, "genres"),
			Keywords: cols.feature(rec, "keywords"),
			Tagline:  cols.feature(rec, "tagline"),
			Cast:     cols.feature(rec, "cast"),
			Director: cols.feature(rec, "director"),
			Overview: cols.feature(rec, "overview"),
		})
	}

	return NewCorpus(movies)
}

// columnMap maps a required column name to its position in the header.
type columnMap map[string]int

func mapColumns(header []string) (columnMap, error) {
	cols := make(columnMap, len(RequiredColumns))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return cols, nil
}

// get returns the cell for column name, or "" for short rows.
func (c columnMap) get(rec []string, name string) string {
	i := c[name]
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}

// missingMarkers are cell values that catalog exports write for an absent
// value. Feature cells holding exactly one of them read as empty.
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// feature returns a feature cell with missing-value markers mapped to "".
// Titles are read with get and keep their text.
func (c columnMap) feature(rec []string, name string) string {
	v := c.get(rec, name)
	if _, missing := missingMarkers[v]; missing {
		return ""
	}
	return v
}
