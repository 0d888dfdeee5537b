// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import "strings"

// MovieRecord is one catalog row. Missing values are empty strings.
type MovieRecord struct {
	// Index is the row position in the catalog, starting at 0.
	Index int `json:"index"`

	Title    string `json:"title"`
	Genres   string `json:"genres"`
	Keywords string `json:"keywords"`
	Tagline  string `json:"tagline"`
	Cast     string `json:"cast"`
	Director string `json:"director"`
	Overview string `json:"overview"`
}

// FeatureFields are the columns concatenated into a feature blob, in order.
var FeatureFields = []string{"genres", "keywords", "tagline", "cast", "director", "overview"}

// Compose builds the feature blob for a record: genres, keywords, tagline,
// cast, director and overview joined by single spaces. Empty fields still
// contribute their separator, so the result always has five spaces.
//
//nolint:gocritic // MovieRecord is passed by value to keep Compose pure
func Compose(m MovieRecord) string {
	var b strings.Builder
	b.Grow(len(m.Genres) + len(m.Keywords) + len(m.Tagline) + len(m.Cast) + len(m.Director) + len(m.Overview) + 5)
	b.WriteString(m.Genres)
	b.WriteByte(' ')
	b.WriteString(m.Keywords)
	b.WriteByte(' ')
	b.WriteString(m.Tagline)
	b.WriteByte(' ')
	b.WriteString(m.Cast)
	b.WriteByte(' ')
	b.WriteString(m.Director)
	b.WriteByte(' ')
	b.WriteString(m.Overview)
	return b.String()
}
