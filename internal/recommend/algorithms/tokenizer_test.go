// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only separators", "  ,;  ", nil},
		{"lowercases", "The Matrix", []string{"the", "matrix"}},
		{"punctuation splits", "The Matrix, 1999!", []string{"the", "matrix", "1999"}},
		{"hyphen splits", "Sci-Fi", []string{"sci", "fi"}},
		{"single characters dropped", "a I x 7", nil},
		{"apostrophe", "Don't", []string{"don"}},
		{"underscore is a word rune", "snake_case", []string{"snake_case"}},
		{"unicode letters", "Amélie Café", []string{"amélie", "café"}},
		{"trailing token", "love letters", []string{"love", "letters"}},
		{"repeats kept", "war war", []string{"war", "war"}},
		{"dotted capital I", "İstanbul", []string{"stanbul"}},
		{"final sigma", "ΣΑΣ", []string{"σας"}},
		{"sigma inside a word", "ΟΔΥΣΣΕΑΣ ΣΤΟ", []string{"οδυσσεας", "στο"}},
		{"lone sigma", "Σ Σ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
