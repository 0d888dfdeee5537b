// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package cache

import (
	"fmt"
	"testing"
)

func titleTrie() *Trie {
	tr := NewTrie()
	for i, title := range []string{"The Matrix", "The Matrix Reloaded", "The Notebook", "Avatar", "The Matrix"} {
		tr.InsertWithData(title, i)
	}
	return tr
}

func TestTrie_Insert(t *testing.T) {
	tr := titleTrie()

	if tr.Size() != 4 {
		t.Errorf("Size() = %d, want 4", tr.Size())
	}

	got := tr.AutocompleteWithLimit("the matrix", 1)
	if len(got) != 1 || got[0].Value != "The Matrix" || got[0].Data.(int) != 0 || got[0].Count != 2 {
		t.Errorf("duplicate insert should keep first row 0 and count 2, got %+v", got)
	}
	if tr.Insert("The Matrix") {
		t.Error("re-inserting an existing key should report false")
	}
	if tr.Insert("") {
		t.Error("empty key must be rejected")
	}
}

func TestTrie_Autocomplete(t *testing.T) {
	tr := titleTrie()

	tests := []struct {
		prefix string
		limit  int
		want   []string
	}{
		// "The Matrix" was inserted twice, so it ranks first.
		{"the m", 10, []string{"The Matrix", "The Matrix Reloaded"}},
		{"THE", 10, []string{"The Matrix", "The Matrix Reloaded", "The Notebook"}},
		{"the", 2, []string{"The Matrix", "The Matrix Reloaded"}},
		{"av", 0, []string{"Avatar"}},
		{"zz", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got := tr.AutocompleteWithLimit(tt.prefix, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("AutocompleteWithLimit(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
			for i, r := range got {
				if r.Value != tt.want[i] {
					t.Errorf("result %d = %q, want %q", i, r.Value, tt.want[i])
				}
			}
		})
	}
}

func TestTrie_DefaultLimit(t *testing.T) {
	tr := NewTrie()
	for i := 0; i < DefaultMaxSuggestions+5; i++ {
		tr.Insert(fmt.Sprintf("Movie %02d", i))
	}

	if got := tr.Autocomplete("movie"); len(got) != DefaultMaxSuggestions {
		t.Errorf("Autocomplete() returned %d, want %d", len(got), DefaultMaxSuggestions)
	}
	if got := tr.Autocomplete("MOVIE 1"); len(got) != 5 {
		t.Errorf("Autocomplete(MOVIE 1) returned %d, want 5", len(got))
	}
}
