// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package cache provides the in-memory data structures the recommender keeps
next to a catalog snapshot.

  - LRU: a generic, thread-safe least-recently-used cache with TTL, used to
    memoize recommendation responses per snapshot
  - Trie: a case-insensitive prefix tree over catalog titles, used for
    title autocomplete

Both are plain in-process structures with no persistence.

# Usage Example

	results := cache.NewLRU[string, *Response](1024, 10*time.Minute)
	results.Add(key, resp)
	if resp, ok := results.Get(key); ok {
	    return resp
	}

	titles := cache.NewTrie()
	titles.InsertWithData("The Matrix", 0)
	for _, r := range titles.AutocompleteWithLimit("the ma", 5) {
	    fmt.Println(r.Value, r.Data)
	}
*/
package cache
