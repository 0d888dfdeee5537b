// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package cache

import (
	"sort"
	"strings"
	"sync"
)

// DefaultMaxSuggestions is the autocomplete limit when none is given.
const DefaultMaxSuggestions = 10

type trieNode struct {
	children map[rune]*trieNode
	isEnd    bool
	value    string // original spelling of the first insert
	data     any    // data of the first insert
	count    int
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a thread-safe prefix tree for autocomplete. Lookups cost O(m) in
// the length of the key plus the size of the matched subtree.
type Trie struct {
	mu             sync.RWMutex
	root           *trieNode
	size           int
	maxSuggestions int
}

// TrieResult is one autocomplete hit.
type TrieResult struct {
	Value string `json:"value"`
	Data  any    `json:"-"`
	Count int    `json:"count"`
}

// NewTrie creates a case-insensitive trie returning up to 10 suggestions.
func NewTrie() *Trie {
	return &Trie{
		root:           newTrieNode(),
		maxSuggestions: DefaultMaxSuggestions,
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// Insert adds value. See InsertWithData.
func (t *Trie) Insert(value string) bool {
	return t.InsertWithData(value, nil)
}

// InsertWithData adds value with associated data and returns true if it was
// new. Re-inserting an existing key only bumps its count; the first value
// and data are kept, so duplicate titles resolve to their first row.
func (t *Trie) InsertWithData(value string, data any) bool {
	if value == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range normalizeKey(value) {
		child := node.children[ch]
		if child == nil {
			child = newTrieNode()
			node.children[ch] = child
		}
		node = child
	}

	node.count++
	if node.isEnd {
		return false
	}
	node.isEnd = true
	node.value = value
	node.data = data
	t.size++
	return true
}

func (t *Trie) find(key string) *trieNode {
	node := t.root
	for _, ch := range normalizeKey(key) {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

// Autocomplete returns keys starting with prefix, limited to the trie default.
func (t *Trie) Autocomplete(prefix string) []TrieResult {
	return t.AutocompleteWithLimit(prefix, t.maxSuggestions)
}

// AutocompleteWithLimit returns up to limit keys starting with prefix,
// ordered by insert count (descending) and then alphabetically.
func (t *Trie) AutocompleteWithLimit(prefix string, limit int) []TrieResult {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(prefix)
	if node == nil {
		return nil
	}

	var results []TrieResult
	collectWords(node, &results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Value < results[j].Value
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func collectWords(node *trieNode, results *[]TrieResult) {
	if node.isEnd {
		*results = append(*results, TrieResult{Value: node.value, Data: node.data, Count: node.count})
	}
	for _, child := range node.children {
		collectWords(child, results)
	}
}

// Size returns the number of distinct keys.
func (t *Trie) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}
