// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"math"
	"sort"
)

// Vocabulary maps terms to column positions. Columns are assigned in
// lexicographic term order.
type Vocabulary struct {
	terms []string
	index map[string]int
	idf   []float64
}

// Size returns the number of distinct terms.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}

// Term returns the term at column i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Column returns the column of term, if known.
func (v *Vocabulary) Column(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// IDF returns the inverse document frequency of column i.
func (v *Vocabulary) IDF(i int) float64 {
	return v.idf[i]
}

// SparseVector is a document row with ascending column indices.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// NNZ returns the number of stored entries.
func (s SparseVector) NNZ() int {
	return len(s.Indices)
}

// Norm returns the Euclidean norm.
func (s SparseVector) Norm() float64 {
	var sum float64
	for _, v := range s.Values {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sparse vectors.
func (s SparseVector) Dot(o SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(s.Indices) && j < len(o.Indices) {
		switch {
		case s.Indices[i] == o.Indices[j]:
			sum += s.Values[i] * o.Values[j]
			i++
			j++
		case s.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// FitTransform builds a vocabulary from docs and returns one TF-IDF vector
// per document.
//
// Weight of term t in document d is count(t, d) * idf(t), with the smoothed
// idf(t) = ln((1+N)/(1+df(t))) + 1. Each row is then scaled to unit length;
// rows with no tokens stay empty. Only a zero-length docs slice is an error.
func FitTransform(docs []string) (*Vocabulary, []SparseVector, error) {
	if len(docs) == 0 {
		return nil, nil, ErrEmptyCorpus
	}

	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for d, doc := range docs {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[d] = tf
	}

	vocab := &Vocabulary{
		terms: make([]string, 0, len(df)),
		index: make(map[string]int, len(df)),
	}
	for term := range df {
		vocab.terms = append(vocab.terms, term)
	}
	sort.Strings(vocab.terms)

	n := float64(len(docs))
	vocab.idf = make([]float64, len(vocab.terms))
	for i, term := range vocab.terms {
		vocab.index[term] = i
		vocab.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for d, tf := range counts {
		vectors[d] = vocab.weigh(tf)
	}

	return vocab, vectors, nil
}

// weigh turns raw term counts into an L2-normalized TF-IDF row.
func (v *Vocabulary) weigh(tf map[string]int) SparseVector {
	if len(tf) == 0 {
		return SparseVector{}
	}

	cols := make([]int, 0, len(tf))
	for term := range tf {
		cols = append(cols, v.index[term])
	}
	sort.Ints(cols)

	vec := SparseVector{Indices: cols, Values: make([]float64, len(cols))}
	var sumSq float64
	for i, c := range cols {
		w := float64(tf[v.terms[c]]) * v.idf[c]
		vec.Values[i] = w
		sumSq += w * w
	}

	norm := math.Sqrt(sumSq)
	for i := range vec.Values {
		vec.Values[i] /= norm
	}
	return vec
}

// Transform vectorizes a new document against an existing vocabulary.
// Terms not in the vocabulary are ignored.
func (v *Vocabulary) Transform(doc string) SparseVector {
	tf := make(map[string]int)
	for _, tok := range Tokenize(doc) {
		if _, ok := v.index[tok]; ok {
			tf[tok]++
		}
	}
	return v.weigh(tf)
}
