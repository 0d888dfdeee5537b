// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package algorithms

import (
	"strings"
	"unicode"
)

// minTokenRunes drops single-character tokens ("a", "I", "3").
const minTokenRunes = 2

// isWordRune reports whether r belongs to a word: Unicode letters, numbers and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize lowercases text and returns every maximal run of word runes that
// is at least two runes long, in order of appearance. Punctuation, spaces
// and symbols separate tokens; "sci-fi" yields "sci" and "fi", "don't"
// yields only "don".
func Tokenize(text string) []string {
	text = lower(text)

	var tokens []string
	start, runes := -1, 0
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start, runes = i, 0
			}
			runes++
			continue
		}
		if start >= 0 && runes >= minTokenRunes {
			tokens = append(tokens, text[start:i])
		}
		start = -1
	}
	if start >= 0 && runes >= minTokenRunes {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

const (
	capitalDottedI = '\u0130' // İ
	capitalSigma   = '\u03a3' // Σ
	finalSigma     = '\u03c2' // ς
	combiningDot   = '\u0307'
)

// lower applies full Unicode lowercasing. It differs from strings.ToLower
// in two places: İ becomes "i" followed by a combining dot above, and Σ
// becomes ς at the end of a word.
func lower(text string) string {
	if !strings.ContainsRune(text, capitalDottedI) && !strings.ContainsRune(text, capitalSigma) {
		return strings.ToLower(text)
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + 1)
	for i, r := range runes {
		switch {
		case r == capitalDottedI:
			b.WriteRune('i')
			b.WriteRune(combiningDot)
		case r == capitalSigma && isFinalSigma(runes, i):
			b.WriteRune(finalSigma)
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// isFinalSigma reports whether the sigma at i follows a cased letter and is
// not followed by one, skipping case-ignorable runes in both directions.
func isFinalSigma(runes []rune, i int) bool {
	before := false
	for j := i - 1; j >= 0; j-- {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		before = isCased(runes[j])
		break
	}
	if !before {
		return false
	}
	for j := i + 1; j < len(runes); j++ {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		return !isCased(runes[j])
	}
	return true
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

func isCaseIgnorable(r rune) bool {
	switch r {
	case '\'', '.', ':', '^', '`', '\u00b7', '\u2018', '\u2019', '\u2024', '\u2027':
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}
