package fedreg

import (
	"strings"
	"unicode/utf8"
)

// MinTokenLength is the shortest query token that participates in matching.
// Shorter fragments are almost always articles or prepositions and would
// match nearly every document.
const MinTokenLength = 3

// Tokenize splits a free-text query into lowercase search tokens.
// Tokens shorter than MinTokenLength runes are discarded. A query that
// yields no tokens is too short to search.
func Tokenize(query string) []string {
	var tokens []string
	for _, word := range strings.Fields(query) {
		if utf8.RuneCountInString(word) < MinTokenLength {
			continue
		}
		tokens = append(tokens, strings.ToLower(word))
	}
	return tokens
}
