package grading

import (
	"strings"
	"unicode"
)

// defaultStopWords is the built-in English function-word set. Tokenizers
// copy it at construction; nothing mutates it afterwards.
var defaultStopWords = []string{
	"a", "about", "after", "again", "all", "also", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being",
	"between", "both", "but", "by", "can", "could", "did", "do", "does",
	"down", "during", "each", "few", "for", "from", "had", "has", "have",
	"he", "her", "here", "him", "his", "how", "if", "in", "into", "is",
	"it", "its", "just", "may", "might", "more", "most", "must", "no",
	"not", "of", "off", "on", "once", "only", "or", "other", "our",
	"out", "over", "own", "same", "she", "should", "so", "some", "such",
	"than", "that", "the", "their", "them", "then", "there", "these",
	"they", "this", "those", "through", "to", "under", "up", "very",
	"was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "would", "you", "your",
}

// Tokenizer splits free text into lowercase content tokens. The
// stop-word set is fixed at construction and never mutated, so a
// Tokenizer value is safe to share across goroutines.
type Tokenizer struct {
	stop map[string]struct{}
}

// NewTokenizer builds a Tokenizer with the given stop-word set. An
// empty set means no stop-word filtering.
func NewTokenizer(stopWords []string) Tokenizer {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return Tokenizer{stop: stop}
}

// DefaultTokenizer returns a Tokenizer with the built-in English
// stop-word set.
func DefaultTokenizer() Tokenizer {
	return NewTokenizer(defaultStopWords)
}

// Tokenize lowercases the text, splits it on non-alphanumeric runes,
// and drops tokens shorter than two characters plus stop words.
func (t Tokenizer) Tokenize(text string) []string {
	out := make([]string, 0, 16)
	cur := make([]rune, 0, 16)
	flush := func() {
		if len(cur) < 2 {
			cur = cur[:0]
			return
		}
		tok := string(cur)
		cur = cur[:0]
		if _, skip := t.stop[tok]; skip {
			return
		}
		out = append(out, tok)
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur = append(cur, unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()
	return out
}

// termFrequency counts occurrences per token.
func termFrequency(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}
