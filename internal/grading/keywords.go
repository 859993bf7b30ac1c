package grading

import "sort"

// minKeywordLen filters tokens down to likely content words; shorter
// tokens are too generic to cite in feedback.
const minKeywordLen = 5

// MissingKeywords returns up to limit content words from the model text
// that the student text never mentions, most frequent first. Frequency
// ties keep the order the words were first seen in the model text.
func (t Tokenizer) MissingKeywords(model, student string, limit int) []string {
	seen := make(map[string]struct{})
	for _, tok := range t.Tokenize(student) {
		seen[tok] = struct{}{}
	}
	return t.rankContentWords(model, limit, func(tok string) bool {
		_, ok := seen[tok]
		return !ok
	})
}

// KeyPhrases ranks the model text's content words without any exclusion
// filter. Used when there is no student answer to diff against.
func (t Tokenizer) KeyPhrases(model string, limit int) []string {
	return t.rankContentWords(model, limit, func(string) bool { return true })
}

func (t Tokenizer) rankContentWords(text string, limit int, keep func(string) bool) []string {
	counts := make(map[string]int)
	order := make([]string, 0, 16)
	for _, tok := range t.Tokenize(text) {
		if len(tok) < minKeywordLen || !keep(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	return rankByCount(order, counts, limit)
}

// rankByCount sorts tokens by descending count, keeping first-seen
// order on ties, and truncates to limit.
func rankByCount(order []string, counts map[string]int, limit int) []string {
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
