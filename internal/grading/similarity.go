package grading

import "math"

// CosineSimilarity scores the lexical overlap of two texts in [0, 1]
// using cosine similarity over term-count vectors. Either text
// tokenizing to nothing yields 0.
func (t Tokenizer) CosineSimilarity(a, b string) float64 {
	ta := termFrequency(t.Tokenize(a))
	tb := termFrequency(t.Tokenize(b))
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	dot := 0.0
	for tok, ca := range ta {
		if cb, ok := tb[tok]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	sim := dot / (vectorNorm(ta) * vectorNorm(tb))
	// guard against floating-point overshoot
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

func vectorNorm(tf map[string]int) float64 {
	sum := 0.0
	for _, c := range tf {
		sum += float64(c) * float64(c)
	}
	return math.Sqrt(sum)
}
