// Package scorebox recovers an "obtained / out of" numeric score pair
// from noisy recognized text, e.g. a photographed score box on an exam
// sheet. Extraction runs a fixed list of strategies in priority order
// and reports which one produced the result plus a confidence grade.
package scorebox

import (
	"regexp"
	"strconv"
	"strings"
)

// Method names the strategy that produced an ExtractedScore.
type Method string

const (
	MethodFraction Method = "fraction"
	MethodOutOf    Method = "out_of"
	MethodLabel    Method = "label"
	MethodFallback Method = "fallback"
)

// ScoreCandidate is a single obtained/out-of pair found in the text,
// kept for auditing regardless of which strategy won.
type ScoreCandidate struct {
	Obtained int    `json:"obtained"`
	OutOf    int    `json:"out_of"`
	Raw      string `json:"raw"`
}

// ExtractedScore is the best-guess score recovered from one text block.
// Nil Obtained means no usable number was found at all.
type ExtractedScore struct {
	Obtained   *int             `json:"obtained"`
	OutOf      *int             `json:"out_of"`
	Confidence float64          `json:"confidence"`
	Method     Method           `json:"method"`
	Candidates []ScoreCandidate `json:"candidates"`
}

const (
	// DefaultLabelHint is the word searched for by the label-proximity
	// strategy when the caller supplies none.
	DefaultLabelHint = "marks"

	// labelWindow is how many characters after a label occurrence are
	// scanned for a number.
	labelWindow = 60

	// maxPlausible caps the bare-number fallback; anything above is
	// assumed to be a year, id, or other non-score number.
	maxPlausible = 100
)

var (
	fractionRe = regexp.MustCompile(`\b(\d{1,3})\s*/\s*(\d{1,3})\b`)
	outOfRe    = regexp.MustCompile(`\b(\d{1,3})\s*out of\s*(\d{1,3})\b`)
	numberRe   = regexp.MustCompile(`\b\d{1,3}\b`)
	hspaceRe   = regexp.MustCompile(`[ \t]+`)
)

// Extractor holds score-extraction settings. The zero value is not
// useful; use NewExtractor.
type Extractor struct {
	labelHint string
}

// NewExtractor builds an Extractor. An empty labelHint falls back to
// DefaultLabelHint.
func NewExtractor(labelHint string) Extractor {
	if strings.TrimSpace(labelHint) == "" {
		labelHint = DefaultLabelHint
	}
	return Extractor{labelHint: strings.ToLower(strings.TrimSpace(labelHint))}
}

// ExtractScore runs extraction with default settings. expectedOutOf <= 0
// means the expected denominator is unknown.
func ExtractScore(text string, expectedOutOf int) ExtractedScore {
	return NewExtractor("").Extract(text, expectedOutOf)
}

// strategy is one extraction attempt; it returns false when it has
// nothing usable, handing over to the next strategy in the list.
type strategy func(*scan) (ExtractedScore, bool)

type scan struct {
	text          string
	expectedOutOf int
	candidates    []ScoreCandidate
}

// Extract recovers the best score pair from text. It is total: every
// input yields a result, with Confidence and Method communicating how
// trustworthy it is.
func (x Extractor) Extract(text string, expectedOutOf int) ExtractedScore {
	s := &scan{
		text:          normalize(text),
		expectedOutOf: expectedOutOf,
		candidates:    []ScoreCandidate{},
	}
	collectPairs(s)

	strategies := []strategy{
		bestPair,
		x.labelProximity,
		bareNumber,
	}
	for _, try := range strategies {
		if res, ok := try(s); ok {
			res.Candidates = s.candidates
			return res
		}
	}

	res := ExtractedScore{Confidence: 0, Method: MethodFallback, Candidates: s.candidates}
	if expectedOutOf > 0 {
		res.OutOf = intPtr(expectedOutOf)
	}
	return res
}

// normalize lowercases, unifies line endings, collapses runs of
// horizontal whitespace, and trims.
func normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = hspaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// collectPairs gathers every valid fraction ("23/30") and phrase
// ("23 out of 30") match into the shared candidate pool.
func collectPairs(s *scan) {
	for _, re := range []*regexp.Regexp{fractionRe, outOfRe} {
		for _, m := range re.FindAllStringSubmatchIndex(s.text, -1) {
			obtained, err1 := strconv.Atoi(s.text[m[2]:m[3]])
			outOf, err2 := strconv.Atoi(s.text[m[4]:m[5]])
			if err1 != nil || err2 != nil {
				continue
			}
			if outOf <= 0 || obtained < 0 || obtained > outOf {
				continue
			}
			s.candidates = append(s.candidates, ScoreCandidate{
				Obtained: obtained,
				OutOf:    outOf,
				Raw:      s.text[m[0]:m[1]],
			})
		}
	}
}

// bestPair picks the strongest candidate from the pool. Larger
// denominators win (a proxy for the full-test score over sub-part
// scores); matching the caller's expected denominator dominates
// everything; slash matches edge out phrase matches. Ties keep the
// first-discovered candidate.
func bestPair(s *scan) (ExtractedScore, bool) {
	if len(s.candidates) == 0 {
		return ExtractedScore{}, false
	}
	best := -1
	bestScore := 0
	for i, c := range s.candidates {
		score := c.OutOf
		if s.expectedOutOf > 0 && c.OutOf == s.expectedOutOf {
			score += 1000
		}
		if strings.Contains(c.Raw, "/") {
			score += 5
		}
		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	won := s.candidates[best]
	res := ExtractedScore{
		Obtained: intPtr(won.Obtained),
		OutOf:    intPtr(won.OutOf),
		Method:   MethodOutOf,
	}
	if strings.Contains(won.Raw, "/") {
		res.Method = MethodFraction
	}
	res.Confidence = 0.85
	if s.expectedOutOf > 0 && won.OutOf == s.expectedOutOf {
		res.Confidence = 0.95
	}
	return res, true
}

// labelProximity looks for a number within labelWindow characters after
// each occurrence of the label word. Only meaningful when the caller
// knows the denominator: a bare number near "marks" is only a score if
// it fits the expected range.
func (x Extractor) labelProximity(s *scan) (ExtractedScore, bool) {
	if s.expectedOutOf <= 0 {
		return ExtractedScore{}, false
	}
	labelRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(x.labelHint) + `\b`)
	for _, m := range labelRe.FindAllStringIndex(s.text, -1) {
		end := m[1] + labelWindow
		if end > len(s.text) {
			end = len(s.text)
		}
		window := s.text[m[1]:end]
		for _, nm := range numberRe.FindAllStringIndex(window, -1) {
			n, err := strconv.Atoi(window[nm[0]:nm[1]])
			if err != nil || n < 0 || n > s.expectedOutOf {
				continue
			}
			s.candidates = append(s.candidates, ScoreCandidate{
				Obtained: n,
				OutOf:    s.expectedOutOf,
				Raw:      s.text[m[0] : m[1]+nm[1]],
			})
			return ExtractedScore{
				Obtained:   intPtr(n),
				OutOf:      intPtr(s.expectedOutOf),
				Confidence: 0.65,
				Method:     MethodLabel,
			}, true
		}
	}
	return ExtractedScore{}, false
}

// bareNumber takes the first plausible 0-100 number anywhere in the
// text. Deliberately imprecise (page numbers and dates qualify); the
// 0.25 confidence tells the caller to treat it accordingly.
func bareNumber(s *scan) (ExtractedScore, bool) {
	for _, m := range numberRe.FindAllString(s.text, -1) {
		n, err := strconv.Atoi(m)
		if err != nil || n > maxPlausible {
			continue
		}
		res := ExtractedScore{
			Obtained:   intPtr(n),
			Confidence: 0.25,
			Method:     MethodFallback,
		}
		if s.expectedOutOf > 0 {
			res.OutOf = intPtr(s.expectedOutOf)
		}
		return res, true
	}
	return ExtractedScore{}, false
}

func intPtr(v int) *int { return &v }
