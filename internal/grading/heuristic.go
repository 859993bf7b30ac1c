package grading

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	defaultKeywordLimit  = 6
	defaultWeakAreaLimit = 10

	// heuristicConfidence marks evaluations from this grader as a
	// low-confidence, non-AI fallback.
	heuristicConfidence = 0.35
)

const heuristicDisclosure = "Graded with keyword-overlap heuristics (no AI model was used); please review the marks manually."

// HeuristicGrader scores student answers against a model answer key
// using lexical similarity only. It is total: any pair of texts grades
// to a valid Evaluation.
type HeuristicGrader struct {
	tok              Tokenizer
	marksPerQuestion float64
	keywordLimit     int
	weakAreaLimit    int
	scheme           map[string]float64
}

// Option configures a HeuristicGrader.
type Option func(*HeuristicGrader)

// WithTokenizer replaces the default tokenizer (and with it the
// stop-word set).
func WithTokenizer(t Tokenizer) Option {
	return func(g *HeuristicGrader) { g.tok = t }
}

// WithKeywordLimit caps how many missing keywords are cited per question.
func WithKeywordLimit(n int) Option {
	return func(g *HeuristicGrader) { g.keywordLimit = n }
}

// WithWeakAreaLimit caps the aggregated weak-area list on the Evaluation.
func WithWeakAreaLimit(n int) Option {
	return func(g *HeuristicGrader) { g.weakAreaLimit = n }
}

// WithMarksScheme overrides the uniform per-question maximum for the
// listed question ids.
func WithMarksScheme(scheme map[string]float64) Option {
	return func(g *HeuristicGrader) {
		g.scheme = make(map[string]float64, len(scheme))
		for id, marks := range scheme {
			g.scheme[id] = marks
		}
	}
}

// NewHeuristicGrader builds a grader awarding up to marksPerQuestion
// per question. marksPerQuestion must be positive; validating it is the
// caller's job.
func NewHeuristicGrader(marksPerQuestion float64, opts ...Option) *HeuristicGrader {
	g := &HeuristicGrader{
		tok:              DefaultTokenizer(),
		marksPerQuestion: marksPerQuestion,
		keywordLimit:     defaultKeywordLimit,
		weakAreaLimit:    defaultWeakAreaLimit,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Grade segments both texts into per-question spans and grades the
// pairs. Implements Grader; the error is always nil.
func (g *HeuristicGrader) Grade(_ context.Context, modelText, studentText string) (Evaluation, error) {
	return g.GradeSpans(ExtractQAPairs(modelText), ExtractQAPairs(studentText)), nil
}

// GradeSpans grades pre-segmented spans. Every question id present on
// either side yields exactly one QuestionResult, in ascending numeric
// order.
func (g *HeuristicGrader) GradeSpans(modelSpans, studentSpans []QuestionAnswerSpan) Evaluation {
	model := spansByID(modelSpans)
	student := spansByID(studentSpans)

	ids := make([]string, 0, len(model)+len(student))
	for id := range model {
		ids = append(ids, id)
	}
	for id := range student {
		if _, ok := model[id]; !ok {
			ids = append(ids, id)
		}
	}
	sortQuestionIDs(ids)

	ev := Evaluation{
		OverallFeedback: heuristicDisclosure,
		Confidence:      heuristicConfidence,
		Questions:       make([]QuestionResult, 0, len(ids)),
	}

	weakCounts := make(map[string]int)
	weakOrder := make([]string, 0, 16)
	for _, id := range ids {
		qr := g.gradeQuestion(id, model[id], student[id])
		ev.TotalMarks += qr.MarksAwarded
		ev.MaxTotalMarks += qr.MaxMarks
		for _, area := range qr.WeakAreas {
			if weakCounts[area] == 0 {
				weakOrder = append(weakOrder, area)
			}
			weakCounts[area]++
		}
		ev.Questions = append(ev.Questions, qr)
	}
	ev.WeakAreas = rankByCount(weakOrder, weakCounts, g.weakAreaLimit)
	return ev
}

func (g *HeuristicGrader) gradeQuestion(id, modelText, studentText string) QuestionResult {
	maxMarks := g.marksPerQuestion
	if override, ok := g.scheme[id]; ok {
		maxMarks = override
	}
	qr := QuestionResult{QuestionID: id, MaxMarks: maxMarks}

	hasModel := strings.TrimSpace(modelText) != ""
	hasStudent := strings.TrimSpace(studentText) != ""

	switch {
	case !hasStudent:
		qr.Feedback = "No readable answer was found for this question."
		qr.Deductions = []Deduction{{Reason: "Blank or unreadable answer", Marks: maxMarks}}
		if hasModel {
			qr.WeakAreas = g.tok.KeyPhrases(modelText, g.keywordLimit)
		}
	case !hasModel:
		qr.Feedback = "No model answer is available to compare against."
		qr.Deductions = []Deduction{{Reason: "Missing model answer", Marks: maxMarks}}
	default:
		sim := g.tok.CosineSimilarity(modelText, studentText)
		qr.MarksAwarded = clampMarks(math.Round(sim*maxMarks*2)/2, maxMarks)
		missing := g.tok.MissingKeywords(modelText, studentText, g.keywordLimit)
		qr.WeakAreas = missing
		if qr.MarksAwarded == maxMarks {
			qr.Feedback = "Answer matches the model answer closely."
			break
		}
		lost := maxMarks - qr.MarksAwarded
		if len(missing) > 0 {
			joined := strings.Join(missing, ", ")
			qr.Feedback = "Missing key points: " + joined + ". Add these to strengthen the answer."
			qr.Deductions = []Deduction{{Reason: "Key points not covered: " + joined, Marks: lost}}
		} else {
			qr.Feedback = "Answer only partially matches the model answer; add more specific points."
			qr.Deductions = []Deduction{{Reason: "Answer differs from the model answer", Marks: lost}}
		}
	}
	return qr
}

func clampMarks(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func spansByID(spans []QuestionAnswerSpan) map[string]string {
	m := make(map[string]string, len(spans))
	for _, s := range spans {
		m[s.QuestionID] = s.Text
	}
	return m
}

// sortQuestionIDs orders ids by numeric value ("2" before "10"); ids
// that fail to parse sort after numeric ones, lexicographically.
func sortQuestionIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}
