package grading

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(id, text string) QuestionAnswerSpan {
	return QuestionAnswerSpan{QuestionID: id, Text: text}
}

func TestGradeSpansFullMatch(t *testing.T) {
	g := NewHeuristicGrader(5)
	model := []QuestionAnswerSpan{span("1", "evaporation condensation precipitation collection")}
	student := []QuestionAnswerSpan{span("1", "evaporation condensation precipitation collection")}

	ev := g.GradeSpans(model, student)
	require.Len(t, ev.Questions, 1)
	q := ev.Questions[0]
	assert.Equal(t, 5.0, q.MarksAwarded)
	assert.Equal(t, 5.0, q.MaxMarks)
	assert.Empty(t, q.Deductions)
	assert.Equal(t, "Answer matches the model answer closely.", q.Feedback)
}

func TestGradeSpansBlankStudentAnswer(t *testing.T) {
	g := NewHeuristicGrader(5)
	model := []QuestionAnswerSpan{span("1", "chlorophyll absorbs sunlight during photosynthesis")}

	ev := g.GradeSpans(model, nil)
	require.Len(t, ev.Questions, 1)
	q := ev.Questions[0]
	assert.Zero(t, q.MarksAwarded)
	require.Len(t, q.Deductions, 1)
	assert.Equal(t, "Blank or unreadable answer", q.Deductions[0].Reason)
	assert.Equal(t, 5.0, q.Deductions[0].Marks)
	// key phrases from the model answer stand in for gap analysis
	assert.NotEmpty(t, q.WeakAreas)
}

func TestGradeSpansMissingModelAnswer(t *testing.T) {
	g := NewHeuristicGrader(5)
	student := []QuestionAnswerSpan{span("3", "an answer with no reference")}

	ev := g.GradeSpans(nil, student)
	require.Len(t, ev.Questions, 1)
	q := ev.Questions[0]
	assert.Equal(t, "3", q.QuestionID)
	assert.Zero(t, q.MarksAwarded)
	require.Len(t, q.Deductions, 1)
	assert.Equal(t, "Missing model answer", q.Deductions[0].Reason)
	assert.Empty(t, q.WeakAreas)
}

func TestGradeSpansPartialMatch(t *testing.T) {
	g := NewHeuristicGrader(10)
	model := []QuestionAnswerSpan{span("1", "the mitochondria produce energy through cellular respiration using oxygen")}
	student := []QuestionAnswerSpan{span("1", "mitochondria produce energy")}

	ev := g.GradeSpans(model, student)
	require.Len(t, ev.Questions, 1)
	q := ev.Questions[0]
	assert.Greater(t, q.MarksAwarded, 0.0)
	assert.Less(t, q.MarksAwarded, 10.0)
	require.Len(t, q.Deductions, 1)
	assert.InDelta(t, 10.0-q.MarksAwarded, q.Deductions[0].Marks, 1e-9)
	assert.Contains(t, q.Deductions[0].Reason, "Key points not covered")
	assert.NotEmpty(t, q.WeakAreas)
}

func TestGradeSpansMarksAreHalfMarkMultiples(t *testing.T) {
	g := NewHeuristicGrader(7)
	model := []QuestionAnswerSpan{
		span("1", "newton first law inertia objects remain at rest"),
		span("2", "acceleration equals force divided by mass"),
	}
	student := []QuestionAnswerSpan{
		span("1", "objects stay at rest because of inertia"),
		span("2", "force equals mass times acceleration"),
	}

	ev := g.GradeSpans(model, student)
	for _, q := range ev.Questions {
		frac := math.Mod(q.MarksAwarded*2, 1)
		assert.Zero(t, frac, "marks %v for question %s is not a half-mark multiple", q.MarksAwarded, q.QuestionID)
		assert.GreaterOrEqual(t, q.MarksAwarded, 0.0)
		assert.LessOrEqual(t, q.MarksAwarded, q.MaxMarks)
	}
}

func TestGradeSpansTotalsMatchQuestionSums(t *testing.T) {
	g := NewHeuristicGrader(5)
	model := []QuestionAnswerSpan{
		span("1", "photosynthesis converts light into chemical energy"),
		span("2", "osmosis moves water across membranes"),
		span("4", "enzymes catalyze biochemical reactions"),
	}
	student := []QuestionAnswerSpan{
		span("1", "photosynthesis makes chemical energy from light"),
		span("3", "unpaired answer"),
	}

	ev := g.GradeSpans(model, student)
	// union of ids on either side, numerically ordered
	require.Len(t, ev.Questions, 4)
	assert.Equal(t, "1", ev.Questions[0].QuestionID)
	assert.Equal(t, "2", ev.Questions[1].QuestionID)
	assert.Equal(t, "3", ev.Questions[2].QuestionID)
	assert.Equal(t, "4", ev.Questions[3].QuestionID)

	var total, maxTotal float64
	for _, q := range ev.Questions {
		total += q.MarksAwarded
		maxTotal += q.MaxMarks
	}
	assert.Equal(t, total, ev.TotalMarks)
	assert.Equal(t, maxTotal, ev.MaxTotalMarks)
	assert.Equal(t, 20.0, ev.MaxTotalMarks)
}

func TestGradeSpansHeuristicDisclosure(t *testing.T) {
	g := NewHeuristicGrader(5)
	ev := g.GradeSpans([]QuestionAnswerSpan{span("1", "anything")}, nil)
	assert.Equal(t, 0.35, ev.Confidence)
	assert.NotEmpty(t, ev.OverallFeedback)
}

func TestGradeSpansMarksScheme(t *testing.T) {
	g := NewHeuristicGrader(5, WithMarksScheme(map[string]float64{"2": 10}))
	model := []QuestionAnswerSpan{span("1", "alpha"), span("2", "beta")}

	ev := g.GradeSpans(model, nil)
	require.Len(t, ev.Questions, 2)
	assert.Equal(t, 5.0, ev.Questions[0].MaxMarks)
	assert.Equal(t, 10.0, ev.Questions[1].MaxMarks)
	assert.Equal(t, 15.0, ev.MaxTotalMarks)
}

func TestGradeSpansWeakAreaAggregation(t *testing.T) {
	g := NewHeuristicGrader(5)
	model := []QuestionAnswerSpan{
		span("1", "glucose fuels respiration"),
		span("2", "glucose stores chemical potential"),
	}
	student := []QuestionAnswerSpan{
		span("1", "cells need fuel"),
		span("2", "sugar stores potential"),
	}

	ev := g.GradeSpans(model, student)
	require.NotEmpty(t, ev.WeakAreas)
	// glucose is missing from both answers, so it ranks first
	assert.Equal(t, "glucose", ev.WeakAreas[0])
}

func TestGradeSegmentsRawText(t *testing.T) {
	g := NewHeuristicGrader(5)
	ev, err := g.Grade(context.Background(),
		"Q1: water boils at one hundred degrees celsius\nQ2: ice melts at zero degrees",
		"Q1: water boils at one hundred degrees celsius",
	)
	require.NoError(t, err)
	require.Len(t, ev.Questions, 2)
	assert.Equal(t, 5.0, ev.Questions[0].MarksAwarded)
	assert.Zero(t, ev.Questions[1].MarksAwarded)
}
