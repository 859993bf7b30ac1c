package grading

import (
	"context"
	"errors"
	"log"
)

// Grader produces an Evaluation for a model-answer/student-answer text
// pair.
type Grader interface {
	Grade(ctx context.Context, modelText, studentText string) (Evaluation, error)
}

// Engine routes grading through an optional primary Grader (typically
// backed by an external AI service, wired in by the caller) and falls
// back to the heuristic grader when the primary fails or is absent.
// The heuristic path never fails, so Engine.Grade never returns an
// error after valid construction.
type Engine struct {
	primary  Grader
	fallback *HeuristicGrader
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithPrimary installs the preferred grader tried before the heuristic
// fallback.
func WithPrimary(g Grader) EngineOption {
	return func(e *Engine) { e.primary = g }
}

// NewEngine builds an Engine around the given heuristic fallback.
func NewEngine(fallback *HeuristicGrader, opts ...EngineOption) (*Engine, error) {
	if fallback == nil {
		return nil, errors.New("grading: fallback grader is required")
	}
	e := &Engine{fallback: fallback}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Grade tries the primary grader first and downgrades to the heuristic
// path on any error.
func (e *Engine) Grade(ctx context.Context, modelText, studentText string) (Evaluation, error) {
	if e.primary != nil {
		ev, err := e.primary.Grade(ctx, modelText, studentText)
		if err == nil {
			return ev, nil
		}
		log.Printf("grading.Engine: primary grader failed, using heuristic fallback: %v", err)
	}
	return e.fallback.Grade(ctx, modelText, studentText)
}
