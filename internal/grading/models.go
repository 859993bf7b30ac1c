package grading

// Deduction is a single cause for lost marks on one question.
type Deduction struct {
	Reason string  `json:"reason"`
	Marks  float64 `json:"marks"`
}

// QuestionResult is the graded outcome for one question.
// MarksAwarded stays within [0, MaxMarks] and is a multiple of 0.5.
type QuestionResult struct {
	QuestionID   string      `json:"question_id"`
	MarksAwarded float64     `json:"marks_awarded"`
	MaxMarks     float64     `json:"max_marks"`
	Feedback     string      `json:"feedback"`
	Deductions   []Deduction `json:"deductions,omitempty"`
	WeakAreas    []string    `json:"weak_areas,omitempty"`
}

// Evaluation is the full graded outcome for a submission.
// TotalMarks and MaxTotalMarks are always the exact sums of the
// per-question fields.
type Evaluation struct {
	TotalMarks      float64          `json:"total_marks"`
	MaxTotalMarks   float64          `json:"max_total_marks"`
	OverallFeedback string           `json:"overall_feedback"`
	WeakAreas       []string         `json:"weak_areas,omitempty"`
	Confidence      float64          `json:"confidence"`
	Questions       []QuestionResult `json:"questions"`
}
