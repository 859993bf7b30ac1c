package grading

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// QuestionAnswerSpan is one question's answer text, cut out of a raw
// answer-sheet blob.
type QuestionAnswerSpan struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
}

// markerRe matches question headers at line starts: optional "Q"/"Question",
// a 1-3 digit number, one of : . ) - and trailing whitespace.
// Examples: "Q1:", "Question 12.", "3)", "7-".
var markerRe = regexp.MustCompile(`(?mi)^[ \t]*(?:q(?:uestion)?\s*)?(\d{1,3})[:.)\-]\s`)

// ExtractQAPairs splits raw answer-sheet text into per-question spans,
// keyed and ordered by question number. Text with no recognizable
// markers becomes the single answer to question "1"; duplicated
// question numbers (repeated page headers on multi-page scans) keep the
// last occurrence only. Never fails: degenerate input yields a
// degenerate-but-valid result.
func ExtractQAPairs(raw string) []QuestionAnswerSpan {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	locs := markerRe.FindAllStringSubmatchIndex(raw, -1)
	if len(locs) == 0 {
		return []QuestionAnswerSpan{{QuestionID: "1", Text: strings.TrimSpace(raw)}}
	}

	// last occurrence of a number wins
	spans := make(map[int]string, len(locs))
	for i, loc := range locs {
		num, err := strconv.Atoi(raw[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		spans[num] = strings.TrimSpace(raw[loc[1]:end])
	}

	ids := make([]int, 0, len(spans))
	for id := range spans {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]QuestionAnswerSpan, 0, len(ids))
	for _, id := range ids {
		out = append(out, QuestionAnswerSpan{QuestionID: strconv.Itoa(id), Text: spans[id]})
	}
	return out
}
