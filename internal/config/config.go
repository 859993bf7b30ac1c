package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries the tunable grading and score-extraction knobs. It is
// built once at startup and passed down by value; nothing mutates it
// afterwards.
type Config struct {
	// MarksPerQuestion is the uniform maximum awarded per question.
	MarksPerQuestion float64

	// KeywordLimit caps missing keywords cited per question.
	KeywordLimit int

	// WeakAreaLimit caps the aggregated weak-area list.
	WeakAreaLimit int

	// ScoreLabelHint is the word the score extractor searches near.
	ScoreLabelHint string

	// StopWords overrides the built-in stop-word set when non-empty.
	StopWords []string
}

// FromEnv builds a Config from environment variables, with defaults
// matching the heuristic grader's built-ins.
func FromEnv() Config {
	return Config{
		MarksPerQuestion: envFloat("MARKS_PER_QUESTION", 5),
		KeywordLimit:     envInt("KEYWORD_LIMIT", 6),
		WeakAreaLimit:    envInt("WEAK_AREA_LIMIT", 10),
		ScoreLabelHint:   envOr("SCORE_LABEL_HINT", "marks"),
		StopWords:        csvOr("STOP_WORDS", ""),
	}
}

// fileConfig mirrors Config with pointer fields so absent YAML keys
// leave the existing value alone.
type fileConfig struct {
	MarksPerQuestion *float64 `yaml:"marks_per_question"`
	KeywordLimit     *int     `yaml:"keyword_limit"`
	WeakAreaLimit    *int     `yaml:"weak_area_limit"`
	ScoreLabelHint   *string  `yaml:"score_label_hint"`
	StopWords        []string `yaml:"stop_words"`
}

// ApplyFile overlays settings from a YAML file onto c. Keys absent from
// the file keep their current values.
func (c *Config) ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if fc.MarksPerQuestion != nil {
		c.MarksPerQuestion = *fc.MarksPerQuestion
	}
	if fc.KeywordLimit != nil {
		c.KeywordLimit = *fc.KeywordLimit
	}
	if fc.WeakAreaLimit != nil {
		c.WeakAreaLimit = *fc.WeakAreaLimit
	}
	if fc.ScoreLabelHint != nil {
		c.ScoreLabelHint = *fc.ScoreLabelHint
	}
	if len(fc.StopWords) > 0 {
		c.StopWords = fc.StopWords
	}
	return nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}

func envFloat(k string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil {
		return v
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
