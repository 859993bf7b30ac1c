package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, 5.0, cfg.MarksPerQuestion)
	assert.Equal(t, 6, cfg.KeywordLimit)
	assert.Equal(t, 10, cfg.WeakAreaLimit)
	assert.Equal(t, "marks", cfg.ScoreLabelHint)
	assert.Empty(t, cfg.StopWords)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MARKS_PER_QUESTION", "2.5")
	t.Setenv("KEYWORD_LIMIT", "3")
	t.Setenv("SCORE_LABEL_HINT", "score")
	t.Setenv("STOP_WORDS", "der, die ,das")

	cfg := FromEnv()
	assert.Equal(t, 2.5, cfg.MarksPerQuestion)
	assert.Equal(t, 3, cfg.KeywordLimit)
	assert.Equal(t, "score", cfg.ScoreLabelHint)
	assert.Equal(t, []string{"der", "die", "das"}, cfg.StopWords)
}

func TestApplyFileOverlaysOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scriptcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marks_per_question: 4\nstop_words: [le, la]\n"), 0o644))

	cfg := FromEnv()
	require.NoError(t, cfg.ApplyFile(path))
	assert.Equal(t, 4.0, cfg.MarksPerQuestion)
	assert.Equal(t, []string{"le", "la"}, cfg.StopWords)
	// untouched keys keep env defaults
	assert.Equal(t, 6, cfg.KeywordLimit)
	assert.Equal(t, "marks", cfg.ScoreLabelHint)
}

func TestApplyFileMissingFile(t *testing.T) {
	cfg := FromEnv()
	assert.Error(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestApplyFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marks_per_question: [not a number"), 0o644))

	cfg := FromEnv()
	assert.Error(t, cfg.ApplyFile(path))
}
