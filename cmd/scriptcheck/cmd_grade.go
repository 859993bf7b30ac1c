package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptcheck/scriptcheck/internal/config"
	"github.com/scriptcheck/scriptcheck/internal/grading"
)

var gradeFlags struct {
	modelPath   string
	studentPath string
	marks       float64
	configPath  string
}

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a student answer sheet against a model answer key",
	Long: `Grade reads two plain-text files (already recognized upstream), splits
both into per-question answers, and scores each student answer against
the matching model answer by lexical similarity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if gradeFlags.configPath != "" {
			if err := cfg.ApplyFile(gradeFlags.configPath); err != nil {
				return err
			}
		}
		if gradeFlags.marks > 0 {
			cfg.MarksPerQuestion = gradeFlags.marks
		}
		if cfg.MarksPerQuestion <= 0 {
			return fmt.Errorf("marks per question must be positive, got %g", cfg.MarksPerQuestion)
		}

		modelText, err := os.ReadFile(gradeFlags.modelPath)
		if err != nil {
			return fmt.Errorf("reading model answers: %w", err)
		}
		studentText, err := os.ReadFile(gradeFlags.studentPath)
		if err != nil {
			return fmt.Errorf("reading student answers: %w", err)
		}

		grader := grading.NewHeuristicGrader(cfg.MarksPerQuestion, graderOptions(cfg)...)
		ev, err := grader.Grade(cmd.Context(), string(modelText), string(studentText))
		if err != nil {
			return err
		}
		return printReport(ev)
	},
}

func graderOptions(cfg config.Config) []grading.Option {
	opts := []grading.Option{
		grading.WithKeywordLimit(cfg.KeywordLimit),
		grading.WithWeakAreaLimit(cfg.WeakAreaLimit),
	}
	if len(cfg.StopWords) > 0 {
		opts = append(opts, grading.WithTokenizer(grading.NewTokenizer(cfg.StopWords)))
	}
	return opts
}

func init() {
	gradeCmd.Flags().StringVar(&gradeFlags.modelPath, "model", "", "path to the model answer key text")
	gradeCmd.Flags().StringVar(&gradeFlags.studentPath, "student", "", "path to the student submission text")
	gradeCmd.Flags().Float64Var(&gradeFlags.marks, "marks", 0, "max marks per question (overrides config)")
	gradeCmd.Flags().StringVar(&gradeFlags.configPath, "config", "", "optional YAML config file")
	_ = gradeCmd.MarkFlagRequired("model")
	_ = gradeCmd.MarkFlagRequired("student")
}
