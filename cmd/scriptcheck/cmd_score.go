package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptcheck/scriptcheck/internal/config"
	"github.com/scriptcheck/scriptcheck/internal/scorebox"
)

var scoreFlags struct {
	outOf      int
	label      string
	configPath string
}

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Extract an obtained/out-of score from recognized text",
	Long: `Score reads one block of recognized text (a file, or stdin when the
argument is "-") and recovers the best-guess numeric score it contains,
with a confidence grade and the candidate matches that were considered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if scoreFlags.configPath != "" {
			if err := cfg.ApplyFile(scoreFlags.configPath); err != nil {
				return err
			}
		}
		label := cfg.ScoreLabelHint
		if scoreFlags.label != "" {
			label = scoreFlags.label
		}

		var text []byte
		var err error
		if args[0] == "-" {
			text, err = io.ReadAll(cmd.InOrStdin())
		} else {
			text, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading score text: %w", err)
		}

		res := scorebox.NewExtractor(label).Extract(string(text), scoreFlags.outOf)
		return printReport(res)
	},
}

func init() {
	scoreCmd.Flags().IntVar(&scoreFlags.outOf, "out-of", 0, "expected denominator, if known (e.g. 30 for a /30 paper)")
	scoreCmd.Flags().StringVar(&scoreFlags.label, "label", "", "label word to search near (default \"marks\")")
	scoreCmd.Flags().StringVar(&scoreFlags.configPath, "config", "", "optional YAML config file")
}
