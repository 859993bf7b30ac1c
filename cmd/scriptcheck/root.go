package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "scriptcheck",
	Short: "Grade answer sheets and read score boxes from recognized text",
	Long: "Scriptcheck grades free-text exam answers against a model answer key\n" +
		"and extracts obtained/out-of score pairs from noisy recognized text.\n" +
		"It operates on plain text only; OCR happens upstream.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.Version = version
}

// report wraps a command's result with an id and timestamp so
// downstream consumers can reference a particular run.
type report struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Result      any       `json:"result"`
}

func printReport(result any) error {
	out, err := json.MarshalIndent(report{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
