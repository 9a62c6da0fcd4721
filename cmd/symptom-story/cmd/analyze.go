package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/portal"
	"github.com/ImpanaSR/Symptom-story/internal/domain/consult"
)

var (
	analyzeText  string
	analyzeAudio string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Submit symptoms (text or audio) for analysis",
	Long: `Submit a symptom description for AI analysis.

Exactly one of --text or --audio must be given. Audio files are uploaded
as-is; recording is out of scope for this client.

Examples:
  symptom-story analyze --text "fever and headache since yesterday"
  symptom-story analyze --audio recording.wav`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "symptom description text")
	analyzeCmd.Flags().StringVar(&analyzeAudio, "audio", "", "path to an audio recording")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	hasText := analyzeText != ""
	hasAudio := analyzeAudio != ""
	if hasText == hasAudio {
		return errors.New("specify exactly one of --text or --audio")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if _, err := a.requireLogin(cmd.Context()); err != nil {
		return err
	}

	var result *portal.AnalysisResult
	if hasText {
		result, err = a.client.AnalyzeText(cmd.Context(), analyzeText)
	} else {
		var f *os.File
		f, err = os.Open(analyzeAudio)
		if err != nil {
			return fmt.Errorf("open audio file: %w", err)
		}
		defer f.Close()
		result, err = a.client.AnalyzeAudio(cmd.Context(), filepath.Base(analyzeAudio), f)
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printAnalysis(result)
	return nil
}

func printAnalysis(result *portal.AnalysisResult) {
	if result.Transcription != "" {
		fmt.Printf("Transcription:\n  %s\n\n", result.Transcription)
	}
	if len(result.ExtractedSymptoms) > 0 {
		fmt.Printf("Detected symptoms: %s\n", strings.Join(result.ExtractedSymptoms, ", "))
	}
	if result.FinalSummary != "" {
		fmt.Printf("Summary:\n  %s\n", result.FinalSummary)
	}
	if result.AIPrescription != "" {
		fmt.Printf("\nSuggested prescription:\n  %s\n", result.AIPrescription)
		if meds := consult.ExtractMedications(result.AIPrescription); len(meds) > 0 {
			fmt.Println("\nMedications:")
			for _, m := range meds {
				fmt.Printf("  - %s\n", m)
			}
		}
	}
}
