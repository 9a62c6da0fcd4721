package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your past symptom analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireLogin(cmd.Context()); err != nil {
			return err
		}

		records, err := a.client.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch history: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No past analyses.")
			return nil
		}

		for i, rec := range records {
			if i > 0 {
				fmt.Println()
			}
			if rec.CreatedAt != "" {
				fmt.Printf("[%s]\n", rec.CreatedAt)
			}
			if rec.Transcription != "" {
				fmt.Printf("  %s\n", rec.Transcription)
			}
			if len(rec.ExtractedSymptoms) > 0 {
				fmt.Printf("  Symptoms: %s\n", strings.Join(rec.ExtractedSymptoms, ", "))
			}
			if rec.FinalSummary != "" {
				fmt.Printf("  Summary: %s\n", rec.FinalSummary)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
