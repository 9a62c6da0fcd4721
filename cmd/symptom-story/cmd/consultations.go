package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/domain/session"
)

var consultationsCmd = &cobra.Command{
	Use:   "consultations",
	Short: "List your consultation records (patient only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireRole(cmd.Context(), session.RolePatient); err != nil {
			return err
		}

		consultations, err := a.client.PatientConsultations(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch consultations: %w", err)
		}
		if len(consultations) == 0 {
			fmt.Println("No consultations yet.")
			return nil
		}

		for i, c := range consultations {
			if i > 0 {
				fmt.Println()
			}
			if c.DoctorName != "" {
				fmt.Printf("Doctor: %s\n", c.DoctorName)
			}
			fmt.Printf("Diagnosis: %s\n", c.Diagnosis)
			if len(c.Medications) > 0 {
				fmt.Printf("Medications: %s\n", strings.Join(c.Medications, ", "))
			}
			for _, inst := range c.Instructions {
				fmt.Printf("  - %s\n", inst)
			}
			if c.FollowUpDate != "" {
				fmt.Printf("Follow-up: %s %s\n", c.FollowUpDate, c.FollowUpTime)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(consultationsCmd)
}
