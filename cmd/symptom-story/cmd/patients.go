package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/domain/session"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "List your patients (doctor only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if _, err := a.requireRole(cmd.Context(), session.RoleDoctor); err != nil {
			return err
		}

		patients, err := a.client.DoctorPatients(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch patients: %w", err)
		}
		if len(patients) == 0 {
			fmt.Println("No patients yet.")
			return nil
		}

		for _, p := range patients {
			fmt.Printf("%s  %s <%s>\n", p.ID, p.Name, p.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patientsCmd)
}
