package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/offline"
	"github.com/ImpanaSR/Symptom-story/internal/adapter/outbound/portal"
	"github.com/ImpanaSR/Symptom-story/internal/domain/forms"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
	signupConfirm  string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a patient account",
	Long: `Create a patient account.

Signing up does not log you in; run "symptom-story login" afterwards.
In offline mode the account is stored in the local database instead of
the remote portal.

Example:
  symptom-story signup --name "John Doe" --email john@x.com --password secret1 --confirm-password secret1`,
	RunE: runSignup,
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "full name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "email address")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "password")
	signupCmd.Flags().StringVar(&signupConfirm, "confirm-password", "", "password confirmation")
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	form := forms.SignupForm{
		Name:            signupName,
		Email:           signupEmail,
		Password:        signupPassword,
		ConfirmPassword: signupConfirm,
	}
	if err := forms.Validate(form); err != nil {
		return err
	}

	if a.cfg.Offline.Enabled {
		store, err := offline.Open(a.cfg.Offline.DatabasePath, a.logger)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.RegisterPatient(cmd.Context(), form.Name, form.Email, form.Password); err != nil {
			return fmt.Errorf("signup failed: %w", err)
		}
		fmt.Println("Account created successfully! (offline)")
		return nil
	}

	err = a.sessions.Signup(cmd.Context(), portal.SignupRequest{
		Email:    form.Email,
		Password: form.Password,
		Role:     "patient",
	})
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	fmt.Println("Account created successfully! Run \"symptom-story login\" to sign in.")
	return nil
}
