package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/domain/forms"
	"github.com/ImpanaSR/Symptom-story/internal/domain/session"
)

var (
	loginEmail    string
	loginPassword string
	loginRole     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as doctor or patient",
	Long: `Log in to the portal and persist the session.

On success the bearer token and chosen role are stored in the credentials
file, and every later command runs as this user until logout.

Examples:
  symptom-story login --email doc@example.com --role doctor
  symptom-story login --email john@x.com --password secret1 --role patient`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (or set SYMPTOM_STORY_PASSWORD)")
	loginCmd.Flags().StringVar(&loginRole, "role", "patient", "role to log in as: doctor or patient")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	password := loginPassword
	if password == "" {
		password = os.Getenv("SYMPTOM_STORY_PASSWORD")
	}

	if err := forms.Validate(forms.LoginForm{Email: loginEmail, Password: password}); err != nil {
		return err
	}

	role := session.Role(loginRole)
	if err := a.sessions.Login(cmd.Context(), loginEmail, password, role); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	sess := a.sessions.Current()
	landed, _ := a.navigator.Go(consoleFor(role))
	fmt.Printf("Logged in as %s (%s)\n", sess.User.DisplayName(), sess.Role)
	fmt.Printf("Current view: %s\n", landed)
	return nil
}
