// Package cmd provides the CLI commands for the Symptom-Story client.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/config"
)

var cfgFile string
var credentialsPath string

var rootCmd = &cobra.Command{
	Use:   "symptom-story",
	Short: "Symptom-Story - patient/doctor portal client",
	Long: `Symptom-Story is a client for the Symptom-Story health portal.

It manages the login session (token persistence, role-gated navigation)
and drives the portal backend: symptom analysis, consultation history,
prescriptions, and appointment booking.

Quick start:
  1. symptom-story signup --name "John Doe" --email john@x.com
  2. symptom-story login --email john@x.com --role patient
  3. symptom-story analyze --text "fever and headache since yesterday"

Configuration:
  Config is loaded from symptom-story.yaml in the current directory,
  $HOME/.symptom-story/, or /etc/symptom-story/.

  Environment variables can override config values with the
  SYMPTOM_STORY_ prefix. Example: SYMPTOM_STORY_SERVER_ADDR=http://api:8000

Commands:
  signup         Create an account
  login          Log in as doctor or patient
  logout         Log out and clear the stored credential
  whoami         Show the current session
  analyze        Submit symptoms (text or audio) for analysis
  history        Show past analyses
  patients       List the doctor's patients
  consultations  List the patient's consultations
  book           Book an appointment slot (offline mode)
  reset          Remove local state
  version        Print version information`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./symptom-story.yaml)")
	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", "", "path to credentials.json (default: ~/.symptom-story/credentials.json)")
}

func initConfig() {
	config.InitViper(cfgFile)
}
