package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ImpanaSR/Symptom-story/internal/config"
)

var (
	resetIncludeOffline bool
	resetForce          bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove stored credentials and local state",
	Long: `Reset the client by removing persistent state files.

By default, only the credentials file is removed, which logs you out of
every future invocation.

Optional flags:
  --include-offline   Also remove the offline appointments database
  --force             Skip confirmation prompt

Examples:
  # Remove credentials only (interactive confirmation)
  symptom-story reset

  # Remove everything without prompting
  symptom-story reset --include-offline --force`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetIncludeOffline, "include-offline", false, "Also remove the offline database")
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	credPath := credentialsPath
	if credPath == "" {
		credPath = cfg.Storage.CredentialsPath
	}

	type target struct {
		path string
		desc string
	}
	targets := []target{{credPath, "credentials file"}}
	if resetIncludeOffline {
		targets = append(targets, target{cfg.Offline.DatabasePath, "offline database"})
	}

	var existing []target
	for _, t := range targets {
		if _, err := os.Stat(t.path); err == nil {
			existing = append(existing, t)
		}
	}

	if len(existing) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to reset — no state files found.")
		return nil
	}

	fmt.Fprintln(os.Stderr, "The following will be removed:")
	for _, t := range existing {
		fmt.Fprintf(os.Stderr, "  - %s (%s)\n", t.path, t.desc)
	}

	if !resetForce {
		fmt.Fprint(os.Stderr, "\nProceed? [y/N] ")
		var answer string
		fmt.Scanln(&answer) //nolint:errcheck // interactive prompt, error irrelevant
		if answer != "y" && answer != "Y" {
			fmt.Fprintln(os.Stderr, "Aborted.")
			return nil
		}
	}

	var failed int
	for _, t := range existing {
		if err := os.Remove(t.path); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR removing %s: %v\n", t.path, err)
			failed++
		} else {
			fmt.Fprintf(os.Stderr, "  Removed %s\n", t.path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be removed", failed)
	}

	fmt.Fprintln(os.Stderr, "\nReset complete.")
	return nil
}
