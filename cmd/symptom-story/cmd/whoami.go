package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Restore the session from the stored credential and print who is
logged in. A stale or rejected token is cleared silently and reported as
logged out.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.sessions.Restore(cmd.Context())

	sess := a.sessions.Current()
	if !sess.Authenticated() {
		fmt.Println("Not logged in.")
		fmt.Printf("Current view: %s\n", a.navigator.Current())
		return nil
	}

	fmt.Printf("Logged in as %s\n", sess.User.DisplayName())
	fmt.Printf("  Email: %s\n", sess.User.Email)
	fmt.Printf("  Role:  %s\n", sess.Role)
	fmt.Printf("Current view: %s\n", a.navigator.Current())
	return nil
}
