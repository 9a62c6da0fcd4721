package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored credential",
	Long: `Log out of the portal.

The stored bearer token and role are removed. Running logout while
already logged out is a no-op.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.sessions.Logout(); err != nil {
		return err
	}
	fmt.Printf("Logged out. Current view: %s\n", a.navigator.Current())
	return nil
}
