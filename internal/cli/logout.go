package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	fitpair "github.com/fitpair/fitpair"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Destroy the current session, memory and storage both",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := context.Background()
		if _, err := client.Bootstrap(ctx); err != nil && !errors.Is(err, fitpair.ErrBootstrapRan) {
			return err
		}

		if err := client.Logout(ctx); err != nil {
			return fmt.Errorf("logout did not fully clear the stored session, retry: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
