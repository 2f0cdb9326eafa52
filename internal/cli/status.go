package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	fitpair "github.com/fitpair/fitpair"
	"github.com/fitpair/fitpair/metrics/export/prometheus"
)

var statusMetrics bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the restored session and where it routes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		snap, err := client.Bootstrap(context.Background())
		if err != nil && !errors.Is(err, fitpair.ErrBootstrapRan) {
			return err
		}

		out := cmd.OutOrStdout()
		if snap.Authenticated() {
			fmt.Fprintf(out, "Signed in:  yes\n")
			fmt.Fprintf(out, "Name:       %s\n", orDash(snap.Name))
			fmt.Fprintf(out, "Email:      %s\n", orDash(snap.Email))
			fmt.Fprintf(out, "Role:       %s\n", roleLabel(snap.Role))
		} else {
			fmt.Fprintf(out, "Signed in:  no\n")
		}
		fmt.Fprintf(out, "Routes to:  %s\n", areaLabel(fitpair.Decide(snap)))
		fmt.Fprintf(out, "Device:     %s\n", orDash(client.DeviceID()))

		if statusMetrics {
			fmt.Fprintln(out)
			fmt.Fprint(out, prometheus.NewExporter(client).Render())
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	statusCmd.Flags().BoolVar(&statusMetrics, "metrics", false, "Also print session counters in Prometheus text format")
	rootCmd.AddCommand(statusCmd)
}
