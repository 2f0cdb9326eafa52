package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fitpair/fitpair/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive app shell",
	Long: `Open the full-screen client. The screen you land on is decided by the
route guard: a restored student session opens the member area, a restored
coach session opens the coach area, anything else opens sign-in.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = tea.NewProgram(tui.New(client), tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
