/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shanedertrain/cusbc/internal/tui/models"
)

var monitorInterval time.Duration

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Interactively monitor and toggle port power states",
	Long: `Open an interactive view of the hub's port power states.

The view polls the hub on a fixed interval. Toggle individual ports with
space, turn everything on or off with 'a' and 'n', then press enter to
apply the buffered changes. Polling pauses while changes are pending so
they are not overwritten.

Examples:
  cusbc monitor
  cusbc monitor --interval 5s`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()

		model := models.NewHubModel(hub, monitorInterval)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running monitor: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().DurationVarP(&monitorInterval, "interval", "i", 2*time.Second, "Polling interval")
}
