/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/shanedertrain/cusbc"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected USB hubs",
	Long: `List all USB hubs the vendor tool can see, with port count, firmware
version and current port states.

Examples:
  cusbc list
  cusbc list --table`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()

		hubs, err := hub.QueryHubs(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing hubs: %v\n", err)
			os.Exit(1)
		}

		if len(hubs) == 0 {
			fmt.Println("No USB hubs found")
			return
		}

		tableFormat, _ := cmd.Flags().GetBool("table")
		if tableFormat {
			renderHubTable(hubs)
		} else {
			renderHubsSimple(hubs)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// renderHubTable renders the hub list in a styled static table format
func renderHubTable(hubs []cusbc.HubInfo) {
	fmt.Printf("Found %d USB hub(s):\n\n", len(hubs))

	portWidth := 10
	countWidth := 8
	fwWidth := 16
	statesWidth := 34

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingBottom(1)

	cellStyle := lipgloss.NewStyle().
		PaddingRight(2)

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		portWidth, "Port",
		countWidth, "Ports",
		fwWidth, "Firmware",
		statesWidth, "States (port 1 first)")
	fmt.Println(headerStyle.Render(header))

	for _, info := range hubs {
		row := fmt.Sprintf("%-*s %-*d %-*s %-*s",
			portWidth, info.Port,
			countWidth, info.NumPorts,
			fwWidth, info.FirmwareVersion,
			statesWidth, formatStates(info.PortStates))
		fmt.Println(cellStyle.Render(row))
	}
}

// renderHubsSimple renders the hub list in simple text format
func renderHubsSimple(hubs []cusbc.HubInfo) {
	for _, info := range hubs {
		fmt.Printf("%s: %d ports, firmware %s, states %s\n",
			info.Port, info.NumPorts, info.FirmwareVersion, formatStates(info.PortStates))
	}
}

// formatStates renders a state vector in logical order, port 1 first
func formatStates(states cusbc.PortStates) string {
	out := make([]byte, len(states))
	for i, on := range states {
		if on {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
