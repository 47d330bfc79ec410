/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [port]",
	Short: "Display detailed information about a USB hub",
	Long: `Display detailed information about a single USB hub: port count,
firmware version and the power state of every downstream port.

When no port argument is given, the configured or automatically discovered
hub is queried.

Examples:
  cusbc info
  cusbc info COM3`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()
		ctx := context.Background()

		port := hub.Port()
		if len(args) == 1 {
			port = args[0]
		}
		if port == "" {
			discovered, err := hub.DiscoverPort(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error discovering hub: %v\n", err)
				os.Exit(1)
			}
			port = discovered
		}

		info, err := hub.QueryHubInfo(ctx, port)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting hub info: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Hub Information: %s\n\n", info.Port)
		fmt.Printf("  Ports:    %d\n", info.NumPorts)
		fmt.Printf("  Firmware: %s\n", info.FirmwareVersion)
		fmt.Println("\nPort States:")
		for i, on := range info.PortStates {
			fmt.Printf("  Port %-2d  %s\n", i+1, onOff(on))
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
