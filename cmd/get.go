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

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Read the hub's current port power states",
	Long: `Read the current power state of every downstream port.

By default the bit-mapped wire format is requested from the tool; --hex
requests the packed hex format instead. The hex format decodes in whole
bytes, so hubs whose port count is not a multiple of eight report trailing
padding ports. With --raw the wire-format string is printed instead of
per-port states.

Examples:
  cusbc get
  cusbc get --hex
  cusbc get --raw`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()

		hexFormat, _ := cmd.Flags().GetBool("hex")
		raw, _ := cmd.Flags().GetBool("raw")
		format := stateFormat(hexFormat)

		states, err := hub.PortStates(context.Background(), format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading port states: %v\n", err)
			os.Exit(1)
		}

		if raw {
			encoded, err := states.Encode(format)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(encoded)
			return
		}

		for i, on := range states {
			fmt.Printf("Port %-2d  %s\n", i+1, onOff(on))
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().Bool("hex", false, "Use the packed hex wire format")
	getCmd.Flags().Bool("raw", false, "Print the wire string instead of per-port states")
}
