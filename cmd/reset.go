/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the USB hub",
	Long: `Perform a full reset of the hub. This can recover a hub that is hung
or unresponsive without physically unplugging it.

The hub will re-enumerate after the reset, which may briefly change the COM
port it appears on. Requires the hub password.

Example:
  cusbc reset --password secret`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()

		if err := hub.Reset(context.Background()); err != nil {
			reportPasswordGatedError("resetting hub", err)
		}

		fmt.Println("Hub reset successfully")
		fmt.Println("The hub will re-enumerate (COM port may change)")
		fmt.Println("\nUse 'cusbc list --table' to see the updated hub list")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
