/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// defaultsCmd represents the defaults command
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Restore the hub to factory default settings",
	Long: `Restore the hub's factory default settings, discarding any saved
power-on port states and configuration.

Requires the hub password.

Example:
  cusbc defaults --password secret`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()

		if err := hub.RestoreFactoryDefaults(context.Background()); err != nil {
			reportPasswordGatedError("restoring factory defaults", err)
		}

		fmt.Println("Hub restored to factory defaults")
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
