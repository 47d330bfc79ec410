/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shanedertrain/cusbc"
	"github.com/spf13/cobra"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save current port states as the hub's power-on defaults",
	Long: `Store the hub's current port power states to flash memory so they are
restored after the hub loses power.

Requires the hub password (--password, CUSBC_PASSWORD or the config file).

Example:
  cusbc save --password secret`,
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()

		if err := hub.SaveInitialStates(context.Background()); err != nil {
			reportPasswordGatedError("saving initial states", err)
		}

		fmt.Println("Current port states saved as power-on defaults")
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

// reportPasswordGatedError prints a helpful message and exits
func reportPasswordGatedError(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	if errors.Is(err, cusbc.ErrMissingPassword) {
		fmt.Fprintln(os.Stderr, "Set the hub password with --password or CUSBC_PASSWORD")
	}
	os.Exit(1)
}
