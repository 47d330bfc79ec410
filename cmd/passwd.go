/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// passwdCmd represents the passwd command
var passwdCmd = &cobra.Command{
	Use:   "passwd <new-password>",
	Short: "Change the hub password",
	Long: `Change the hub's access password. The current password must be
configured; the new password takes effect immediately.

Example:
  cusbc passwd newsecret --password oldsecret`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()

		if err := hub.ChangePassword(context.Background(), args[0]); err != nil {
			reportPasswordGatedError("changing password", err)
		}

		fmt.Println("Hub password changed")
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)
}
