/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shanedertrain/cusbc"
	"github.com/spf13/cobra"
)

var (
	setOnPorts  []string
	setOffPorts []string
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set [states]",
	Short: "Set the hub's port power states",
	Long: `Set the power state of the hub's downstream ports.

The states argument is one '0' or '1' per port in logical order, port 1
first: "1010" turns ports 1 and 3 on and ports 2 and 4 off.

Alternatively, --on and --off change individual ports while leaving the
rest untouched; the current states are read first and rewritten.

Examples:
  cusbc set 1010
  cusbc set --on 1,3 --off 2
  cusbc set 11110000 --hex`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(setOnPorts) == 0 && len(setOffPorts) == 0 && len(args) != 1 {
			return errors.New("requires either a states argument or --on/--off flags")
		}
		if (len(setOnPorts) > 0 || len(setOffPorts) > 0) && len(args) > 0 {
			return errors.New("cannot combine a states argument with --on/--off")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		hub := mustHub()
		ctx := context.Background()

		hexFormat, _ := cmd.Flags().GetBool("hex")
		format := stateFormat(hexFormat)

		var states cusbc.PortStates
		var err error
		if len(args) == 1 {
			states, err = parseStatesArg(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		} else {
			states, err = modifiedStates(ctx, hub)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		if err := hub.SetPortStates(ctx, states, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting port states: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Port states set to %s\n", formatStates(states))
	},
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().Bool("hex", false, "Send the packed hex wire format")
	setCmd.Flags().StringSliceVar(&setOnPorts, "on", nil, "Port numbers to turn on (comma-separated)")
	setCmd.Flags().StringSliceVar(&setOffPorts, "off", nil, "Port numbers to turn off (comma-separated)")
}

// parseStatesArg converts a logical-order bit string ("1010", port 1 first)
// into a state vector
func parseStatesArg(arg string) (cusbc.PortStates, error) {
	states := make(cusbc.PortStates, 0, len(arg))
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '0':
			states = append(states, false)
		case '1':
			states = append(states, true)
		default:
			return nil, fmt.Errorf("states must be '0' or '1' per port, got %q", arg[i])
		}
	}
	return states, nil
}

// modifiedStates reads the current states and applies the --on/--off lists
func modifiedStates(ctx context.Context, hub *cusbc.Hub) (cusbc.PortStates, error) {
	states, err := hub.PortStates(ctx, cusbc.FormatBitmapped)
	if err != nil {
		return nil, fmt.Errorf("reading current states: %w", err)
	}

	apply := func(ports []string, on bool) error {
		for _, p := range ports {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 1 {
				return fmt.Errorf("invalid port number %q", p)
			}
			if n > len(states) {
				return fmt.Errorf("port %d out of range, hub has %d ports", n, len(states))
			}
			states[n-1] = on
		}
		return nil
	}

	if err := apply(setOnPorts, true); err != nil {
		return nil, err
	}
	if err := apply(setOffPorts, false); err != nil {
		return nil, err
	}
	return states, nil
}
