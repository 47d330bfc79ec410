/*
Copyright © 2025 shanedertrain
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/shanedertrain/cusbc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cusbc",
	Short: "Control USB hub port power through the vendor CUSBC tool",
	Long: `cusbc controls the power state of downstream USB ports on hubs that
speak the vendor CUSBC serial protocol.

All commands shell out to the vendor CUSBC executable, which must be
installed separately. The hub's COM port is discovered automatically when
not configured; operations that write to flash or reset the hub require the
hub password.

Configuration is read from flags, CUSBC_* environment variables and
$HOME/.cusbc.yaml, in that order of precedence.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cusbc.yaml)")
	rootCmd.PersistentFlags().StringP("port", "p", "", "COM port of the hub (discovered automatically when empty)")
	rootCmd.PersistentFlags().String("password", "", "hub access password")
	rootCmd.PersistentFlags().String("executable", cusbc.DefaultExecutable, "path to the vendor CUSBC executable")
	rootCmd.PersistentFlags().Duration("timeout", cusbc.DefaultTimeout, "per-invocation timeout (0 disables)")

	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	viper.BindPFlag("executable", rootCmd.PersistentFlags().Lookup("executable"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".cusbc" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cusbc")
	}

	viper.SetEnvPrefix("cusbc")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newHub builds a hub session from the resolved configuration
func newHub() (*cusbc.Hub, error) {
	opts := []cusbc.Option{
		cusbc.WithExecutable(viper.GetString("executable")),
		cusbc.WithTimeout(viper.GetDuration("timeout")),
	}
	if port := viper.GetString("port"); port != "" {
		opts = append(opts, cusbc.WithPort(port))
	}
	if password := viper.GetString("password"); password != "" {
		opts = append(opts, cusbc.WithPassword(password))
	}
	return cusbc.New(opts...)
}

// mustHub exits with a helpful message when the session cannot be built
func mustHub() *cusbc.Hub {
	hub, err := newHub()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return hub
}

// stateFormat maps the shared --hex flag to a wire format
func stateFormat(hex bool) cusbc.Format {
	if hex {
		return cusbc.FormatHex
	}
	return cusbc.FormatBitmapped
}
