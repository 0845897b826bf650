package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mvenner/gocpacs/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gocpacs",
	Short: "A CLI tool for converting CPACS aircraft definitions",
	Long: `gocpacs converts CPACS aircraft definitions into the native model
used by a panel-based aerodynamic solver. It extracts wings, segment corner
points in a consistent vertex order, airfoil coordinate files and the
aircraft reference values.`,
	Version: version.GetFullVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		} else {
			slog.SetLogLoggerLevel(slog.LevelWarn)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
