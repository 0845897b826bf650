package main

import (
	"fmt"
	"os"

	"github.com/mvenner/gocpacs/pkg/cpacs"
	"github.com/spf13/cobra"
)

var airfoilsOutDir string

var airfoilsCmd = &cobra.Command{
	Use:   "airfoils [file]",
	Short: "Extract airfoil coordinate files from a CPACS file",
	Long:  "Write one coordinate file per airfoil profile declared at the aircraft level. Does not require geometry kernel support.",
	Args:  cobra.ExactArgs(1),
	Run:   runAirfoils,
}

func init() {
	airfoilsCmd.Flags().StringVarP(&airfoilsOutDir, "output", "o", ".", "output directory for airfoil files")
	rootCmd.AddCommand(airfoilsCmd)
}

func runAirfoils(cmd *cobra.Command, args []string) {
	doc, err := cpacs.OpenDocument(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CPACS file: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	if err := os.MkdirAll(airfoilsOutDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	if err := cpacs.WriteAirfoilFiles(doc, airfoilsOutDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting airfoils: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Airfoil files written to %s\n", airfoilsOutDir)
}
