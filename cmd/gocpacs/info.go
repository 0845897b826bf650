package main

import (
	"fmt"
	"os"

	"github.com/mvenner/gocpacs/pkg/cpacs"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a CPACS file",
	Long:  "Show document-level information: aircraft name, wings, segments, airfoil profiles and reference values. Does not require geometry kernel support.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	doc, err := cpacs.OpenDocument(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CPACS file: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	info, err := cpacs.Inspect(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error inspecting CPACS file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("CPACS File Information")
	fmt.Println("======================")
	fmt.Printf("Name: %s\n", info.Name)
	fmt.Printf("File: %s\n\n", args[0])

	fmt.Printf("Wings: %d\n", len(info.Wings))
	for _, wing := range info.Wings {
		fmt.Printf("  %s: %d segments\n", wing.UID, wing.SegmentCount)
	}

	fmt.Printf("\nAirfoil profiles: %d\n", len(info.Airfoils))
	for _, name := range info.Airfoils {
		fmt.Printf("  %s\n", name)
	}

	if info.HasReference {
		fmt.Println("\nReference values:")
		fmt.Printf("  Center: (%g, %g, %g)\n", info.RefPoint.X, info.RefPoint.Y, info.RefPoint.Z)
		fmt.Printf("  Area:   %g\n", info.RefArea)
		fmt.Printf("  Length: %g\n", info.RefLength)
	}
}
