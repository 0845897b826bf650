package main

import (
	"fmt"
	"os"

	"github.com/mvenner/gocpacs/internal/settings"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a new project directory",
	Long:  "Create the project directory layout (aircraft/, airfoils/, _results/, _plots/) and a default settings file.",
	Args:  cobra.ExactArgs(1),
	Run:   runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	project, err := settings.LoadProject(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
		os.Exit(1)
	}

	if err := project.MakeDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating project directories: %v\n", err)
		os.Exit(1)
	}
	if err := project.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing settings: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Project initialized in %s\n", project.Root)
}
