package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mvenner/gocpacs/internal/settings"
	"github.com/mvenner/gocpacs/pkg/analysis"
	"github.com/mvenner/gocpacs/pkg/cpacs"
	"github.com/mvenner/gocpacs/pkg/model"
	"github.com/mvenner/gocpacs/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	convertOutDir  string
	convertProject string
	convertWatch   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a CPACS file into the native aircraft model",
	Long: `Extract the full aircraft model: wings, canonical segment vertices,
airfoil references and reference values. Requires geometry kernel support;
without a registered kernel provider the conversion fails.

Instead of a file argument, --project selects a project directory whose
settings determine the CPACS file and the airfoil output directory.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutDir, "output", "o", "airfoils", "output directory for airfoil files")
	convertCmd.Flags().StringVarP(&convertProject, "project", "p", "", "project directory (overrides file argument and output)")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "re-run the conversion when the source file changes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) {
	var file, airfoilDir string

	switch {
	case convertProject != "":
		project, err := settings.LoadProject(convertProject)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
			os.Exit(1)
		}
		if project.Settings.Aircraft == "" {
			fmt.Fprintln(os.Stderr, "Error: project settings do not name an aircraft file")
			os.Exit(1)
		}
		file = project.AircraftFile()
		airfoilDir = project.AirfoilsDir()

	case len(args) == 1:
		file = args[0]
		airfoilDir = convertOutDir

	default:
		fmt.Fprintln(os.Stderr, "Error: a CPACS file or --project is required")
		os.Exit(1)
	}

	if err := os.MkdirAll(airfoilDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	loader := cpacs.NewLoader(airfoilDir, cpacs.DefaultKernel())
	if err := convertOnce(loader, file); err != nil {
		fmt.Fprintf(os.Stderr, "Error converting CPACS file: %v\n", err)
		os.Exit(1)
	}

	if convertWatch {
		fw, err := watcher.New(500 * time.Millisecond)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
			os.Exit(1)
		}
		defer fw.Close()

		err = fw.Watch(file, func() {
			fmt.Printf("\nSource changed, reconverting %s...\n", file)
			if err := convertOnce(loader, file); err != nil {
				fmt.Fprintf(os.Stderr, "Error converting CPACS file: %v\n", err)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", file, err)
			os.Exit(1)
		}

		fmt.Printf("Watching %s, press Ctrl+C to stop\n", file)
		select {}
	}
}

func convertOnce(loader *cpacs.Loader, file string) error {
	aircraft := model.NewAircraft()
	if err := loader.Load(aircraft, file); err != nil {
		return err
	}

	result := analysis.MeasureAircraft(aircraft)

	fmt.Printf("Aircraft: %s\n", aircraft.UID)
	fmt.Printf("Wings: %d, segments: %d\n", aircraft.WingCount(), result.SegmentCount)
	for _, wing := range result.Wings {
		fmt.Printf("  %s: %d segments, planform area %.6f, span %.6f, symmetry %s\n",
			wing.UID, wing.SegmentCount, wing.PlanformArea, wing.Span, wing.Symmetry)
	}
	fmt.Printf("Bounding box: %s to %s\n",
		analysis.FormatVector(result.BoundingBox.Min),
		analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("Reference area: %g, span: %g, chord: %g\n",
		aircraft.Refs.Area, aircraft.Refs.Span, aircraft.Refs.Chord)
	return nil
}
