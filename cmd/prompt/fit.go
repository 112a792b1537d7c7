package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-prompter/internal/core"
	"github.com/vovakirdan/tui-prompter/internal/measure"
	"github.com/vovakirdan/tui-prompter/internal/prompter"
	"github.com/vovakirdan/tui-prompter/internal/storage"
)

var (
	flagFitFile   string
	flagFitWidth  float64
	flagFitHeight float64
	flagFitStatic bool
)

var fitCmd = &cobra.Command{
	Use:   "fit [script]",
	Short: "Compute the presentation font size for a script",
	Long: `Compute the largest font size at which a script fits a display box,
using real typeface metrics. Useful for sizing overlays outside the
terminal (e.g. a camera teleprompter rig).

The box is given in points. In scrolling mode only the height matters;
with --static the script must also fit the width, wrapped.

Examples:
  prompt fit intro --width 1280 --height 720
  prompt fit --file ./talk.txt --width 800 --height 300 --static`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFit,
}

func init() {
	fitCmd.Flags().StringVar(&flagFitFile, "file", "", "Read the script from a text file instead of the database")
	fitCmd.Flags().Float64Var(&flagFitWidth, "width", 1280, "Box width in points")
	fitCmd.Flags().Float64Var(&flagFitHeight, "height", 720, "Box height in points")
	fitCmd.Flags().BoolVar(&flagFitStatic, "static", false, "Size for a static wrapped block instead of a scrolling line")
}

func runFit(cmd *cobra.Command, args []string) {
	if len(args) == 0 && flagFitFile == "" {
		fmt.Fprintln(os.Stderr, "Error: give a script name or --file <path>")
		os.Exit(1)
	}

	var text string
	if flagFitFile != "" {
		data, err := os.ReadFile(flagFitFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		text = strings.TrimRight(string(data), "\n")
	} else {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scripts database: %v\n", err)
			os.Exit(1)
		}
		script, err := store.GetScript(args[0])
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown script %q\n", args[0])
			os.Exit(1)
		}
		text = script.Body
	}

	oracle, err := measure.NewFaceMeasurer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading typeface metrics: %v\n", err)
		os.Exit(1)
	}

	solver := prompter.NewSolver(oracle, prompter.PresentationSolverConfig())
	box := core.NewSize(flagFitWidth, flagFitHeight)
	size := solver.Solve(text, box, !flagFitStatic)

	mode := "scrolling"
	if flagFitStatic {
		mode = "static"
	}
	fmt.Printf("%.1f pt (%s, %.0fx%.0f box)\n", size, mode, flagFitWidth, flagFitHeight)
}
