package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/lotsize/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing items.csv",
		)
		itemsFile   = flag.String("items", "", "Path to items CSV file")
		outputDir   = flag.String("output", "", "Output directory for results (optional)")
		format      = flag.String("format", "text", "Output format: text, json, csv")
		sweep       = flag.Bool("sweep", false, "Sample the annual cost curve around each policy")
		sweepPoints = flag.Int("sweep-points", 50, "Number of curve samples per item")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioDir: *scenarioDir,
		ItemsFile:   *itemsFile,
		OutputDir:   *outputDir,
		Format:      *format,
		Sweep:       *sweep,
		SweepPoints: *sweepPoints,
		Verbose:     *verbose,
		Help:        *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
