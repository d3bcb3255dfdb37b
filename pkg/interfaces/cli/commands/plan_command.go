package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/lotsize/pkg/application/services"
	"github.com/vsinha/lotsize/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/lotsize/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/lotsize/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	ScenarioDir string
	ItemsFile   string
	OutputDir   string
	Format      string
	Sweep       bool
	SweepPoints int
	Verbose     bool
	Help        bool
}

// PlanCommand handles the main lot-sizing execution logic
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	// Validate inputs
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Determine input files
	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	if c.config.Verbose {
		c.printHeader(files)
	}

	// Load data from CSV files
	if c.config.Verbose {
		fmt.Println("📂 Loading item cost profiles...")
	}

	csvLoader := csv.NewLoader()

	profiles, err := csvLoader.LoadItemProfiles(files["Items"])
	if err != nil {
		return fmt.Errorf("error loading items: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Loaded %d item cost profiles\n\n", len(profiles))
	}

	// Create repository
	itemRepo := memory.NewItemRepository(len(profiles))
	if err := itemRepo.LoadItems(profiles); err != nil {
		return fmt.Errorf("failed to load items into repository: %w", err)
	}

	// Create planning service
	planningService := services.NewPlanningServiceWithConfig(services.PlannerConfig{
		SweepCurves: c.config.Sweep,
		SweepPoints: c.config.SweepPoints,
	})

	// Run lot sizing
	if c.config.Verbose {
		fmt.Println("🔄 Computing order policies...")
	}

	startTime := time.Now()
	result, err := planningService.PlanOrders(ctx, itemRepo)
	planTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error computing order policies: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Planning completed in %v\n\n", planTime)
	}

	// Generate output
	outputConfig := output.Config{
		Format:     c.config.Format,
		OutputDir:  c.config.OutputDir,
		Verbose:    c.config.Verbose,
		PlanTime:   planTime,
		InputFiles: files,
	}

	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Lot sizing complete!")
	}

	return nil
}

// validateInputs validates the command configuration
func (c *PlanCommand) validateInputs() error {
	if c.config.ScenarioDir == "" && c.config.ItemsFile == "" {
		return fmt.Errorf("must specify either -scenario directory or -items CSV file")
	}
	if c.config.Sweep && c.config.SweepPoints < 2 {
		return fmt.Errorf("sweep requires at least 2 points, got %d", c.config.SweepPoints)
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use
func (c *PlanCommand) resolveInputFiles() (map[string]string, error) {
	itemsPath := c.config.ItemsFile
	if c.config.ScenarioDir != "" {
		itemsPath = filepath.Join(c.config.ScenarioDir, "items.csv")
	}

	files := map[string]string{
		"Items": itemsPath,
	}

	// Validate files exist
	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	return files, nil
}

// printHeader prints the command header information
func (c *PlanCommand) printHeader(files map[string]string) {
	fmt.Printf("🚀 Lot Sizing CLI\n")
	fmt.Printf("Input files:\n")
	fmt.Printf("  Items: %s\n", files["Items"])
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	if c.config.Sweep {
		fmt.Printf("Cost curve sweep: %d points per item\n", c.config.SweepPoints)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Printf(`Lot Sizing CLI - Economic Order Quantity Planning

USAGE:
    lotsize -scenario <directory>          # Use scenario directory with items.csv
    lotsize -items <file>                  # Use an items CSV file directly

OPTIONS:
    -scenario <dir>     Path to scenario directory containing items.csv
    -items <file>       Path to items CSV file
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv (default: text)
    -sweep              Sample the annual cost curve around each policy
    -sweep-points <n>   Number of curve samples per item (default: 50)
    -verbose            Enable verbose output
    -help               Show this help message

CSV FILE FORMAT:

items.csv:
    sku,description,annual_demand,order_cost,holding_cost,unit_cost,unit_of_measure
    WIDGET_A,Widget Type A,1000,25,2,8,EA

EXAMPLES:
    # Plan a basic scenario
    lotsize -scenario examples/basic -verbose

    # Export policies and cost curves as CSV
    lotsize -items data/items.csv -sweep -format csv -output results/

    # Generate JSON output
    lotsize -scenario examples/basic -format json -output results/
`)
}
