package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/vsinha/lotsize/pkg/application/dto"
	"github.com/vsinha/lotsize/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format     string
	OutputDir  string
	Verbose    bool
	PlanTime   time.Duration
	InputFiles map[string]string
}

// Generate creates output in the specified format
func Generate(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.PlanResult, config Config) error {
	fmt.Printf("📊 Lot Sizing Summary\n")
	fmt.Printf("=====================\n\n")

	fmt.Printf("Items Planned: %d\n", len(result.Policies))
	fmt.Printf("Plan Time: %v\n\n", config.PlanTime)

	if len(result.Policies) > 0 {
		fmt.Printf("📋 Order Policies:\n")
		fmt.Printf("%-15s %-12s %-12s %-14s %-14s\n",
			"SKU", "Order Qty", "Orders/Year", "Interval Days", "Annual Cost")
		fmt.Printf("%-15s %-12s %-12s %-14s %-14s\n",
			"---------------", "------------", "------------", "--------------", "--------------")

		for _, policy := range result.Policies {
			fmt.Printf("%-15s %-12.2f %-12.2f %-14.1f %-14s\n",
				policy.SKU,
				policy.OrderQuantity,
				policy.OrdersPerYear,
				policy.OrderIntervalDays,
				entities.Money(policy.Costs.TotalCost))
		}
		fmt.Println()

		fmt.Printf("💰 Portfolio Cost Breakdown:\n")
		fmt.Printf("  Ordering: %s\n", entities.Money(result.PortfolioCosts.OrderingCost))
		fmt.Printf("  Holding:  %s\n", entities.Money(result.PortfolioCosts.HoldingCost))
		fmt.Printf("  Purchase: %s\n", entities.Money(result.PortfolioCosts.PurchaseCost))
		fmt.Printf("  Total:    %s\n\n", entities.Money(result.PortfolioCosts.TotalCost))
	}

	if len(result.Curves) > 0 && config.Verbose {
		fmt.Printf("📈 Cost Curves: %d items sampled", len(result.Curves))
		for _, points := range result.Curves {
			fmt.Printf(" (%d points each)", len(points))
			break
		}
		fmt.Println()
		fmt.Println("  Use -format csv or -format json to export curve data")
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.PlanResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "lotsize_results.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}

	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	policiesFile := filepath.Join(config.OutputDir, "order_policies.csv")
	if err := writePoliciesCSV(result.Policies, policiesFile); err != nil {
		return fmt.Errorf("failed to write order policies CSV: %w", err)
	}

	var curvesFile string
	if len(result.Curves) > 0 {
		curvesFile = filepath.Join(config.OutputDir, "cost_curves.csv")
		if err := writeCurvesCSV(result.Curves, curvesFile); err != nil {
			return fmt.Errorf("failed to write cost curves CSV: %w", err)
		}
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to:\n")
		fmt.Printf("  Order Policies: %s\n", policiesFile)
		if curvesFile != "" {
			fmt.Printf("  Cost Curves: %s\n", curvesFile)
		}
	}

	return nil
}

func writePoliciesCSV(policies []entities.OrderPolicy, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"sku", "order_quantity", "orders_per_year", "order_interval_days",
		"ordering_cost", "holding_cost", "purchase_cost", "total_cost"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, policy := range policies {
		record := []string{
			string(policy.SKU),
			formatFloat(policy.OrderQuantity),
			formatFloat(policy.OrdersPerYear),
			formatFloat(policy.OrderIntervalDays),
			entities.Money(policy.Costs.OrderingCost),
			entities.Money(policy.Costs.HoldingCost),
			entities.Money(policy.Costs.PurchaseCost),
			entities.Money(policy.Costs.TotalCost),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for %s: %w", policy.SKU, err)
		}
	}

	return nil
}

func writeCurvesCSV(curves map[entities.SKU][]entities.CostCurvePoint, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"sku", "quantity", "ordering_cost", "holding_cost", "purchase_cost", "total_cost"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Stable row order across runs
	skus := make([]string, 0, len(curves))
	for sku := range curves {
		skus = append(skus, string(sku))
	}
	sort.Strings(skus)

	for _, sku := range skus {
		for _, point := range curves[entities.SKU(sku)] {
			record := []string{
				sku,
				formatFloat(point.Quantity),
				entities.Money(point.Costs.OrderingCost),
				entities.Money(point.Costs.HoldingCost),
				entities.Money(point.Costs.PurchaseCost),
				entities.Money(point.Costs.TotalCost),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write curve record for %s: %w", sku, err)
			}
		}
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
