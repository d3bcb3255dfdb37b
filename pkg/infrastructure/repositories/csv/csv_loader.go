package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/lotsize/pkg/domain/entities"
)

// Loader handles loading lot-sizing data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadItemProfiles loads item cost profiles from a CSV file
func (l *Loader) LoadItemProfiles(filename string) ([]*entities.ItemCostProfile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read items CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("items CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"sku", "description", "annual_demand", "order_cost", "holding_cost", "unit_cost", "unit_of_measure"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("items CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var profiles []*entities.ItemCostProfile
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("items CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		profile, err := parseItemProfile(record)
		if err != nil {
			return nil, fmt.Errorf("items CSV row %d: %w", i+2, err)
		}

		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseItemProfile(record []string) (*entities.ItemCostProfile, error) {
	sku := entities.SKU(strings.TrimSpace(record[0]))
	description := strings.TrimSpace(record[1])

	annualDemand, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid annual_demand: %s", record[2])
	}

	orderCost, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid order_cost: %s", record[3])
	}

	holdingCost, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid holding_cost: %s", record[4])
	}

	unitCost, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid unit_cost: %s", record[5])
	}

	unitOfMeasure := strings.TrimSpace(record[6])

	return entities.NewItemCostProfile(sku, description, annualDemand, orderCost, holdingCost, unitCost, unitOfMeasure)
}
