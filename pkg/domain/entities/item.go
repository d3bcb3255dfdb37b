package entities

import "fmt"

// SKU represents a unique stocked item identifier
type SKU string

// ItemCostProfile holds the cost parameters that drive lot sizing for an item
type ItemCostProfile struct {
	SKU           SKU
	Description   string
	AnnualDemand  float64
	OrderCost     float64
	HoldingCost   float64
	UnitCost      float64
	UnitOfMeasure string
}

// NewItemCostProfile creates a validated ItemCostProfile
func NewItemCostProfile(
	sku SKU,
	description string,
	annualDemand, orderCost, holdingCost, unitCost float64,
	unitOfMeasure string,
) (*ItemCostProfile, error) {
	if string(sku) == "" {
		return nil, fmt.Errorf("sku cannot be empty")
	}
	if description == "" {
		return nil, fmt.Errorf("description cannot be empty")
	}
	if annualDemand <= 0 {
		return nil, fmt.Errorf("annual demand must be positive, got %g", annualDemand)
	}
	if orderCost <= 0 {
		return nil, fmt.Errorf("order cost must be positive, got %g", orderCost)
	}
	if holdingCost <= 0 {
		return nil, fmt.Errorf("holding cost must be positive, got %g", holdingCost)
	}
	if unitCost < 0 {
		return nil, fmt.Errorf("unit cost cannot be negative, got %g", unitCost)
	}
	if unitOfMeasure == "" {
		return nil, fmt.Errorf("unit of measure cannot be empty")
	}

	return &ItemCostProfile{
		SKU:           sku,
		Description:   description,
		AnnualDemand:  annualDemand,
		OrderCost:     orderCost,
		HoldingCost:   holdingCost,
		UnitCost:      unitCost,
		UnitOfMeasure: unitOfMeasure,
	}, nil
}
