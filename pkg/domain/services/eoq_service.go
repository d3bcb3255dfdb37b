package services

import (
	"fmt"
	"math"

	"github.com/vsinha/lotsize/pkg/domain/entities"
)

// DaysPerYear is the planning horizon used to convert order frequency to an interval
const DaysPerYear = 365.0

// EconomicOrderQuantity computes the order quantity that minimizes combined
// ordering and holding cost: sqrt(2 * annualDemand * orderCost / holdingCost).
// All three inputs must be positive.
func EconomicOrderQuantity(annualDemand, orderCost, holdingCost float64) (float64, error) {
	if annualDemand <= 0 {
		return 0, fmt.Errorf("annual demand must be positive, got %g", annualDemand)
	}
	if orderCost <= 0 {
		return 0, fmt.Errorf("order cost must be positive, got %g", orderCost)
	}
	if holdingCost <= 0 {
		return 0, fmt.Errorf("holding cost must be positive, got %g", holdingCost)
	}

	return math.Sqrt((2 * annualDemand * orderCost) / holdingCost), nil
}

// TotalAnnualCost computes the total annual cost of ordering in lots of orderQty:
// (annualDemand/orderQty)*orderCost + (orderQty/2)*holdingCost + unitCost*annualDemand.
func TotalAnnualCost(orderQty, annualDemand, orderCost, holdingCost, unitCost float64) (float64, error) {
	breakdown, err := CostBreakdownAt(orderQty, annualDemand, orderCost, holdingCost, unitCost)
	if err != nil {
		return 0, err
	}
	return breakdown.TotalCost, nil
}

// CostBreakdownAt evaluates the annual cost components at a candidate order quantity
func CostBreakdownAt(orderQty, annualDemand, orderCost, holdingCost, unitCost float64) (entities.CostBreakdown, error) {
	if orderQty <= 0 {
		return entities.CostBreakdown{}, fmt.Errorf("order quantity must be positive, got %g", orderQty)
	}
	if annualDemand <= 0 {
		return entities.CostBreakdown{}, fmt.Errorf("annual demand must be positive, got %g", annualDemand)
	}
	if orderCost <= 0 {
		return entities.CostBreakdown{}, fmt.Errorf("order cost must be positive, got %g", orderCost)
	}
	if holdingCost <= 0 {
		return entities.CostBreakdown{}, fmt.Errorf("holding cost must be positive, got %g", holdingCost)
	}
	if unitCost < 0 {
		return entities.CostBreakdown{}, fmt.Errorf("unit cost cannot be negative, got %g", unitCost)
	}

	ordering := (annualDemand / orderQty) * orderCost
	holding := (orderQty / 2) * holdingCost
	purchase := unitCost * annualDemand

	return entities.CostBreakdown{
		OrderingCost: ordering,
		HoldingCost:  holding,
		PurchaseCost: purchase,
		TotalCost:    ordering + holding + purchase,
	}, nil
}

// PolicyFor computes the full recommended order policy for an item cost profile
func PolicyFor(profile *entities.ItemCostProfile) (*entities.OrderPolicy, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile cannot be nil")
	}

	eoq, err := EconomicOrderQuantity(profile.AnnualDemand, profile.OrderCost, profile.HoldingCost)
	if err != nil {
		return nil, err
	}

	costs, err := CostBreakdownAt(eoq, profile.AnnualDemand, profile.OrderCost, profile.HoldingCost, profile.UnitCost)
	if err != nil {
		return nil, err
	}

	ordersPerYear := profile.AnnualDemand / eoq

	return &entities.OrderPolicy{
		SKU:               profile.SKU,
		OrderQuantity:     eoq,
		OrdersPerYear:     ordersPerYear,
		OrderIntervalDays: DaysPerYear / ordersPerYear,
		Costs:             costs,
	}, nil
}
