package services

import (
	"fmt"

	"github.com/vsinha/lotsize/pkg/domain/entities"
)

// CurveRange specifies the quantity sweep used to sample a cost curve
type CurveRange struct {
	MinQty float64
	MaxQty float64
	Points int
}

// DefaultCurvePoints is the sample count used when the caller does not specify one
const DefaultCurvePoints = 50

// DefaultCurveRange brackets an order quantity so the sweep shows the cost
// minimum in context rather than one tail of the curve
func DefaultCurveRange(orderQty float64, points int) CurveRange {
	if points <= 0 {
		points = DefaultCurvePoints
	}
	return CurveRange{
		MinQty: orderQty / 4,
		MaxQty: orderQty * 2.5,
		Points: points,
	}
}

// CostCurve samples the annual cost breakdown across a range of candidate
// order quantities for the given item
func CostCurve(profile *entities.ItemCostProfile, r CurveRange) ([]entities.CostCurvePoint, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile cannot be nil")
	}
	if r.MinQty <= 0 {
		return nil, fmt.Errorf("minimum quantity must be positive, got %g", r.MinQty)
	}
	if r.MaxQty <= r.MinQty {
		return nil, fmt.Errorf("maximum quantity (%g) must exceed minimum quantity (%g)", r.MaxQty, r.MinQty)
	}
	if r.Points < 2 {
		return nil, fmt.Errorf("curve requires at least 2 points, got %d", r.Points)
	}

	step := (r.MaxQty - r.MinQty) / float64(r.Points-1)
	points := make([]entities.CostCurvePoint, 0, r.Points)

	for i := 0; i < r.Points; i++ {
		qty := r.MinQty + step*float64(i)
		costs, err := CostBreakdownAt(qty, profile.AnnualDemand, profile.OrderCost, profile.HoldingCost, profile.UnitCost)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate cost at quantity %g: %w", qty, err)
		}
		points = append(points, entities.CostCurvePoint{Quantity: qty, Costs: costs})
	}

	return points, nil
}
