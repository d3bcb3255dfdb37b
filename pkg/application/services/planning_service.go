package services

import (
	"context"
	"fmt"

	"github.com/vsinha/lotsize/pkg/application/dto"
	"github.com/vsinha/lotsize/pkg/domain/entities"
	"github.com/vsinha/lotsize/pkg/domain/repositories"
	domainservices "github.com/vsinha/lotsize/pkg/domain/services"
)

// PlannerConfig holds configuration for the planning service
type PlannerConfig struct {
	// SweepCurves enables cost curve sampling for every planned item
	SweepCurves bool
	// SweepPoints is the number of samples per curve (0 = default)
	SweepPoints int
}

// PlanningService computes order policies for a portfolio of items
type PlanningService struct {
	config PlannerConfig
}

// NewPlanningService creates a planning service with default configuration
func NewPlanningService() *PlanningService {
	return NewPlanningServiceWithConfig(PlannerConfig{})
}

// NewPlanningServiceWithConfig creates a planning service with custom configuration
func NewPlanningServiceWithConfig(config PlannerConfig) *PlanningService {
	return &PlanningService{config: config}
}

// PlanOrders computes an order policy for every item in the repository and
// aggregates the portfolio-level cost totals
func (s *PlanningService) PlanOrders(
	ctx context.Context,
	itemRepo repositories.ItemRepository,
) (*dto.PlanResult, error) {
	profiles, err := itemRepo.GetAllItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	result := &dto.PlanResult{
		Policies: make([]entities.OrderPolicy, 0, len(profiles)),
	}
	if s.config.SweepCurves {
		result.Curves = make(map[entities.SKU][]entities.CostCurvePoint, len(profiles))
	}

	for _, profile := range profiles {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("planning canceled: %w", err)
		}

		policy, err := domainservices.PolicyFor(profile)
		if err != nil {
			return nil, fmt.Errorf("failed to plan orders for %s: %w", profile.SKU, err)
		}
		result.Policies = append(result.Policies, *policy)

		result.PortfolioCosts.OrderingCost += policy.Costs.OrderingCost
		result.PortfolioCosts.HoldingCost += policy.Costs.HoldingCost
		result.PortfolioCosts.PurchaseCost += policy.Costs.PurchaseCost
		result.PortfolioCosts.TotalCost += policy.Costs.TotalCost

		if s.config.SweepCurves {
			curveRange := domainservices.DefaultCurveRange(policy.OrderQuantity, s.config.SweepPoints)
			curve, err := domainservices.CostCurve(profile, curveRange)
			if err != nil {
				return nil, fmt.Errorf("failed to sweep cost curve for %s: %w", profile.SKU, err)
			}
			result.Curves[profile.SKU] = curve
		}
	}

	return result, nil
}
