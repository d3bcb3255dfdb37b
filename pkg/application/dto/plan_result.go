package dto

import (
	"github.com/vsinha/lotsize/pkg/domain/entities"
)

// PlanResult contains the complete output of a lot-sizing run
type PlanResult struct {
	Policies       []entities.OrderPolicy                     `json:"policies"`
	PortfolioCosts entities.CostBreakdown                     `json:"portfolio_costs"`
	Curves         map[entities.SKU][]entities.CostCurvePoint `json:"curves,omitempty"`
}
