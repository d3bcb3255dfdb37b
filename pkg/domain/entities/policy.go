package entities

import (
	"github.com/shopspring/decimal"
)

// CostBreakdown decomposes the total annual cost of an ordering policy
type CostBreakdown struct {
	OrderingCost float64 `json:"ordering_cost"`
	HoldingCost  float64 `json:"holding_cost"`
	PurchaseCost float64 `json:"purchase_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// Rounded returns the breakdown with every figure rounded to cents
func (c CostBreakdown) Rounded() CostBreakdown {
	return CostBreakdown{
		OrderingCost: roundMoney(c.OrderingCost),
		HoldingCost:  roundMoney(c.HoldingCost),
		PurchaseCost: roundMoney(c.PurchaseCost),
		TotalCost:    roundMoney(c.TotalCost),
	}
}

// OrderPolicy is the recommended ordering policy for a single item
type OrderPolicy struct {
	SKU               SKU           `json:"sku"`
	OrderQuantity     float64       `json:"order_quantity"`
	OrdersPerYear     float64       `json:"orders_per_year"`
	OrderIntervalDays float64       `json:"order_interval_days"`
	Costs             CostBreakdown `json:"costs"`
}

// CostCurvePoint is one sample of the annual cost evaluated at a candidate order quantity
type CostCurvePoint struct {
	Quantity float64       `json:"quantity"`
	Costs    CostBreakdown `json:"costs"`
}

// Money renders a cost figure as a fixed two-decimal currency string
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func roundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
