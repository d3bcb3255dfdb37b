package main

import (
	"context"
	"fmt"

	"github.com/vsinha/lotsize/pkg/application/services"
	"github.com/vsinha/lotsize/pkg/domain/entities"
	domainservices "github.com/vsinha/lotsize/pkg/domain/services"
	"github.com/vsinha/lotsize/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Single-item calculation
	widget, err := entities.NewItemCostProfile(
		"WIDGET_A", "Widget Type A",
		1000, // annual demand
		25,   // order cost per order
		2,    // holding cost per unit per year
		8,    // unit cost
		"EA",
	)
	if err != nil {
		fmt.Printf("❌ Invalid profile: %v\n", err)
		return
	}

	policy, err := domainservices.PolicyFor(widget)
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	fmt.Println("📦 Widget Type A ordering policy:")
	fmt.Printf("  Economic Order Quantity: %.2f %s\n", policy.OrderQuantity, widget.UnitOfMeasure)
	fmt.Printf("  Orders per Year: %.2f\n", policy.OrdersPerYear)
	fmt.Printf("  Order Interval: %.1f days\n", policy.OrderIntervalDays)
	fmt.Printf("  Total Annual Cost: %s\n", entities.Money(policy.Costs.TotalCost))
	fmt.Println()

	// Portfolio planning across several items
	gadget, _ := entities.NewItemCostProfile("GADGET_B", "Gadget Type B", 5200, 40, 3.5, 12.5, "EA")
	gizmo, _ := entities.NewItemCostProfile("GIZMO_C", "Gizmo Type C", 250, 15, 1.25, 42, "BOX")

	itemRepo := memory.NewItemRepository(3)
	if err := itemRepo.LoadItems([]*entities.ItemCostProfile{widget, gadget, gizmo}); err != nil {
		fmt.Printf("❌ Failed to load items: %v\n", err)
		return
	}

	planner := services.NewPlanningServiceWithConfig(services.PlannerConfig{
		SweepCurves: true,
		SweepPoints: 25,
	})

	result, err := planner.PlanOrders(ctx, itemRepo)
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	fmt.Println("📊 Portfolio plan:")
	for _, p := range result.Policies {
		fmt.Printf("  %-10s order %8.2f units, %s per year\n",
			p.SKU, p.OrderQuantity, entities.Money(p.Costs.TotalCost))
	}
	fmt.Printf("  Portfolio total: %s\n", entities.Money(result.PortfolioCosts.TotalCost))
	fmt.Printf("  Cost curves sampled: %d items\n", len(result.Curves))

	fmt.Println("✅ Lot sizing complete!")
}
