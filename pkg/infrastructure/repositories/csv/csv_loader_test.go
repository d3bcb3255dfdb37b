package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeItemsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

func TestLoadItemProfiles_Success(t *testing.T) {
	path := writeItemsFile(t, `sku,description,annual_demand,order_cost,holding_cost,unit_cost,unit_of_measure
WIDGET_A,Widget Type A,1000,25,2,8,EA
GIZMO_C,Gizmo Type C,250,15,1.25,42,BOX
`)

	loader := NewLoader()
	profiles, err := loader.LoadItemProfiles(path)
	if err != nil {
		t.Fatalf("Failed to load item profiles: %v", err)
	}

	if len(profiles) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(profiles))
	}

	widget := profiles[0]
	if widget.SKU != "WIDGET_A" {
		t.Errorf("Expected sku WIDGET_A, got %s", widget.SKU)
	}
	if widget.AnnualDemand != 1000 {
		t.Errorf("Expected annual demand 1000, got %g", widget.AnnualDemand)
	}
	if widget.UnitCost != 8 {
		t.Errorf("Expected unit cost 8, got %g", widget.UnitCost)
	}

	gizmo := profiles[1]
	if gizmo.HoldingCost != 1.25 {
		t.Errorf("Expected holding cost 1.25, got %g", gizmo.HoldingCost)
	}
	if gizmo.UnitOfMeasure != "BOX" {
		t.Errorf("Expected unit of measure BOX, got %s", gizmo.UnitOfMeasure)
	}
}

func TestLoadItemProfiles_HeaderMismatch(t *testing.T) {
	path := writeItemsFile(t, `part_number,description,annual_demand,order_cost,holding_cost,unit_cost,unit_of_measure
WIDGET_A,Widget Type A,1000,25,2,8,EA
`)

	loader := NewLoader()
	_, err := loader.LoadItemProfiles(path)
	if err == nil {
		t.Fatal("Expected header mismatch error, got none")
	}
	if !strings.Contains(err.Error(), "header mismatch") {
		t.Errorf("Expected error message to contain 'header mismatch', got: %v", err)
	}
}

func TestLoadItemProfiles_HeaderOnly(t *testing.T) {
	path := writeItemsFile(t, `sku,description,annual_demand,order_cost,holding_cost,unit_cost,unit_of_measure
`)

	loader := NewLoader()
	_, err := loader.LoadItemProfiles(path)
	if err == nil {
		t.Fatal("Expected error for header-only file, got none")
	}
	if !strings.Contains(err.Error(), "at least one data row") {
		t.Errorf("Expected error message to contain 'at least one data row', got: %v", err)
	}
}

func TestLoadItemProfiles_InvalidNumber(t *testing.T) {
	path := writeItemsFile(t, `sku,description,annual_demand,order_cost,holding_cost,unit_cost,unit_of_measure
WIDGET_A,Widget Type A,1000,25,2,8,EA
GADGET_B,Gadget Type B,lots,40,3.5,12.5,EA
`)

	loader := NewLoader()
	_, err := loader.LoadItemProfiles(path)
	if err == nil {
		t.Fatal("Expected error for invalid number, got none")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("Expected error message to reference row 3, got: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid annual_demand") {
		t.Errorf("Expected error message to contain 'invalid annual_demand', got: %v", err)
	}
}

func TestLoadItemProfiles_InvalidProfile(t *testing.T) {
	path := writeItemsFile(t, `sku,description,annual_demand,order_cost,holding_cost,unit_cost,unit_of_measure
WIDGET_A,Widget Type A,1000,25,0,8,EA
`)

	loader := NewLoader()
	_, err := loader.LoadItemProfiles(path)
	if err == nil {
		t.Fatal("Expected error for zero holding cost, got none")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("Expected error message to reference row 2, got: %v", err)
	}
	if !strings.Contains(err.Error(), "holding cost must be positive") {
		t.Errorf("Expected error message to contain 'holding cost must be positive', got: %v", err)
	}
}

func TestLoadItemProfiles_MissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadItemProfiles(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file, got none")
	}
	if !strings.Contains(err.Error(), "failed to open items file") {
		t.Errorf("Expected error message to contain 'failed to open items file', got: %v", err)
	}
}
