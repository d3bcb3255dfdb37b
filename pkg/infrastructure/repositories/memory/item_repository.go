package memory

import (
	"fmt"
	"strings"

	"github.com/vsinha/lotsize/pkg/domain/entities"
	"github.com/vsinha/lotsize/pkg/domain/repositories"
)

// ItemRepository provides in-memory item cost profile storage
type ItemRepository struct {
	items    []entities.ItemCostProfile
	itemsMap map[entities.SKU]int
}

// NewItemRepository creates a new in-memory item repository
func NewItemRepository(expectedItems int) *ItemRepository {
	return &ItemRepository{
		items:    make([]entities.ItemCostProfile, 0, expectedItems),
		itemsMap: make(map[entities.SKU]int, expectedItems),
	}
}

// Verify interface compliance
var _ repositories.ItemRepository = (*ItemRepository)(nil)

// LoadItems loads item cost profiles into the repository
func (r *ItemRepository) LoadItems(items []*entities.ItemCostProfile) error {
	var duplicates []string
	for _, item := range items {
		if _, exists := r.itemsMap[item.SKU]; exists {
			duplicates = append(duplicates, string(item.SKU))
			continue
		}
		r.addItem(*item)
	}

	if len(duplicates) > 0 {
		return fmt.Errorf("duplicate skus found: %s", strings.Join(duplicates, ", "))
	}
	return nil
}

// SaveItem saves a single item cost profile to the repository
func (r *ItemRepository) SaveItem(item *entities.ItemCostProfile) error {
	if _, exists := r.itemsMap[item.SKU]; exists {
		return fmt.Errorf("duplicate sku: %s", item.SKU)
	}
	r.addItem(*item)
	return nil
}

// GetItem returns the cost profile for a sku
func (r *ItemRepository) GetItem(sku entities.SKU) (*entities.ItemCostProfile, error) {
	index, exists := r.itemsMap[sku]
	if !exists {
		return nil, fmt.Errorf("item not found: %s", sku)
	}
	return &r.items[index], nil
}

// GetAllItems returns all item cost profiles in insertion order
func (r *ItemRepository) GetAllItems() ([]*entities.ItemCostProfile, error) {
	items := make([]*entities.ItemCostProfile, 0, len(r.items))
	for i := range r.items {
		items = append(items, &r.items[i])
	}
	return items, nil
}

func (r *ItemRepository) addItem(item entities.ItemCostProfile) {
	r.itemsMap[item.SKU] = len(r.items)
	r.items = append(r.items, item)
}
