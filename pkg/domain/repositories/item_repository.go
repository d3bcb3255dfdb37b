package repositories

import "github.com/vsinha/lotsize/pkg/domain/entities"

// ItemRepository provides access to item cost profiles
type ItemRepository interface {
	GetItem(sku entities.SKU) (*entities.ItemCostProfile, error)
	GetAllItems() ([]*entities.ItemCostProfile, error)
	LoadItems(items []*entities.ItemCostProfile) error
}
