// Package menurepo provides data transfer objects and mapping functions for
// catalog persistence.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting catalog items.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Category    string          `gorm:"index"`
	ImageURL    string
}

// TableName specifies the database table name for catalog items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		ImageURL:    item.ImageURL(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Description, dto.Price, dto.Category, dto.ImageURL)
}
