package queries

import (
	"context"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMenuItemByIDQueryHandler fetches one catalog item.
type GetMenuItemByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemByIDQueryHandler creates a handler for single-item lookups.
func NewGetMenuItemByIDQueryHandler(db *gorm.DB) GetMenuItemByIDQueryHandler {
	return GetMenuItemByIDQueryHandler{db: db}
}

// Handle returns the item or an ObjectNotFoundError when no row matches.
func (h GetMenuItemByIDQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemByIDQuery,
) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	items, err := scanMenuItems(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			image_url
		FROM menu_items
		WHERE id = ?
	`, query.MenuItemID().Bytes()))
	if err != nil {
		return MenuItemResponse{}, err
	}

	if len(items) == 0 {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItem", query.MenuItemID().String())
	}

	return items[0], nil
}
