package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuItemsByCategoryQueryHandler lists catalog items in one category.
type GetMenuItemsByCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsByCategoryQueryHandler creates a handler for category listings.
func NewGetMenuItemsByCategoryQueryHandler(db *gorm.DB) GetMenuItemsByCategoryQueryHandler {
	return GetMenuItemsByCategoryQueryHandler{db: db}
}

// Handle returns the catalog items in the queried category, sorted by name.
// An empty slice, not an error, when the category has no items.
func (h GetMenuItemsByCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsByCategoryQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanMenuItems(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			image_url
		FROM menu_items
		WHERE category = ?
		ORDER BY name, id
	`, query.Category()))
}
