package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllMenuItemsQueryHandler lists the catalog from the database.
type GetAllMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenuItemsQueryHandler creates a handler for catalog listings.
func NewGetAllMenuItemsQueryHandler(db *gorm.DB) GetAllMenuItemsQueryHandler {
	return GetAllMenuItemsQueryHandler{db: db}
}

// Handle returns every catalog item sorted by name.
func (h GetAllMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuItemsQuery,
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
		ORDER BY name, id
	`))
}
