package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemByIDQueryIsNotConstructed = errors.New(
	"GetMenuItemByIDQuery must be created via NewGetMenuItemByIDQuery constructor",
)

// GetMenuItemByIDQuery retrieves a single catalog item by its identifier.
type GetMenuItemByIDQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemByIDQuery creates a query for one catalog item.
func NewGetMenuItemByIDQuery(menuItemID kernel.UUID) (GetMenuItemByIDQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemByIDQuery{}, err
	}

	return GetMenuItemByIDQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemByIDQueryIsNotConstructed)
}

// MenuItemID returns the identifier of the item to fetch.
func (q GetMenuItemByIDQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}
