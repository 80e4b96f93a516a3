package queries

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemsByCategoryQueryIsNotConstructed = errors.New(
	"GetMenuItemsByCategoryQuery must be created via NewGetMenuItemsByCategoryQuery constructor",
)

// GetMenuItemsByCategoryQuery retrieves catalog items in an exact category.
type GetMenuItemsByCategoryQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetMenuItemsByCategoryQuery creates a query filtering the catalog by
// category. A blank category is rejected.
func NewGetMenuItemsByCategoryQuery(category string) (GetMenuItemsByCategoryQuery, error) {
	if strings.TrimSpace(category) == "" {
		return GetMenuItemsByCategoryQuery{}, errs.NewValueIsRequiredError("category")
	}

	return GetMenuItemsByCategoryQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsByCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsByCategoryQueryIsNotConstructed)
}

// Category returns the category to filter on.
func (q GetMenuItemsByCategoryQuery) Category() string {
	return q.category
}
