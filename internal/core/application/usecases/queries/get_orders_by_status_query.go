package queries

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves orders carrying an exact status label.
// Matching is case-sensitive; an unknown label simply yields no rows.
type GetOrdersByStatusQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query filtering orders by status.
// A blank status is rejected.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	if strings.TrimSpace(status) == "" {
		return GetOrdersByStatusQuery{}, errs.NewValueIsRequiredError("status")
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status label to filter on.
func (q GetOrdersByStatusQuery) Status() string {
	return q.status
}
