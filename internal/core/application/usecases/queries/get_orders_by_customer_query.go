package queries

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves all orders placed under a customer name.
// Matching is exact; there is no customer registry to resolve against.
type GetOrdersByCustomerQuery struct {
	customerName string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query filtering orders by customer name.
// A blank name is rejected.
func NewGetOrdersByCustomerQuery(customerName string) (GetOrdersByCustomerQuery, error) {
	if strings.TrimSpace(customerName) == "" {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsRequiredError("customerName")
	}

	return GetOrdersByCustomerQuery{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerName returns the customer name to filter on.
func (q GetOrdersByCustomerQuery) CustomerName() string {
	return q.customerName
}
