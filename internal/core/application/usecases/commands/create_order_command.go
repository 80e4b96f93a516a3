package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineRequestIsNotConstructed = errors.New(
		"OrderLineRequest must be created via NewOrderLineRequest constructor",
	)
)

// OrderLineRequest is one requested row of a new order: which catalog item
// and how many units. The price is deliberately absent; it is resolved from
// the catalog at creation time and never accepted from the client.
type OrderLineRequest struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewOrderLineRequest creates a requested order line.
// Validates that the catalog item reference is a valid UUID and the quantity
// is a positive integer.
func NewOrderLineRequest(menuItemID kernel.UUID, quantity int) (OrderLineRequest, error) {
	lineRequest := OrderLineRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineRequest.setMenuItemID(menuItemID),
		lineRequest.setQuantity(quantity),
	); err != nil {
		return OrderLineRequest{}, err
	}

	return lineRequest, nil
}

// Validate ensures the request was created through the constructor.
func (r OrderLineRequest) Validate() error {
	return r.guard.Validate(ErrOrderLineRequestIsNotConstructed)
}

// MenuItemID returns the identifier of the requested catalog item.
func (r OrderLineRequest) MenuItemID() kernel.UUID {
	return r.menuItemID
}

// Quantity returns the requested number of units.
func (r OrderLineRequest) Quantity() int {
	return r.quantity
}

func (r *OrderLineRequest) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	r.menuItemID = menuItemID
	return nil
}

func (r *OrderLineRequest) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	r.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to create a new customer order.
// Encapsulates the customer name, the requested lines, and an optional
// initial status (blank means the PENDING default).
//
// Example:
//
//	orderID := kernel.NewUUID()
//	line, _ := NewOrderLineRequest(menuItemID, 2)
//	cmd, err := NewCreateOrderCommand(orderID, "Alice", "", []OrderLineRequest{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	status       string
	lines        []OrderLineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new customer order.
// Validates that the order ID is valid, the customer name is not empty, and
// at least one properly constructed line is requested. An order with zero
// lines is rejected here, before any work is attempted.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	status string,
	lines []OrderLineRequest,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.status = status

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name the order is placed under.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Status returns the requested initial status; blank means the default.
func (c CreateOrderCommand) Status() string {
	return c.status
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLineRequest {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
