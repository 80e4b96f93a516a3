package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves each requested line against the catalog, snapshots the current
// price onto the line, and persists the whole aggregate in one transaction.
//
// Atomicity: every catalog lookup and the final write run inside a single
// unit of work. Any failure, including a missing catalog item, rolls the
// transaction back so no partial order is ever persisted.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning the catalog and order repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// order, including its identifier, assigned timestamp, status, and total.
//
// The unit price on each line is the catalog item's price at the moment of
// the lookup, never a value from the request. A requested item that does not
// resolve aborts the entire operation with an ObjectNotFoundError naming the
// missing identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerName(), cmd.Status())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItemRepo := uow.MenuItemRepository()
	for _, requested := range cmd.Lines() {
		menuItem, lookupErr := menuItemRepo.Get(ctx, requested.MenuItemID())
		if lookupErr != nil {
			return nil, lookupErr
		}

		if err = newOrder.AddLine(kernel.NewUUID(), menuItem.ID(), requested.Quantity(), menuItem.Price()); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
