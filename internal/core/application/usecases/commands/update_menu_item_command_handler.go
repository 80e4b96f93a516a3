package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// UpdateMenuItemCommandHandler handles catalog item updates.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for catalog item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, replaces its details, and persists the change.
// Returns an ObjectNotFoundError when the item does not exist.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItemRepo := uow.MenuItemRepository()
	item, err := menuItemRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	if err = item.UpdateDetails(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.ImageURL(),
	); err != nil {
		return nil, err
	}

	if err = menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
