package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler handles catalog item removal.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for catalog item deletion.
func NewDeleteMenuItemCommandHandler(uowFactory MenuItemUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the item exists and removes it.
// Returns an ObjectNotFoundError when the item does not exist.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItemRepo := uow.MenuItemRepository()
	if _, err := menuItemRepo.Get(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := menuItemRepo.Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
