package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles the business logic for adding catalog items.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for catalog item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the persisted menu item.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := menu.NewMenuItem(
		cmd.MenuItemID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.ImageURL(),
	)
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

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
