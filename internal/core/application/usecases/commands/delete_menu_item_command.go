package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a request to remove an item from the catalog.
// Historical order lines referencing the item keep their price snapshots.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a catalog item.
func NewDeleteMenuItemCommand(menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	itemCommand := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemCommand.setMenuItemID(menuItemID); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to delete.
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *DeleteMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
