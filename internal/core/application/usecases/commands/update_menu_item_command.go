package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to replace a catalog item's
// details. Price changes affect future orders only; existing order lines
// keep their snapshots.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	imageURL    string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update an existing catalog item.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	imageURL string,
) (UpdateMenuItemCommand, error) {
	itemCommand := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setMenuItemID(menuItemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	itemCommand.description = description
	itemCommand.category = category
	itemCommand.imageURL = imageURL

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to update.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the new display name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new price.
func (c UpdateMenuItemCommand) Price() decimal.Decimal {
	return c.price
}

// Category returns the new category.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// ImageURL returns the new image reference.
func (c UpdateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}

	c.price = price
	return nil
}
