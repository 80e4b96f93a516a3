package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a new item to the catalog.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to register a new catalog item.
// Validates that the item ID is valid, the name is not empty, and the price
// is non-negative.
func NewCreateMenuItemCommand(
	menuItemID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	imageURL string,
) (CreateMenuItemCommand, error) {
	itemCommand := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setMenuItemID(menuItemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	itemCommand.description = description
	itemCommand.category = category
	itemCommand.imageURL = imageURL

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the unique identifier for the new item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the item's display name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the item's free-text description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the item's price.
func (c CreateMenuItemCommand) Price() decimal.Decimal {
	return c.price
}

// Category returns the menu category the item belongs to.
func (c CreateMenuItemCommand) Category() string {
	return c.category
}

// ImageURL returns the reference to the item's image.
func (c CreateMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}

	c.price = price
	return nil
}
