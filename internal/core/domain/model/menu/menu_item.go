package menu

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem or RestoreMenuItem factory methods.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem represents a dish or drink available for ordering. It is the
// catalog entity whose current price is the authoritative source for order
// line price snapshots.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Price must be non-negative
//   - Can only be created through NewMenuItem or RestoreMenuItem
//
// Description, category, and image URL are descriptive attributes with no
// invariants beyond being plain text.
type MenuItem struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	imageURL    string

	isConstructed bool
}

// NewMenuItem creates a new MenuItem instance with validation. This is the
// only way to create a valid MenuItem, ensuring all invariants hold.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - description: Free-text description
//   - price: Current price (must be non-negative)
//   - category: Menu category used for grouping
//   - imageURL: Reference to an image of the item
func NewMenuItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	imageURL string,
) (*MenuItem, error) {
	item := &MenuItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.category = category
	item.imageURL = imageURL

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence.
// Applies the same validation as NewMenuItem so that corrupt rows never
// produce an invalid entity.
func RestoreMenuItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	imageURL string,
) (*MenuItem, error) {
	return NewMenuItem(id, name, description, price, category, imageURL)
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the menu item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the menu item's free-text description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the menu item's current price.
func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

// Category returns the menu category the item belongs to.
func (m *MenuItem) Category() string {
	return m.category
}

// ImageURL returns the reference to the item's image.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// UpdateDetails replaces the item's descriptive attributes and price.
// The same validation rules as construction apply. Catalog price changes
// never propagate to existing order lines; those keep their snapshots.
func (m *MenuItem) UpdateDetails(
	name string,
	description string,
	price decimal.Decimal,
	category string,
	imageURL string,
) error {
	if err := m.Validate(); err != nil {
		return err
	}

	updated := *m
	if err := errors.Join(
		updated.setName(name),
		updated.setPrice(price),
	); err != nil {
		return err
	}

	m.name = updated.name
	m.price = updated.price
	m.description = description
	m.category = category
	m.imageURL = imageURL

	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}
