package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine or RestoreLine factory methods.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one row of an order: a quantity bound to a price-snapshotted menu
// item. A line exists only inside its owning Order and is write-once; its
// quantity and unit price never change after construction.
//
// The menu item is referenced by identifier only. The unit price is a copy
// of the catalog price at the moment the line was built; later catalog price
// changes, or even deletion of the catalog item, never alter the line.
type Line struct {
	id         kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  decimal.Decimal

	isConstructed bool
}

// NewLine creates a new order line with validation.
//
// Parameters:
//   - id: Unique identifier of the line
//   - orderID: Identifier of the owning order
//   - menuItemID: Identifier of the catalog item the line was built from
//   - quantity: Number of units (must be positive)
//   - unitPrice: Catalog price at build time (must be non-negative)
func NewLine(
	id kernel.UUID,
	orderID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setOrderID(orderID),
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence.
// Applies the same validation as NewLine.
func RestoreLine(
	id kernel.UUID,
	orderID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
) (Line, error) {
	return NewLine(id, orderID, menuItemID, quantity, unitPrice)
}

// Validate ensures the line was properly constructed.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// IsEqual compares two lines by their unique identifiers.
func (l Line) IsEqual(other Line) bool {
	return l.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the owning order.
func (l Line) OrderID() kernel.UUID {
	return l.orderID
}

// MenuItemID returns the identifier of the referenced catalog item.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot captured when the line was built.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal returns quantity multiplied by the unit price snapshot.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Line) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	l.menuItemID = menuItemID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}
