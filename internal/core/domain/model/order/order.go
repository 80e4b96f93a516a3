package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order. It owns its lines with
// cascading lifecycle: lines are created only through AddLine, exist only
// inside their order, and are removed with it.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a non-blank customer name
//   - Status is never blank; a blank status at creation defaults to PENDING
//   - Total price always equals the sum of quantity x unit price over all
//     lines; it is recomputed on every line addition and never accepted from
//     outside
//   - The creation timestamp is assigned by the system at construction time
//
// The "at least one line" rule is enforced at the creation boundary (the
// create-order use case), keeping the aggregate itself a plain data and
// computation holder.
type Order struct {
	id           kernel.UUID
	customerName string
	orderTime    time.Time
	status       Status
	totalPrice   decimal.Decimal
	lines        []Line

	isConstructed bool
}

// NewOrder creates a new Order with a system-assigned creation timestamp.
// A blank status falls back to DefaultStatus. Lines are attached afterwards
// via AddLine.
func NewOrder(id kernel.UUID, customerName string, status string) (*Order, error) {
	order := &Order{
		orderTime:     time.Now().UTC(),
		totalPrice:    decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	order.status = StatusOrDefault(status)

	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
// The total price is recomputed from the restored lines rather than trusted
// from storage; the lines are the source of truth for the total.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	orderTime time.Time,
	status Status,
	lines []Line,
) (*Order, error) {
	order := &Order{
		orderTime:     orderTime,
		totalPrice:    decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	order.lines = lines
	order.recalculateTotal()

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// OrderTime returns the system-assigned creation timestamp.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current status label.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the current total, always equal to the sum of
// quantity x unit price over the order's lines.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Lines returns the order's lines in insertion order.
func (o *Order) Lines() []Line {
	return o.lines
}

// AddLine builds a line against the given catalog item and appends it to the
// order. The line receives this order's identifier as its parent reference,
// and the total is recomputed immediately so it never goes stale.
//
// The unit price must be the catalog item's current price at the moment of
// the build; callers resolve it via catalog lookup and never take it from a
// client request.
func (o *Order) AddLine(
	lineID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	line, err := NewLine(lineID, o.id, menuItemID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	o.recalculateTotal()
	return nil
}

// ChangeStatus overwrites the order's status with a new non-blank label.
// No transition rules apply; any non-blank status is accepted from any
// prior status.
func (o *Order) ChangeStatus(status Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// recalculateTotal derives the total from the current lines.
// Called after every line-set mutation; the cached value is never trusted
// across mutations.
func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	o.totalPrice = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}
