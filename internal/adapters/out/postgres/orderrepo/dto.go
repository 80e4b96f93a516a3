// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in a separate table wired with a cascading foreign key so that
// deleting an order removes its lines in the same statement.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName string    `gorm:"index"`
	OrderTime    time.Time
	Status       string          `gorm:"index"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Lines        []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents a single order line row. The unit price is the catalog
// price captured when the order was created, not a reference to the catalog.
type LineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line rows.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database
// representation, lines included.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:         line.ID().Bytes(),
			OrderID:    line.OrderID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		OrderTime:    aggregate.OrderTime(),
		Status:       aggregate.Status().String(),
		TotalPrice:   aggregate.TotalPrice(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate via RestoreOrder, which recomputes the
// total from the restored lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		orderID, lineErr := kernel.UUIDFromBytes(lineDTO.OrderID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(lineID, orderID, menuItemID, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.CustomerName, dto.OrderTime, order.Status(dto.Status), lines)
}
