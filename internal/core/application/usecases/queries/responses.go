// Package queries contains read-only operations over the catalog and orders.
// Query handlers bypass the domain model and read projections straight from
// the database, per the CQRS split: commands go through aggregates, queries
// do not.
package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLineResponse is a single line of an order as stored, including the
// unit price snapshotted from the catalog at creation time.
type OrderLineResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
}

// OrderResponse is the read model for a stored order with its lines.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	OrderTime    time.Time
	Status       string
	TotalPrice   decimal.Decimal
	Lines        []OrderLineResponse
}

// MenuItemResponse is the read model for a catalog item.
type MenuItemResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
}

// loadOrders reads order rows matching cond and assembles them with their
// lines. Orders come back sorted by order time, newest first; lines keep
// insertion order.
func loadOrders(ctx context.Context, db *gorm.DB, cond string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	query := `
		SELECT
			id,
			customer_name,
			order_time,
			status,
			total_price
		FROM orders
	`
	if cond != "" {
		query += " WHERE " + cond
	}
	query += " ORDER BY order_time DESC, id"

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var id uuid.UUID
		var resp OrderResponse

		if err = rows.Scan(&id, &resp.CustomerName, &resp.OrderTime, &resp.Status, &resp.TotalPrice); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Lines = make([]OrderLineResponse, 0)

		index[id] = len(orders)
		ids = append(ids, id)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lineRows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var id, orderID, menuItemID uuid.UUID
		var line OrderLineResponse

		if err = lineRows.Scan(&id, &orderID, &menuItemID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = lineID

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.MenuItemID = itemID

		at, ok := index[orderID]
		if !ok {
			continue
		}
		orders[at].Lines = append(orders[at].Lines, line)
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanMenuItems(rows *gorm.DB) ([]MenuItemResponse, error) {
	items := make([]MenuItemResponse, 0)

	r, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for r.Next() {
		var id uuid.UUID
		var resp MenuItemResponse

		if err = r.Scan(&id, &resp.Name, &resp.Description, &resp.Price, &resp.Category, &resp.ImageURL); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID
		items = append(items, resp)
	}
	if err = r.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
