package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for placing an order. Status is
// optional; a missing or blank value defaults to PENDING.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	Status       string             `json:"status,omitempty"`
	Lines        []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is a single requested line. The price is looked up from
// the catalog server-side and cannot be supplied by the client.
type OrderLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the JSON body for replacing an order's status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the JSON representation of a stored order.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customerName"`
	OrderTime    time.Time           `json:"orderTime"`
	Status       string              `json:"status"`
	TotalPrice   decimal.Decimal     `json:"totalPrice"`
	Lines        []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is the JSON representation of a stored order line.
type OrderLineResponse struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// MenuItemRequest is the JSON body for creating or updating a catalog item.
type MenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// MenuItemResponse is the JSON representation of a catalog item.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

func orderFromDomain(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ID:         line.ID().String(),
			MenuItemID: line.MenuItemID().String(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerName: o.CustomerName(),
		OrderTime:    o.OrderTime(),
		Status:       o.Status().String(),
		TotalPrice:   o.TotalPrice(),
		Lines:        lines,
	}
}

func orderFromReadModel(o queries.OrderResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ID:         line.ID.String(),
			MenuItemID: line.MenuItemID.String(),
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		})
	}

	return OrderResponse{
		ID:           o.ID.String(),
		CustomerName: o.CustomerName,
		OrderTime:    o.OrderTime,
		Status:       o.Status,
		TotalPrice:   o.TotalPrice,
		Lines:        lines,
	}
}

func menuItemFromDomain(item *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID().String(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		ImageURL:    item.ImageURL(),
	}
}

func menuItemFromReadModel(item queries.MenuItemResponse) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
	}
}
