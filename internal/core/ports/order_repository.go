// Package ports defines repository interfaces for the restaurant domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are always read and written as one unit: Add
// persists the order row together with all line rows, Get reconstructs the
// full aggregate, and Delete cascades to the lines.
type OrderRepository interface {
	// Add persists a new order aggregate together with all its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Lines are write-once, so only the order row (status, total) is
	// rewritten. Returns ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and, through cascade, all its lines.
	// No line ever survives its parent order.
	Delete(ctx context.Context, id kernel.UUID) error
}
