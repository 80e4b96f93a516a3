package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for catalog items.
// It is the authoritative source of current prices: order creation resolves
// items through Get inside the same transaction that writes the order.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	// Returns ObjectNotFoundError when the item does not exist.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	// Returns ObjectNotFoundError when the item does not exist; callers
	// must handle the miss explicitly, there is no silent default.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// Delete removes a menu item from the catalog.
	// Existing order lines referencing the item keep their price snapshots.
	Delete(ctx context.Context, id kernel.UUID) error
}
