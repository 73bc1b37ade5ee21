// Package primary defines the driving ports of the engine: the
// operations the UI layer calls, plus their request and patch DTOs.
// Patches use tagged pointer fields, never open-ended maps, so partial
// updates stay field-name safe at compile time.
package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// InventoryService defines the primary port for inventory operations.
type InventoryService interface {
	// AddItem creates a new inventory item.
	AddItem(ctx context.Context, params CreateItemParams) (*models.Item, error)

	// UpdateItem applies a partial update and emits band-crossing
	// notifications (empty, low) when the patch crosses a band.
	UpdateItem(ctx context.Context, id string, patch ItemPatch) error

	// UpdateStock replaces only the current stock level.
	UpdateStock(ctx context.Context, id string, currentStock int) error

	// DeleteItem hard-removes an item. Requests referencing it keep
	// their dangling item id.
	DeleteItem(ctx context.Context, id string) error

	// Items returns a snapshot of the item collection.
	Items() []models.Item
}

// CreateItemParams contains parameters for creating an item.
type CreateItemParams struct {
	Name         string              `validate:"required"`
	Description  string
	Category     models.ItemCategory `validate:"required"`
	InitialStock int                 `validate:"gte=0"`
	CurrentStock int                 `validate:"gte=0"`
	ImageURI     string
}

// ItemPatch is a partial update of an item. Nil fields are untouched.
type ItemPatch struct {
	Name         *string
	Description  *string
	Category     *models.ItemCategory
	InitialStock *int
	CurrentStock *int
	ImageURI     *string
}
