package app

import (
	"context"
	"fmt"

	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/core/stock"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// AddItem creates a new inventory item and prepends it.
func (e *Engine) AddItem(ctx context.Context, params primary.CreateItemParams) (*models.Item, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	now := e.nowMillis()
	item := models.Item{
		ID:           e.newID(),
		Name:         params.Name,
		Description:  params.Description,
		Category:     params.Category,
		InitialStock: params.InitialStock,
		CurrentStock: params.CurrentStock,
		ImageURI:     params.ImageURI,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if acc := e.st.CurrentAccount(); acc != nil {
		item.CreatedByAccountID = acc.ID
	}

	e.st.Items = append([]models.Item{item}, e.st.Items...)
	e.saveItemsLocked(ctx)

	return &item, nil
}

// UpdateItem applies a partial update. Band crossing is detected once
// per call: a patch that lands in the empty band notifies crew and
// Management, a patch that lands in the low band (coming from medium
// or full) notifies crew. No notification fires when the item was
// already empty or low before the patch.
func (e *Engine) UpdateItem(ctx context.Context, id string, patch primary.ItemPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	item := e.st.ItemByID(id)
	if item == nil {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}

	before := *item
	applyItemPatch(item, patch)
	item.UpdatedAt = e.nowMillis()
	e.saveItemsLocked(ctx)

	switch stock.Cross(before, *item) {
	case stock.CrossingToEmpty:
		e.notifyLocked(ctx, notify.ItemEmpty(*item))
	case stock.CrossingToLow:
		e.notifyLocked(ctx, notify.ItemLow(*item))
	}

	return nil
}

// UpdateStock is sugar for UpdateItem with only currentStock changed.
func (e *Engine) UpdateStock(ctx context.Context, id string, currentStock int) error {
	return e.UpdateItem(ctx, id, primary.ItemPatch{CurrentStock: &currentStock})
}

// DeleteItem hard-removes an item. Restock requests keep the dangling
// item id; readers render those as an unknown item.
func (e *Engine) DeleteItem(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	items := e.st.Items[:0]
	found := false
	for _, it := range e.st.Items {
		if it.ID == id {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}

	e.st.Items = items
	e.saveItemsLocked(ctx)
	return nil
}

// Items returns a snapshot of the item collection.
func (e *Engine) Items() []models.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.Items)
}

func applyItemPatch(item *models.Item, patch primary.ItemPatch) {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.InitialStock != nil {
		item.InitialStock = *patch.InitialStock
	}
	if patch.CurrentStock != nil {
		item.CurrentStock = *patch.CurrentStock
	}
	if patch.ImageURI != nil {
		item.ImageURI = *patch.ImageURI
	}
}

// Ensure Engine implements the inventory port.
var _ primary.InventoryService = (*Engine)(nil)
