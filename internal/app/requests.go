package app

import (
	"context"
	"fmt"

	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// CreateRequest files a pending restock request and notifies
// Management. The item id is deliberately not validated against the
// item collection; a dangling reference is tolerated.
func (e *Engine) CreateRequest(ctx context.Context, params primary.CreateRequestParams) (*models.RestockRequest, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	now := e.nowMillis()
	req := models.RestockRequest{
		ID:        e.newID(),
		ItemID:    params.ItemID,
		Quantity:  params.Quantity,
		Immediate: params.Immediate,
		Status:    models.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.CreatedBy = e.st.ActiveRole
	if acc := e.st.CurrentAccount(); acc != nil {
		req.CreatedByAccountID = acc.ID
	}

	e.st.Requests = append([]models.RestockRequest{req}, e.st.Requests...)
	e.saveRequestsLocked(ctx)
	e.notifyLocked(ctx, notify.RequestCreated(req))

	return &req, nil
}

// ApproveRequest marks the request approved, computes the expected
// delivery time from the ETA offset and notifies the crew roles.
func (e *Engine) ApproveRequest(ctx context.Context, id string, eta primary.ETA) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	req := e.requestByIDLocked(id)
	if req == nil {
		return fmt.Errorf("request %s: %w", id, ErrNotFound)
	}

	req.Status = models.RequestApproved
	req.ExpectedDeliveryAt = e.nowMillis() + int64(eta.Days*24+eta.Hours)*3600*1000
	req.UpdatedAt = e.nowMillis()
	e.saveRequestsLocked(ctx)
	e.notifyLocked(ctx, notify.RequestApproved(*req))

	return nil
}

// DenyRequest marks the request denied and notifies the crew roles.
func (e *Engine) DenyRequest(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	req := e.requestByIDLocked(id)
	if req == nil {
		return fmt.Errorf("request %s: %w", id, ErrNotFound)
	}

	req.Status = models.RequestDenied
	req.UpdatedAt = e.nowMillis()
	e.saveRequestsLocked(ctx)
	e.notifyLocked(ctx, notify.RequestDenied(*req))

	return nil
}

// CancelRequest marks the request cancelled. No notification.
func (e *Engine) CancelRequest(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	req := e.requestByIDLocked(id)
	if req == nil {
		return fmt.Errorf("request %s: %w", id, ErrNotFound)
	}

	req.Status = models.RequestCancelled
	req.UpdatedAt = e.nowMillis()
	e.saveRequestsLocked(ctx)
	return nil
}

// DeleteRequest hard-removes the request. No notification.
func (e *Engine) DeleteRequest(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	reqs := e.st.Requests[:0]
	found := false
	for _, r := range e.st.Requests {
		if r.ID == id {
			found = true
			continue
		}
		reqs = append(reqs, r)
	}
	if !found {
		return fmt.Errorf("request %s: %w", id, ErrNotFound)
	}

	e.st.Requests = reqs
	e.saveRequestsLocked(ctx)
	return nil
}

// Requests returns a snapshot of the request collection.
func (e *Engine) Requests() []models.RestockRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.Requests)
}

func (e *Engine) requestByIDLocked(id string) *models.RestockRequest {
	for i := range e.st.Requests {
		if e.st.Requests[i].ID == id {
			return &e.st.Requests[i]
		}
	}
	return nil
}

// Ensure Engine implements the request port.
var _ primary.RequestService = (*Engine)(nil)
