package app

import (
	"context"
	"fmt"

	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// SetSchedule replaces an account's weekly schedule and notifies that
// account's role.
func (e *Engine) SetSchedule(ctx context.Context, accountID string, schedule models.WeeklySchedule) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.AccountByID(accountID)
	if acc == nil {
		return fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}

	acc.Schedule = schedule
	acc.UpdatedAt = e.nowMillis()
	e.saveAccountsLocked(ctx)
	e.notifyLocked(ctx, notify.ScheduleUpdated(*acc))

	return nil
}

// CreateSwitchRequest files a schedule-change proposal and notifies
// Management. The requester defaults to the current account.
func (e *Engine) CreateSwitchRequest(ctx context.Context, params primary.CreateSwitchRequestParams) (*models.SwitchRequest, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	requester := params.RequesterID
	if requester == "" {
		acc := e.st.CurrentAccount()
		if acc == nil {
			return nil, ErrNoSession
		}
		requester = acc.ID
	}

	now := e.nowMillis()
	req := models.SwitchRequest{
		ID:          e.newID(),
		RequesterID: requester,
		PartnerID:   params.PartnerID,
		Date:        params.Date,
		Type:        params.Type,
		Note:        params.Note,
		Status:      models.SwitchProposed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	e.st.SwitchRequests = append([]models.SwitchRequest{req}, e.st.SwitchRequests...)
	e.saveSwitchRequestsLocked(ctx)
	e.notifyLocked(ctx, notify.ScheduleRequested(req))

	return &req, nil
}

// ApproveSwitch marks the proposal approved.
func (e *Engine) ApproveSwitch(ctx context.Context, id string) error {
	return e.setSwitchStatus(ctx, id, models.SwitchApproved)
}

// DenySwitch marks the proposal denied.
func (e *Engine) DenySwitch(ctx context.Context, id string) error {
	return e.setSwitchStatus(ctx, id, models.SwitchDenied)
}

// CancelSwitch marks the proposal cancelled.
func (e *Engine) CancelSwitch(ctx context.Context, id string) error {
	return e.setSwitchStatus(ctx, id, models.SwitchCancelled)
}

// CompleteSwitch marks the proposal completed.
func (e *Engine) CompleteSwitch(ctx context.Context, id string) error {
	return e.setSwitchStatus(ctx, id, models.SwitchCompleted)
}

func (e *Engine) setSwitchStatus(ctx context.Context, id string, status models.SwitchStatus) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	for i := range e.st.SwitchRequests {
		req := &e.st.SwitchRequests[i]
		if req.ID != id {
			continue
		}
		req.Status = status
		req.UpdatedAt = e.nowMillis()
		e.saveSwitchRequestsLocked(ctx)
		return nil
	}
	return fmt.Errorf("switch request %s: %w", id, ErrNotFound)
}

// SwitchRequests returns a snapshot of the proposals.
func (e *Engine) SwitchRequests() []models.SwitchRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.SwitchRequests)
}

// Ensure Engine implements the schedule port.
var _ primary.ScheduleService = (*Engine)(nil)
