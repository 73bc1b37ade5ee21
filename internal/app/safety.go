package app

import (
	"context"
	"fmt"

	"github.com/example/crewdeck/internal/core/authz"
	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// CreateSafetyRequirement is Safety Personal only. Active defaults to
// true when not set. The targeted role is notified.
func (e *Engine) CreateSafetyRequirement(ctx context.Context, params primary.CreateSafetyRequirementParams) (*models.SafetyRequirement, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}
	if !params.TargetRole.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, params.TargetRole)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return nil, ErrNoSession
	}
	if guard := authz.CanCreateSafetyRequirement(acc.Role); !guard.Allowed {
		e.log.WithField("role", acc.Role).Warn("safety requirement creation refused")
		return nil, fmt.Errorf("%w: %s", ErrNotAuthorized, guard.Reason)
	}

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	req := models.SafetyRequirement{
		ID:                 e.newID(),
		Title:              params.Title,
		Description:        params.Description,
		CreatedByAccountID: acc.ID,
		TargetRole:         params.TargetRole,
		Active:             active,
		CreatedAt:          e.nowMillis(),
		Verifications:      []models.SafetyVerification{},
	}

	e.st.SafetyRequirements = append([]models.SafetyRequirement{req}, e.st.SafetyRequirements...)
	e.saveSafetyRequirementsLocked(ctx)
	e.notifyLocked(ctx, notify.SafetyRequirementNew(req))

	return &req, nil
}

// VerifySafety appends a verification to the requirement's history.
// Safety Personal only. The verified account's role is notified.
func (e *Engine) VerifySafety(ctx context.Context, requirementID, forAccountID, note string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return ErrNoSession
	}
	if guard := authz.CanVerifySafety(acc.Role); !guard.Allowed {
		e.log.WithField("role", acc.Role).Warn("safety verification refused")
		return fmt.Errorf("%w: %s", ErrNotAuthorized, guard.Reason)
	}

	req := e.safetyRequirementByIDLocked(requirementID)
	if req == nil {
		return fmt.Errorf("safety requirement %s: %w", requirementID, ErrNotFound)
	}
	verified := e.st.AccountByID(forAccountID)
	if verified == nil {
		return fmt.Errorf("account %s: %w", forAccountID, ErrNotFound)
	}

	req.Verifications = append(req.Verifications, models.SafetyVerification{
		ID:           e.newID(),
		ByAccountID:  acc.ID,
		ForAccountID: forAccountID,
		Note:         note,
		CreatedAt:    e.nowMillis(),
	})
	e.saveSafetyRequirementsLocked(ctx)
	e.notifyLocked(ctx, notify.SafetyVerified(*req, *verified))

	return nil
}

// SetSafetyRequirementActive flips the active flag. Safety Personal
// only. No notification.
func (e *Engine) SetSafetyRequirementActive(ctx context.Context, requirementID string, active bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return ErrNoSession
	}
	if guard := authz.CanToggleSafetyRequirement(acc.Role); !guard.Allowed {
		e.log.WithField("role", acc.Role).Warn("safety requirement toggle refused")
		return fmt.Errorf("%w: %s", ErrNotAuthorized, guard.Reason)
	}

	req := e.safetyRequirementByIDLocked(requirementID)
	if req == nil {
		return fmt.Errorf("safety requirement %s: %w", requirementID, ErrNotFound)
	}

	req.Active = active
	e.saveSafetyRequirementsLocked(ctx)
	return nil
}

// SafetyRequirements returns a snapshot of the requirements.
func (e *Engine) SafetyRequirements() []models.SafetyRequirement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.SafetyRequirements)
}

func (e *Engine) safetyRequirementByIDLocked(id string) *models.SafetyRequirement {
	for i := range e.st.SafetyRequirements {
		if e.st.SafetyRequirements[i].ID == id {
			return &e.st.SafetyRequirements[i]
		}
	}
	return nil
}

// Ensure Engine implements the safety port.
var _ primary.SafetyService = (*Engine)(nil)
