package app

import (
	"context"
	"fmt"

	"github.com/example/crewdeck/internal/core/authz"
	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// CreateObjective creates an open objective owned by the current
// account and notifies the assigned role.
func (e *Engine) CreateObjective(ctx context.Context, params primary.CreateObjectiveParams) (*models.Objective, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return nil, ErrNoSession
	}

	points := params.Points
	if points == 0 {
		points = 1
	}
	obj := models.Objective{
		ID:                    e.newID(),
		Title:                 params.Title,
		Description:           params.Description,
		Points:                points,
		CreatedByAccountID:    acc.ID,
		CreatedByRole:         acc.Role,
		AssignedToRole:        params.AssignedToRole,
		AssignedToAccountID:   params.AssignedToAccountID,
		RequiresApproval:      params.RequiresApproval,
		DueAt:                 params.DueAt,
		Status:                models.ObjectiveOpen,
		CompletedByAccountIDs: []string{},
		CreatedAt:             e.nowMillis(),
	}

	e.st.Objectives = append([]models.Objective{obj}, e.st.Objectives...)
	e.saveObjectivesLocked(ctx)
	e.notifyLocked(ctx, notify.ObjectiveAssigned(obj))

	return &obj, nil
}

// ToggleObjectiveComplete toggles the current account in the
// completer set. The completing transition moves the objective to
// completed, awards the completer its points and runs the
// prize-unlock hook. Reversing removes the completer but leaves the
// status and any awarded points untouched.
func (e *Engine) ToggleObjectiveComplete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return ErrNoSession
	}

	obj := e.objectiveByIDLocked(id)
	if obj == nil {
		return fmt.Errorf("objective %s: %w", id, ErrNotFound)
	}

	if obj.CompletedBy(acc.ID) {
		obj.CompletedByAccountIDs = removeString(obj.CompletedByAccountIDs, acc.ID)
		e.saveObjectivesLocked(ctx)
		return nil
	}

	obj.CompletedByAccountIDs = append(obj.CompletedByAccountIDs, acc.ID)
	obj.Status = models.ObjectiveCompleted
	e.saveObjectivesLocked(ctx)

	e.awardPointsLocked(ctx, acc.ID, obj.Points)
	e.notifyLocked(ctx, notify.ObjectiveCompleted(*obj, *acc))
	e.awardUnlockedPrizesLocked(ctx, acc.ID)

	return nil
}

// ApproveObjective is Management-only. Approval awards the approver
// the objective's points in addition to any completion award.
func (e *Engine) ApproveObjective(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return ErrNoSession
	}
	if guard := authz.CanApproveObjective(acc.Role); !guard.Allowed {
		e.log.WithField("role", acc.Role).Warn("objective approval refused")
		return fmt.Errorf("%w: %s", ErrNotAuthorized, guard.Reason)
	}

	obj := e.objectiveByIDLocked(id)
	if obj == nil {
		return fmt.Errorf("objective %s: %w", id, ErrNotFound)
	}

	obj.Status = models.ObjectiveApproved
	obj.ApprovedAt = e.nowMillis()
	e.saveObjectivesLocked(ctx)

	e.awardPointsLocked(ctx, acc.ID, obj.Points)
	e.notifyLocked(ctx, notify.ObjectiveApproved(*obj, *acc))
	e.awardUnlockedPrizesLocked(ctx, acc.ID)

	return nil
}

// Objectives returns a snapshot of the objective collection.
func (e *Engine) Objectives() []models.Objective {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.Objectives)
}

func (e *Engine) objectiveByIDLocked(id string) *models.Objective {
	for i := range e.st.Objectives {
		if e.st.Objectives[i].ID == id {
			return &e.st.Objectives[i]
		}
	}
	return nil
}

// Ensure Engine implements the objective port.
var _ primary.ObjectiveService = (*Engine)(nil)
