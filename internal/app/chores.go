package app

import (
	"context"
	"fmt"

	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// CreateChore creates a chore and notifies its audience.
func (e *Engine) CreateChore(ctx context.Context, params primary.CreateChoreParams) (*models.Chore, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	chore := models.Chore{
		ID:                    e.newID(),
		Title:                 params.Title,
		Description:           params.Description,
		Audience:              params.Audience,
		Points:                params.Points,
		AssignedToAccountID:   params.AssignedToAccountID,
		DueAt:                 params.DueAt,
		CompletedByAccountIDs: []string{},
		CreatedAt:             e.nowMillis(),
	}
	if acc := e.st.CurrentAccount(); acc != nil {
		chore.CreatedByAccountID = acc.ID
	}

	e.st.Chores = append([]models.Chore{chore}, e.st.Chores...)
	e.saveChoresLocked(ctx)
	e.notifyLocked(ctx, notify.ChoreAssigned(chore))

	return &chore, nil
}

// ToggleChoreComplete toggles the current account in the chore's
// completer set. The completing transition awards the chore's points
// once, notifies Management and runs the prize-unlock hook.
// Un-completing removes the account from the set but never retracts
// points already awarded: award-on-enter, no claw-back-on-exit.
func (e *Engine) ToggleChoreComplete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return ErrNoSession
	}

	var chore *models.Chore
	for i := range e.st.Chores {
		if e.st.Chores[i].ID == id {
			chore = &e.st.Chores[i]
			break
		}
	}
	if chore == nil {
		return fmt.Errorf("chore %s: %w", id, ErrNotFound)
	}

	if chore.CompletedBy(acc.ID) {
		chore.CompletedByAccountIDs = removeString(chore.CompletedByAccountIDs, acc.ID)
		e.saveChoresLocked(ctx)
		return nil
	}

	chore.CompletedByAccountIDs = append(chore.CompletedByAccountIDs, acc.ID)
	e.saveChoresLocked(ctx)

	e.awardPointsLocked(ctx, acc.ID, chore.Points)
	e.notifyLocked(ctx, notify.ChoreCompleted(*chore, *acc))
	e.awardUnlockedPrizesLocked(ctx, acc.ID)

	return nil
}

// Chores returns a snapshot of the chore collection.
func (e *Engine) Chores() []models.Chore {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.Chores)
}

// awardPointsLocked adds points to an account's progress. Zero-point
// tasks still earn one point, matching the original engine. Progress
// never decreases; nothing in this package subtracts from it.
func (e *Engine) awardPointsLocked(ctx context.Context, accountID string, points int) {
	acc := e.st.AccountByID(accountID)
	if acc == nil {
		return
	}
	if points <= 0 {
		points = 1
	}
	acc.Progress += points
	acc.UpdatedAt = e.nowMillis()
	e.saveAccountsLocked(ctx)
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// Ensure Engine implements the chore port.
var _ primary.ChoreService = (*Engine)(nil)
