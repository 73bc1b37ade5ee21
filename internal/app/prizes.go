package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// CreatePrizeDef creates a prize definition and announces it to every
// role. Active defaults to true when not set.
func (e *Engine) CreatePrizeDef(ctx context.Context, params primary.CreatePrizeDefParams) (*models.PrizeDefinition, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	def := models.PrizeDefinition{
		ID:           e.newID(),
		Name:         params.Name,
		Description:  params.Description,
		Category:     params.Category,
		UnlockAmount: params.UnlockAmount,
		IsHidden:     params.IsHidden,
		Active:       active,
		CreatedAt:    e.nowMillis(),
	}

	e.st.PrizeDefs = append([]models.PrizeDefinition{def}, e.st.PrizeDefs...)
	e.savePrizeDefsLocked(ctx)
	e.notifyLocked(ctx, notify.PrizeNew(def))

	return &def, nil
}

// UpdatePrizeDef applies a partial update to a definition. Existing
// awards are never revoked, even when the threshold is raised or the
// definition deactivated.
func (e *Engine) UpdatePrizeDef(ctx context.Context, id string, patch primary.PrizeDefPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	var def *models.PrizeDefinition
	for i := range e.st.PrizeDefs {
		if e.st.PrizeDefs[i].ID == id {
			def = &e.st.PrizeDefs[i]
			break
		}
	}
	if def == nil {
		return fmt.Errorf("prize %s: %w", id, ErrNotFound)
	}

	if patch.Name != nil {
		def.Name = *patch.Name
	}
	if patch.Description != nil {
		def.Description = *patch.Description
	}
	if patch.Category != nil {
		def.Category = *patch.Category
	}
	if patch.UnlockAmount != nil {
		def.UnlockAmount = *patch.UnlockAmount
	}
	if patch.IsHidden != nil {
		def.IsHidden = *patch.IsHidden
	}
	if patch.Active != nil {
		def.Active = *patch.Active
	}
	e.savePrizeDefsLocked(ctx)
	return nil
}

// AwardUnlockedPrizes creates awards for every active definition the
// account's progress satisfies. Idempotent across calls.
func (e *Engine) AwardUnlockedPrizes(ctx context.Context, accountID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	if e.st.AccountByID(accountID) == nil {
		return fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	e.awardUnlockedPrizesLocked(ctx, accountID)
	return nil
}

// awardUnlockedPrizesLocked runs after every point award. A definition
// is skipped when inactive, when the threshold is not met, or when an
// award for the same (prize, owner) pair already exists. The last check
// is what makes repeated calls idempotent.
func (e *Engine) awardUnlockedPrizesLocked(ctx context.Context, accountID string) {
	acc := e.st.AccountByID(accountID)
	if acc == nil {
		return
	}

	owned := make(map[string]bool, len(e.st.EmployeePrizes))
	for _, ep := range e.st.EmployeePrizes {
		if ep.OwnerAccountID == accountID {
			owned[ep.PrizeID] = true
		}
	}

	awarded := 0
	for _, def := range e.st.PrizeDefs {
		if !def.Active || acc.Progress < def.UnlockAmount || owned[def.ID] {
			continue
		}
		ep := models.EmployeePrize{
			ID:             e.newID(),
			PrizeID:        def.ID,
			OwnerAccountID: accountID,
			UnlockedAt:     e.nowMillis(),
		}
		e.st.EmployeePrizes = append([]models.EmployeePrize{ep}, e.st.EmployeePrizes...)
		e.notifyLocked(ctx, notify.PrizeAwarded(def, *acc))
		awarded++
	}
	if awarded > 0 {
		e.saveEmployeePrizesLocked(ctx)
		e.log.WithFields(logrus.Fields{"account": accountID, "count": awarded}).
			Info("prizes awarded")
	}
}

// GiftPrize schedules an ownership transfer. The gift stays with the
// sender until the delivery sweep moves it; a second gift call on the
// same award overwrites the pending schedule.
func (e *Engine) GiftPrize(ctx context.Context, employeePrizeID, toAccountID string, deliveryAt int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	if e.st.AccountByID(toAccountID) == nil {
		return fmt.Errorf("account %s: %w", toAccountID, ErrNotFound)
	}

	var ep *models.EmployeePrize
	for i := range e.st.EmployeePrizes {
		if e.st.EmployeePrizes[i].ID == employeePrizeID {
			ep = &e.st.EmployeePrizes[i]
			break
		}
	}
	if ep == nil {
		return fmt.Errorf("employee prize %s: %w", employeePrizeID, ErrNotFound)
	}
	if ep.Delivered {
		return fmt.Errorf("%w: prize already delivered", ErrValidation)
	}

	ep.GiftedToAccountID = toAccountID
	ep.DeliveryAt = deliveryAt
	e.saveEmployeePrizesLocked(ctx)
	e.notifyLocked(ctx, notify.GiftScheduled(*ep))
	return nil
}

// DeliverDueGifts transfers every pending gift whose delivery time has
// elapsed. Called by the periodic sweeper and, via the deferred sweep,
// after every mutation.
func (e *Engine) DeliverDueGifts(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sweepGiftsLocked(ctx)
}

// sweepGiftsLocked is the gift delivery pass. Exactly-once per gift:
// delivery flips ownership, clears the schedule and sets Delivered, so
// a later pass cannot match the same gift again.
func (e *Engine) sweepGiftsLocked(ctx context.Context) int {
	now := e.nowMillis()
	delivered := 0
	for i := range e.st.EmployeePrizes {
		ep := &e.st.EmployeePrizes[i]
		if ep.Delivered || ep.GiftedToAccountID == "" || ep.DeliveryAt > now {
			continue
		}

		recipientRole := models.RoleGeneralService
		if recipient := e.st.AccountByID(ep.GiftedToAccountID); recipient != nil {
			recipientRole = recipient.Role
		}

		ep.OwnerAccountID = ep.GiftedToAccountID
		ep.GiftedToAccountID = ""
		ep.DeliveryAt = 0
		ep.Delivered = true
		delivered++
		e.notifyLocked(ctx, notify.GiftReceived(*ep, recipientRole))
	}
	if delivered > 0 {
		e.saveEmployeePrizesLocked(ctx)
		e.log.WithField("count", delivered).Info("gifts delivered")
	}
	return delivered
}

// PrizeDefs returns a snapshot of the definitions.
func (e *Engine) PrizeDefs() []models.PrizeDefinition {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.PrizeDefs)
}

// EmployeePrizes returns a snapshot of the awards.
func (e *Engine) EmployeePrizes() []models.EmployeePrize {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.EmployeePrizes)
}

// Ensure Engine implements the prize port.
var _ primary.PrizeService = (*Engine)(nil)
