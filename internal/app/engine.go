// Package app implements the CrewDeck state engine: the in-memory
// authoritative collections, their mutation operations, the derived
// notification feed and the two background sweeps.
//
// Every operation runs to completion under one mutex, the Go analogue
// of the original's single UI thread. Sweeps are just another caller.
// After a mutation the engine persists each touched collection
// independently; a failed save is logged, never returned, and there is
// no cross-collection transaction (a deliberate, documented relaxed
// guarantee carried over from the original design).
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/secondary"
	"github.com/example/crewdeck/internal/state"
)

// Engine owns the application state and exposes every mutation the UI
// layer calls. Construct with NewEngine; zero value is not usable.
type Engine struct {
	mu       sync.Mutex
	st       *state.AppState
	store    secondary.StateStore
	log      *logrus.Logger
	validate *validator.Validate

	// Injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewEngine loads persisted state through the store and returns a
// ready engine. A fresh installation gets a generated device id.
func NewEngine(ctx context.Context, store secondary.StateStore, log *logrus.Logger) (*Engine, error) {
	st, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	e := &Engine{
		st:       st,
		store:    store,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}

	if e.st.DeviceID == "" {
		e.st.DeviceID = e.newID()
		if err := store.SaveDeviceID(ctx, e.st.DeviceID); err != nil {
			return nil, fmt.Errorf("failed to persist device id: %w", err)
		}
		log.WithField("deviceId", e.st.DeviceID).Debug("generated device id")
	}

	return e, nil
}

// nowMillis returns the current time as unix-epoch milliseconds, the
// timestamp unit every entity uses.
func (e *Engine) nowMillis() int64 {
	return e.now().UnixMilli()
}

// notifyLocked derives a notification from the event, prepends it to
// the feed and persists the feed. Callers hold the mutex.
func (e *Engine) notifyLocked(ctx context.Context, ev notify.Event) {
	n := models.AppNotification{
		ID:        e.newID(),
		Type:      ev.Type,
		Title:     ev.Title,
		Body:      ev.Body,
		Targets:   ev.Targets,
		CreatedAt: e.nowMillis(),
		ReadBy:    []models.Role{},
		Data:      ev.Data,
	}
	e.st.Notifications = append([]models.AppNotification{n}, e.st.Notifications...)
	e.saveNotificationsLocked(ctx)
}

// Persistence helpers. Saves are fire-and-forget: failures are logged
// at Warn and the in-memory state stays authoritative.

func (e *Engine) saveWarn(key string, err error) {
	if err != nil {
		e.log.WithError(err).WithField("collection", key).Warn("failed to persist collection")
	}
}

func (e *Engine) saveItemsLocked(ctx context.Context) {
	e.saveWarn("items", e.store.SaveItems(ctx, e.st.Items))
}

func (e *Engine) saveNotificationsLocked(ctx context.Context) {
	e.saveWarn("notifications", e.store.SaveNotifications(ctx, e.st.Notifications))
}

func (e *Engine) saveRequestsLocked(ctx context.Context) {
	e.saveWarn("requests", e.store.SaveRequests(ctx, e.st.Requests))
}

func (e *Engine) saveAccountsLocked(ctx context.Context) {
	e.saveWarn("accounts", e.store.SaveAccounts(ctx, e.st.Accounts))
}

func (e *Engine) saveChoresLocked(ctx context.Context) {
	e.saveWarn("chores", e.store.SaveChores(ctx, e.st.Chores))
}

func (e *Engine) savePrizeDefsLocked(ctx context.Context) {
	e.saveWarn("prizeDefs", e.store.SavePrizeDefs(ctx, e.st.PrizeDefs))
}

func (e *Engine) saveEmployeePrizesLocked(ctx context.Context) {
	e.saveWarn("employeePrizes", e.store.SaveEmployeePrizes(ctx, e.st.EmployeePrizes))
}

func (e *Engine) saveSwitchRequestsLocked(ctx context.Context) {
	e.saveWarn("switchRequests", e.store.SaveSwitchRequests(ctx, e.st.SwitchRequests))
}

func (e *Engine) saveMessagesLocked(ctx context.Context) {
	e.saveWarn("messages", e.store.SaveMessages(ctx, e.st.Messages))
}

func (e *Engine) saveObjectivesLocked(ctx context.Context) {
	e.saveWarn("objectives", e.store.SaveObjectives(ctx, e.st.Objectives))
}

func (e *Engine) saveSafetyRequirementsLocked(ctx context.Context) {
	e.saveWarn("safetyRequirements", e.store.SaveSafetyRequirements(ctx, e.st.SafetyRequirements))
}

func (e *Engine) saveSessionLocked(ctx context.Context) {
	e.saveWarn("activeRole", e.store.SaveActiveRole(ctx, e.st.ActiveRole))
	e.saveWarn("currentAccount", e.store.SaveCurrentAccountID(ctx, e.st.CurrentAccountID))
}

// validateStruct maps validator failures onto ErrValidation.
func (e *Engine) validateStruct(v any) error {
	if err := e.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// snapshot returns a copy of the slice so callers can iterate without
// holding the engine lock. Elements are value copies; nested slices
// must not be mutated by callers.
func snapshot[T any](src []T) []T {
	if len(src) == 0 {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}
