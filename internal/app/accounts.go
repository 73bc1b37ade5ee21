package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// LoginOrCreateAccount resolves the (role, name) pair
// case-insensitively. An existing account requires an exact password
// match; otherwise the call fails without touching any collection.
// There is no lockout or backoff; trust here is device binding only.
// On success the device is rebound to the account (last login wins)
// and defaulted fields are backfilled. A miss creates a fresh account
// with the default schedule and zero progress.
func (e *Engine) LoginOrCreateAccount(ctx context.Context, params primary.LoginParams) (*models.Account, error) {
	if err := e.validateStruct(params); err != nil {
		return nil, err
	}
	if !params.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, params.Role)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	for i := range e.st.Accounts {
		acc := &e.st.Accounts[i]
		if acc.Role != params.Role || !strings.EqualFold(acc.Name, params.Name) {
			continue
		}
		if acc.Password != params.Password {
			e.log.WithFields(logrus.Fields{"role": params.Role, "name": params.Name}).
				Warn("login rejected: wrong password")
			return nil, fmt.Errorf("wrong password for %s/%s: %w", params.Role, params.Name, ErrLoginFailed)
		}

		acc.DeviceID = e.st.DeviceID
		backfillAccountDefaults(acc)
		acc.UpdatedAt = e.nowMillis()

		e.st.CurrentAccountID = acc.ID
		e.st.ActiveRole = acc.Role
		e.saveAccountsLocked(ctx)
		e.saveSessionLocked(ctx)

		out := *acc
		return &out, nil
	}

	now := e.nowMillis()
	acc := models.Account{
		ID:              e.newID(),
		DeviceID:        e.st.DeviceID,
		Name:            params.Name,
		Role:            params.Role,
		Password:        params.Password,
		Progress:        0,
		Schedule:        models.DefaultSchedule(),
		Status:          models.StatusOnShift,
		BreakDefaultMin: models.DefaultBreakMinutes,
		LunchDefaultMin: models.DefaultLunchMinutes,
		FavoriteTabs:    models.DefaultFavoriteTabs(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	e.st.Accounts = append([]models.Account{acc}, e.st.Accounts...)
	e.st.CurrentAccountID = acc.ID
	e.st.ActiveRole = acc.Role
	e.saveAccountsLocked(ctx)
	e.saveSessionLocked(ctx)

	return &acc, nil
}

// AutoLoginForRole succeeds only when an account matches both the role
// and the current device id. No password is asked for.
func (e *Engine) AutoLoginForRole(ctx context.Context, role models.Role) (*models.Account, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	for i := range e.st.Accounts {
		acc := &e.st.Accounts[i]
		if acc.Role != role || acc.DeviceID != e.st.DeviceID {
			continue
		}
		e.st.CurrentAccountID = acc.ID
		e.st.ActiveRole = role
		e.saveSessionLocked(ctx)
		out := *acc
		return &out, nil
	}

	return nil, fmt.Errorf("no %s account bound to this device: %w", role, ErrLoginFailed)
}

// SignOut clears the current account and active role.
func (e *Engine) SignOut(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.st.CurrentAccountID = ""
	e.st.ActiveRole = ""
	e.saveSessionLocked(ctx)
	return nil
}

// UpdateAccount applies a partial profile update. Progress is not
// patchable: it moves only through point awards, which keeps it
// monotonically non-decreasing.
func (e *Engine) UpdateAccount(ctx context.Context, id string, patch primary.AccountPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.AccountByID(id)
	if acc == nil {
		return fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if patch.FavoriteTabs != nil && len(*patch.FavoriteTabs) > models.MaxFavoriteTabs {
		return fmt.Errorf("%w: at most %d favorite tabs", ErrValidation, models.MaxFavoriteTabs)
	}

	applyAccountPatch(acc, patch)
	acc.UpdatedAt = e.nowMillis()
	e.saveAccountsLocked(ctx)
	return nil
}

// StartBreak puts the current account on break until now+minutes.
// Zero minutes falls back to the account's configured default.
func (e *Engine) StartBreak(ctx context.Context, minutes int) error {
	return e.startTimedStatus(ctx, models.StatusBreak, minutes)
}

// StartLunch puts the current account on lunch until now+minutes.
func (e *Engine) StartLunch(ctx context.Context, minutes int) error {
	return e.startTimedStatus(ctx, models.StatusLunch, minutes)
}

func (e *Engine) startTimedStatus(ctx context.Context, status models.EmployeeStatus, minutes int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return ErrNoSession
	}

	if minutes <= 0 {
		switch status {
		case models.StatusBreak:
			minutes = acc.BreakDefaultMin
			if minutes <= 0 {
				minutes = models.DefaultBreakMinutes
			}
		case models.StatusLunch:
			minutes = acc.LunchDefaultMin
			if minutes <= 0 {
				minutes = models.DefaultLunchMinutes
			}
		}
	}

	acc.Status = status
	acc.StatusUntil = e.nowMillis() + int64(minutes)*60*1000
	acc.UpdatedAt = e.nowMillis()
	e.saveAccountsLocked(ctx)
	return nil
}

// EndStatus manually flips the current account back on shift, the same
// transition the expiry sweep applies.
func (e *Engine) EndStatus(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	acc := e.st.CurrentAccount()
	if acc == nil {
		return ErrNoSession
	}

	acc.Status = models.StatusOnShift
	acc.StatusUntil = 0
	acc.UpdatedAt = e.nowMillis()
	e.saveAccountsLocked(ctx)
	return nil
}

// ExpireStatuses flips every account whose break or lunch timer has
// elapsed back on shift, clearing the timer. Called by the periodic
// sweeper; safe to call from anywhere.
func (e *Engine) ExpireStatuses(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.nowMillis()
	changed := 0
	for i := range e.st.Accounts {
		acc := &e.st.Accounts[i]
		if (acc.Status == models.StatusBreak || acc.Status == models.StatusLunch) &&
			acc.StatusUntil != 0 && acc.StatusUntil <= now {
			acc.Status = models.StatusOnShift
			acc.StatusUntil = 0
			acc.UpdatedAt = now
			changed++
		}
	}
	if changed > 0 {
		e.saveAccountsLocked(ctx)
	}
	return changed
}

// CurrentAccount returns a copy of the session account, or nil.
func (e *Engine) CurrentAccount() *models.Account {
	e.mu.Lock()
	defer e.mu.Unlock()

	acc := e.st.CurrentAccount()
	if acc == nil {
		return nil
	}
	out := *acc
	return &out
}

// ActiveRole returns the session role, or empty.
func (e *Engine) ActiveRole() models.Role {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.ActiveRole
}

// DeviceID returns the persistent device identifier.
func (e *Engine) DeviceID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.DeviceID
}

// Accounts returns a snapshot of the account collection.
func (e *Engine) Accounts() []models.Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.Accounts)
}

// backfillAccountDefaults fills fields older accounts may predate.
func backfillAccountDefaults(acc *models.Account) {
	if acc.Status == "" {
		acc.Status = models.StatusOnShift
	}
	if acc.BreakDefaultMin == 0 {
		acc.BreakDefaultMin = models.DefaultBreakMinutes
	}
	if acc.LunchDefaultMin == 0 {
		acc.LunchDefaultMin = models.DefaultLunchMinutes
	}
	if len(acc.FavoriteTabs) == 0 {
		acc.FavoriteTabs = models.DefaultFavoriteTabs()
	}
}

func applyAccountPatch(acc *models.Account, patch primary.AccountPatch) {
	if patch.Name != nil {
		acc.Name = *patch.Name
	}
	if patch.Password != nil {
		acc.Password = *patch.Password
	}
	if patch.Email != nil {
		acc.Email = *patch.Email
	}
	if patch.Phone != nil {
		acc.Phone = *patch.Phone
	}
	if patch.AvatarURI != nil {
		acc.AvatarURI = *patch.AvatarURI
	}
	if patch.Schedule != nil {
		acc.Schedule = *patch.Schedule
	}
	if patch.BreakDefaultMin != nil {
		acc.BreakDefaultMin = *patch.BreakDefaultMin
	}
	if patch.LunchDefaultMin != nil {
		acc.LunchDefaultMin = *patch.LunchDefaultMin
	}
	if patch.FavoriteTabs != nil {
		acc.FavoriteTabs = *patch.FavoriteTabs
	}
}

// Ensure Engine implements the account port.
var _ primary.AccountService = (*Engine)(nil)
