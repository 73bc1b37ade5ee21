package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// AccountService defines the primary port for identity and session
// operations. Trust is device-binding only: this is the original
// design's deliberately weak local auth model, documented rather than
// strengthened.
type AccountService interface {
	// LoginOrCreateAccount resolves the (role, name) pair
	// case-insensitively. An existing account requires an exact
	// password match; a miss creates a fresh account with the default
	// schedule and zero progress. Success rebinds the device to the
	// account (last login wins) and backfills defaulted fields.
	LoginOrCreateAccount(ctx context.Context, params LoginParams) (*models.Account, error)

	// AutoLoginForRole succeeds only when an account matches both the
	// role and the current device id. No password is required.
	AutoLoginForRole(ctx context.Context, role models.Role) (*models.Account, error)

	// SignOut clears the current account and active role.
	SignOut(ctx context.Context) error

	// UpdateAccount applies a partial profile update. Progress is not
	// patchable; it only moves through point awards.
	UpdateAccount(ctx context.Context, id string, patch AccountPatch) error

	// StartBreak puts the current account on break until now+minutes.
	// Zero minutes uses the account's configured default.
	StartBreak(ctx context.Context, minutes int) error

	// StartLunch puts the current account on lunch until now+minutes.
	StartLunch(ctx context.Context, minutes int) error

	// EndStatus manually flips the current account back on shift.
	EndStatus(ctx context.Context) error

	// ExpireStatuses flips every account whose break or lunch timer
	// has elapsed back on shift. Returns how many accounts changed.
	ExpireStatuses(ctx context.Context) int

	// CurrentAccount returns the session account, or nil.
	CurrentAccount() *models.Account

	// ActiveRole returns the session role, or empty.
	ActiveRole() models.Role

	// DeviceID returns the persistent device identifier.
	DeviceID() string

	// Accounts returns a snapshot of the account collection.
	Accounts() []models.Account
}

// LoginParams contains credentials for login-or-create.
type LoginParams struct {
	Role     models.Role `validate:"required"`
	Name     string      `validate:"required"`
	Password string      `validate:"required"`
}

// AccountPatch is a partial profile update. Nil fields are untouched.
type AccountPatch struct {
	Name            *string
	Password        *string
	Email           *string
	Phone           *string
	AvatarURI       *string
	Schedule        *models.WeeklySchedule
	BreakDefaultMin *int
	LunchDefaultMin *int
	FavoriteTabs    *[]models.TabKey
}
