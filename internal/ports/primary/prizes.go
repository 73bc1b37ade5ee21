package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// PrizeService defines the primary port for prize definitions, awards
// and gift transfers.
type PrizeService interface {
	// CreatePrizeDef creates a prize definition and announces it to
	// every role. Active defaults to true.
	CreatePrizeDef(ctx context.Context, params CreatePrizeDefParams) (*models.PrizeDefinition, error)

	// UpdatePrizeDef applies a partial update to a definition.
	UpdatePrizeDef(ctx context.Context, id string, patch PrizeDefPatch) error

	// AwardUnlockedPrizes creates awards for every active definition
	// the account's progress now satisfies. Re-entrant safe: the
	// existing-award lookup makes a repeat call a no-op.
	AwardUnlockedPrizes(ctx context.Context, accountID string) error

	// GiftPrize schedules an ownership transfer of an award.
	GiftPrize(ctx context.Context, employeePrizeID, toAccountID string, deliveryAt int64) error

	// DeliverDueGifts transfers every pending gift whose delivery time
	// has elapsed. Exactly-once per gift, gated by the delivered flag.
	// Returns how many gifts were delivered.
	DeliverDueGifts(ctx context.Context) int

	// PrizeDefs returns a snapshot of the definitions.
	PrizeDefs() []models.PrizeDefinition

	// EmployeePrizes returns a snapshot of the awards.
	EmployeePrizes() []models.EmployeePrize
}

// CreatePrizeDefParams contains parameters for a prize definition.
// Active defaults to true when nil.
type CreatePrizeDefParams struct {
	Name         string `validate:"required"`
	Description  string
	Category     string
	UnlockAmount int    `validate:"gte=0"`
	IsHidden     bool
	Active       *bool
}

// PrizeDefPatch is a partial update of a definition.
type PrizeDefPatch struct {
	Name         *string
	Description  *string
	Category     *string
	UnlockAmount *int
	IsHidden     *bool
	Active       *bool
}
