package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// ChoreService defines the primary port for chores.
type ChoreService interface {
	// CreateChore creates a chore and notifies its audience.
	CreateChore(ctx context.Context, params CreateChoreParams) (*models.Chore, error)

	// ToggleChoreComplete toggles the current account in the chore's
	// completer set. The completing transition awards points once;
	// un-completing never claws them back.
	ToggleChoreComplete(ctx context.Context, id string) error

	// Chores returns a snapshot of the chore collection.
	Chores() []models.Chore
}

// CreateChoreParams contains parameters for creating a chore.
type CreateChoreParams struct {
	Title               string               `validate:"required"`
	Description         string
	Audience            models.ChoreAudience `validate:"required,oneof=Crew Management"`
	Points              int                  `validate:"gte=0"`
	AssignedToAccountID string
	DueAt               int64
}
