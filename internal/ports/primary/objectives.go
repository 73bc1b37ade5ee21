package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// ObjectiveService defines the primary port for objectives.
type ObjectiveService interface {
	// CreateObjective creates an open objective owned by the current
	// account and notifies the assigned role.
	CreateObjective(ctx context.Context, params CreateObjectiveParams) (*models.Objective, error)

	// ToggleObjectiveComplete toggles the current account in the
	// completer set. Completing moves open->completed and awards
	// points; reversing removes the completer but retracts neither
	// points nor status.
	ToggleObjectiveComplete(ctx context.Context, id string) error

	// ApproveObjective is Management-only. It moves the objective to
	// approved and awards the approver the objective's points, in
	// addition to any completion award.
	ApproveObjective(ctx context.Context, id string) error

	// Objectives returns a snapshot of the objective collection.
	Objectives() []models.Objective
}

// CreateObjectiveParams contains parameters for creating an objective.
type CreateObjectiveParams struct {
	Title               string      `validate:"required"`
	Description         string
	Points              int         `validate:"gte=0"`
	AssignedToRole      models.Role `validate:"required"`
	AssignedToAccountID string
	RequiresApproval    bool
	DueAt               int64
}
