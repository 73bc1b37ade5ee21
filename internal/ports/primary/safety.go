package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// SafetyService defines the primary port for safety requirements.
// Creation, verification and active-toggling are restricted to the
// Safety Personal role.
type SafetyService interface {
	// CreateSafetyRequirement creates a requirement targeting a role.
	CreateSafetyRequirement(ctx context.Context, params CreateSafetyRequirementParams) (*models.SafetyRequirement, error)

	// VerifySafety appends a verification for an account. The history
	// is append-only; there is no edit or delete.
	VerifySafety(ctx context.Context, requirementID, forAccountID, note string) error

	// SetSafetyRequirementActive flips the active flag.
	SetSafetyRequirementActive(ctx context.Context, requirementID string, active bool) error

	// SafetyRequirements returns a snapshot of the requirements.
	SafetyRequirements() []models.SafetyRequirement
}

// CreateSafetyRequirementParams contains parameters for a requirement.
// Active defaults to true when nil.
type CreateSafetyRequirementParams struct {
	Title       string      `validate:"required"`
	Description string
	TargetRole  models.Role `validate:"required"`
	Active      *bool
}
