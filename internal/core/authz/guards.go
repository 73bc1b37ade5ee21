// Package authz contains the pure authorization guards for privileged
// engine operations. Guards evaluate preconditions without side effects.
package authz

import (
	"fmt"

	"github.com/example/crewdeck/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanApproveObjective evaluates whether the role may approve objectives.
// Rules:
// - Only Management approves
func CanApproveObjective(role models.Role) GuardResult {
	if role != models.RoleManagement {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("only Management can approve objectives (current role: %s)", role),
		}
	}
	return GuardResult{Allowed: true}
}

// CanCreateSafetyRequirement evaluates whether the role may create
// safety requirements.
// Rules:
// - Only Safety Personal creates requirements
func CanCreateSafetyRequirement(role models.Role) GuardResult {
	if role != models.RoleSafetyPersonal {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("only Safety Personal can create safety requirements (current role: %s)", role),
		}
	}
	return GuardResult{Allowed: true}
}

// CanVerifySafety evaluates whether the role may append verifications.
// Rules:
// - Only Safety Personal verifies
func CanVerifySafety(role models.Role) GuardResult {
	if role != models.RoleSafetyPersonal {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("only Safety Personal can verify safety requirements (current role: %s)", role),
		}
	}
	return GuardResult{Allowed: true}
}

// CanToggleSafetyRequirement evaluates whether the role may flip the
// active flag on a requirement.
// Rules:
// - Only Safety Personal toggles
func CanToggleSafetyRequirement(role models.Role) GuardResult {
	if role != models.RoleSafetyPersonal {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("only Safety Personal can toggle safety requirements (current role: %s)", role),
		}
	}
	return GuardResult{Allowed: true}
}
