package authz

import (
	"testing"

	"github.com/example/crewdeck/internal/models"
)

func TestCanApproveObjective(t *testing.T) {
	tests := []struct {
		role    models.Role
		allowed bool
	}{
		{models.RoleManagement, true},
		{models.RoleGeneralService, false},
		{models.RoleMechanic, false},
		{models.RoleSafetyPersonal, false},
		{models.RoleAlignmentTech, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			result := CanApproveObjective(tt.role)
			if result.Allowed != tt.allowed {
				t.Errorf("CanApproveObjective(%s) = %v, want %v", tt.role, result.Allowed, tt.allowed)
			}
			if !tt.allowed && result.Error() == nil {
				t.Error("expected error for disallowed role")
			}
		})
	}
}

func TestSafetyGuards(t *testing.T) {
	guards := map[string]func(models.Role) GuardResult{
		"create": CanCreateSafetyRequirement,
		"verify": CanVerifySafety,
		"toggle": CanToggleSafetyRequirement,
	}

	for name, guard := range guards {
		t.Run(name, func(t *testing.T) {
			if !guard(models.RoleSafetyPersonal).Allowed {
				t.Error("expected Safety Personal to be allowed")
			}
			for _, role := range []models.Role{models.RoleManagement, models.RoleMechanic, models.RoleGeneralService} {
				result := guard(role)
				if result.Allowed {
					t.Errorf("expected %s to be refused", role)
				}
				if result.Error() == nil {
					t.Errorf("expected error for %s", role)
				}
			}
		})
	}
}
