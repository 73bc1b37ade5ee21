// Package models contains domain types for CrewDeck entities.
// Persistence lives behind the ports in internal/ports/secondary.
package models

// Role identifies a workforce role. Notifications target roles, not
// individual accounts.
type Role string

// Workforce roles
const (
	RoleGeneralService Role = "General Service"
	RoleMechanic       Role = "Mechanic"
	RoleManagement     Role = "Management"
	RoleSafetyPersonal Role = "Safety Personal"
	RoleAlignmentTech  Role = "Alignment Tech"
)

// AllRoles returns every known role.
func AllRoles() []Role {
	return []Role{
		RoleGeneralService,
		RoleMechanic,
		RoleManagement,
		RoleSafetyPersonal,
		RoleAlignmentTech,
	}
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleGeneralService, RoleMechanic, RoleManagement, RoleSafetyPersonal, RoleAlignmentTech:
		return true
	}
	return false
}
