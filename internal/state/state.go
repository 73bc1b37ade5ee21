// Package state defines the explicit application-state struct the
// engine owns. There is no ambient singleton; tests construct isolated
// instances and hand them to an engine.
package state

import "github.com/example/crewdeck/internal/models"

// AppState holds every entity collection plus the session scalars.
// Collections are ordered newest-first; the engine prepends on create.
// All access goes through the engine, which serializes callers.
type AppState struct {
	DeviceID         string
	ActiveRole       models.Role
	CurrentAccountID string

	Items              []models.Item
	Notifications      []models.AppNotification
	Requests           []models.RestockRequest
	Accounts           []models.Account
	Chores             []models.Chore
	PrizeDefs          []models.PrizeDefinition
	EmployeePrizes     []models.EmployeePrize
	SwitchRequests     []models.SwitchRequest
	Messages           []models.Message
	Objectives         []models.Objective
	SafetyRequirements []models.SafetyRequirement
}

// New returns an empty application state.
func New() *AppState {
	return &AppState{}
}

// AccountByID returns the account with the given id, or nil.
func (s *AppState) AccountByID(id string) *models.Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// ItemByID returns the item with the given id, or nil.
func (s *AppState) ItemByID(id string) *models.Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// CurrentAccount returns the account the session points at, or nil.
func (s *AppState) CurrentAccount() *models.Account {
	if s.CurrentAccountID == "" {
		return nil
	}
	return s.AccountByID(s.CurrentAccountID)
}

// Clear drops every collection and session scalar except the device id,
// which survives a full reset.
func (s *AppState) Clear() {
	s.ActiveRole = ""
	s.CurrentAccountID = ""
	s.Items = nil
	s.Notifications = nil
	s.Requests = nil
	s.Accounts = nil
	s.Chores = nil
	s.PrizeDefs = nil
	s.EmployeePrizes = nil
	s.SwitchRequests = nil
	s.Messages = nil
	s.Objectives = nil
	s.SafetyRequirements = nil
}
