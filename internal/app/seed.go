package app

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// seedFixture is the YAML shape SeedFromFile accepts. Every section is
// optional; ids and timestamps are assigned by the engine on load.
type seedFixture struct {
	Accounts []seedAccount `yaml:"accounts"`
	Items    []seedItem    `yaml:"items"`
	Chores   []seedChore   `yaml:"chores"`
	Prizes   []seedPrize   `yaml:"prizes"`
}

type seedAccount struct {
	Name     string      `yaml:"name"`
	Role     models.Role `yaml:"role"`
	Password string      `yaml:"password"`
	Progress int         `yaml:"progress"`
}

type seedItem struct {
	Name         string              `yaml:"name"`
	Description  string              `yaml:"description"`
	Category     models.ItemCategory `yaml:"category"`
	InitialStock int                 `yaml:"initialStock"`
	CurrentStock int                 `yaml:"currentStock"`
}

type seedChore struct {
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Audience    models.ChoreAudience `yaml:"audience"`
	Points      int                  `yaml:"points"`
}

type seedPrize struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Category     string `yaml:"category"`
	UnlockAmount int    `yaml:"unlockAmount"`
	IsHidden     bool   `yaml:"isHidden"`
}

// SeedDemo replaces the state with the built-in demo fixture: one
// account per role, a stocked storefront, starter chores and a small
// prize ladder.
func (e *Engine) SeedDemo(ctx context.Context) error {
	fixture := seedFixture{
		Items: []seedItem{
			{Name: "Oil Filter", Description: "Standard spin-on filter", Category: models.CategoryMechanic, InitialStock: 40, CurrentStock: 32},
			{Name: "Wiper Blades", Description: "22 inch pair", Category: models.CategoryStore, InitialStock: 20, CurrentStock: 5},
			{Name: "Brake Cleaner", Description: "Aerosol can", Category: models.CategoryGeneralService, InitialStock: 24, CurrentStock: 24},
			{Name: "Alignment Shims", Description: "Assorted pack", Category: models.CategoryAlignments, InitialStock: 10, CurrentStock: 0},
			{Name: "Fuses", Description: "Mixed blade fuses", Category: models.CategoryElectrical, InitialStock: 100, CurrentStock: 61},
		},
		Chores: []seedChore{
			{Title: "Sweep the service bays", Audience: models.AudienceCrew, Points: 2},
			{Title: "Restock the coffee station", Audience: models.AudienceCrew, Points: 1},
			{Title: "Review weekly timesheets", Audience: models.AudienceManagement, Points: 3},
		},
		Prizes: []seedPrize{
			{Name: "Free Lunch", Description: "Lunch on the house", Category: "food", UnlockAmount: 10},
			{Name: "Early Friday", Description: "Leave two hours early", Category: "time", UnlockAmount: 25},
			{Name: "Mystery Box", Category: "fun", UnlockAmount: 50, IsHidden: true},
		},
	}
	for _, role := range models.AllRoles() {
		fixture.Accounts = append(fixture.Accounts, seedAccount{
			Name:     "Demo " + string(role),
			Role:     role,
			Password: "demo",
		})
	}

	return e.applySeed(ctx, fixture)
}

// SeedFromFile replaces the state with a YAML fixture file.
func (e *Engine) SeedFromFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	var fixture seedFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("%w: failed to parse seed file: %v", ErrValidation, err)
	}
	return e.applySeed(ctx, fixture)
}

func (e *Engine) applySeed(ctx context.Context, fixture seedFixture) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.st.Clear()
	now := e.nowMillis()

	for _, a := range fixture.Accounts {
		if !a.Role.Valid() {
			return fmt.Errorf("%w: unknown role %q in seed", ErrValidation, a.Role)
		}
		e.st.Accounts = append(e.st.Accounts, models.Account{
			ID:              e.newID(),
			Name:            a.Name,
			Role:            a.Role,
			Password:        a.Password,
			Progress:        a.Progress,
			Schedule:        models.DefaultSchedule(),
			Status:          models.StatusOnShift,
			BreakDefaultMin: models.DefaultBreakMinutes,
			LunchDefaultMin: models.DefaultLunchMinutes,
			FavoriteTabs:    models.DefaultFavoriteTabs(),
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	for _, it := range fixture.Items {
		e.st.Items = append(e.st.Items, models.Item{
			ID:           e.newID(),
			Name:         it.Name,
			Description:  it.Description,
			Category:     it.Category,
			InitialStock: it.InitialStock,
			CurrentStock: it.CurrentStock,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	for _, c := range fixture.Chores {
		e.st.Chores = append(e.st.Chores, models.Chore{
			ID:                    e.newID(),
			Title:                 c.Title,
			Description:           c.Description,
			Audience:              c.Audience,
			Points:                c.Points,
			CompletedByAccountIDs: []string{},
			CreatedAt:             now,
		})
	}
	for _, p := range fixture.Prizes {
		e.st.PrizeDefs = append(e.st.PrizeDefs, models.PrizeDefinition{
			ID:           e.newID(),
			Name:         p.Name,
			Description:  p.Description,
			Category:     p.Category,
			UnlockAmount: p.UnlockAmount,
			IsHidden:     p.IsHidden,
			Active:       true,
			CreatedAt:    now,
		})
	}

	e.saveAllLocked(ctx)
	e.log.WithField("accounts", len(e.st.Accounts)).Info("state seeded")
	return nil
}

// Reset clears every collection and storage key. The in-memory device
// id survives and is re-persisted so the installation keeps its
// identity.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	e.st.Clear()
	e.saveWarn("deviceId", e.store.SaveDeviceID(ctx, e.st.DeviceID))
	return nil
}

func (e *Engine) saveAllLocked(ctx context.Context) {
	e.saveItemsLocked(ctx)
	e.saveNotificationsLocked(ctx)
	e.saveRequestsLocked(ctx)
	e.saveAccountsLocked(ctx)
	e.saveChoresLocked(ctx)
	e.savePrizeDefsLocked(ctx)
	e.saveEmployeePrizesLocked(ctx)
	e.saveSwitchRequestsLocked(ctx)
	e.saveMessagesLocked(ctx)
	e.saveObjectivesLocked(ctx)
	e.saveSafetyRequirementsLocked(ctx)
	e.saveSessionLocked(ctx)
}

// Ensure Engine implements the maintenance port.
var _ primary.MaintenanceService = (*Engine)(nil)
