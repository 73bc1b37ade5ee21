// Package secondary defines the driven ports of the engine.
// These are the interfaces through which the application reaches
// external systems (durable storage).
package secondary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/state"
)

// KV is the durable key-value port backing the state store. Values are
// opaque text blobs; one logical record per key.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores the value under the key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying store.
	Close() error
}

// StateStore persists entity collections, one record per collection.
// There is no cross-collection transaction: a crash between two saves
// can leave related collections inconsistent. That relaxed guarantee
// is part of the contract, not an accident.
type StateStore interface {
	// Load reads every collection and session scalar. Unparsable blobs
	// fall back to empty collections rather than failing the load.
	Load(ctx context.Context) (*state.AppState, error)

	SaveItems(ctx context.Context, items []models.Item) error
	SaveNotifications(ctx context.Context, notifs []models.AppNotification) error
	SaveRequests(ctx context.Context, reqs []models.RestockRequest) error
	SaveAccounts(ctx context.Context, accounts []models.Account) error
	SaveChores(ctx context.Context, chores []models.Chore) error
	SavePrizeDefs(ctx context.Context, defs []models.PrizeDefinition) error
	SaveEmployeePrizes(ctx context.Context, prizes []models.EmployeePrize) error
	SaveSwitchRequests(ctx context.Context, switches []models.SwitchRequest) error
	SaveMessages(ctx context.Context, msgs []models.Message) error
	SaveObjectives(ctx context.Context, objectives []models.Objective) error
	SaveSafetyRequirements(ctx context.Context, reqs []models.SafetyRequirement) error

	SaveDeviceID(ctx context.Context, id string) error
	SaveActiveRole(ctx context.Context, role models.Role) error
	SaveCurrentAccountID(ctx context.Context, id string) error

	// Reset removes every stored key, including the device id.
	Reset(ctx context.Context) error
}
