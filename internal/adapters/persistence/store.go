// Package persistence implements the StateStore port as JSON blobs in
// a key-value store, one key per entity collection. Each blob carries
// a schema-version envelope; unparsable blobs fall back to an empty
// collection instead of failing the load.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/secondary"
	"github.com/example/crewdeck/internal/state"
)

// SchemaVersion tags every stored collection blob. The original store
// had no version field; it is added here so future migrations have
// something to key off.
const SchemaVersion = 1

// Collection keys, one per entity collection, plus session scalars.
const (
	keyItems              = "items_v1"
	keyNotifications      = "notifs_v1"
	keyRequests           = "reqs_v1"
	keyAccounts           = "accounts_v1"
	keyChores             = "chores_v1"
	keyPrizeDefs          = "prizes_v1"
	keyEmployeePrizes     = "employee_prizes_v1"
	keySwitchRequests     = "switches_v1"
	keyMessages           = "messages_v1"
	keyObjectives         = "objectives_v1"
	keySafetyRequirements = "safety_requirements_v1"

	keyDeviceID         = "device_id_v1"
	keyRole             = "role_v1"
	keyCurrentAccountID = "current_account_v1"
)

func allKeys() []string {
	return []string{
		keyItems, keyNotifications, keyRequests, keyAccounts, keyChores,
		keyPrizeDefs, keyEmployeePrizes, keySwitchRequests, keyMessages,
		keyObjectives, keySafetyRequirements,
		keyDeviceID, keyRole, keyCurrentAccountID,
	}
}

// envelope wraps every collection blob with its schema version.
type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Data          json.RawMessage `json:"data"`
}

// Store implements secondary.StateStore over a KV port.
type Store struct {
	kv  secondary.KV
	log *logrus.Logger
}

// NewStore creates a state store over the given KV.
func NewStore(kv secondary.KV, log *logrus.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load reads every collection and session scalar into a fresh state.
// Corrupt blobs are logged and replaced by empty collections.
func (s *Store) Load(ctx context.Context) (*state.AppState, error) {
	st := state.New()

	st.Items = loadCollection[models.Item](ctx, s, keyItems)
	st.Notifications = loadCollection[models.AppNotification](ctx, s, keyNotifications)
	st.Requests = loadCollection[models.RestockRequest](ctx, s, keyRequests)
	st.Accounts = loadCollection[models.Account](ctx, s, keyAccounts)
	st.Chores = loadCollection[models.Chore](ctx, s, keyChores)
	st.PrizeDefs = loadCollection[models.PrizeDefinition](ctx, s, keyPrizeDefs)
	st.EmployeePrizes = loadCollection[models.EmployeePrize](ctx, s, keyEmployeePrizes)
	st.SwitchRequests = loadCollection[models.SwitchRequest](ctx, s, keySwitchRequests)
	st.Messages = loadCollection[models.Message](ctx, s, keyMessages)
	st.Objectives = loadCollection[models.Objective](ctx, s, keyObjectives)
	st.SafetyRequirements = loadCollection[models.SafetyRequirement](ctx, s, keySafetyRequirements)

	deviceID, _, err := s.kv.Get(ctx, keyDeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load device id: %w", err)
	}
	st.DeviceID = deviceID

	role, _, err := s.kv.Get(ctx, keyRole)
	if err != nil {
		return nil, fmt.Errorf("failed to load active role: %w", err)
	}
	st.ActiveRole = models.Role(role)

	accountID, _, err := s.kv.Get(ctx, keyCurrentAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current account: %w", err)
	}
	st.CurrentAccountID = accountID

	return st, nil
}

// loadCollection unmarshals one collection blob, falling back to nil on
// a missing key, a read failure or corrupt JSON.
func loadCollection[T any](ctx context.Context, s *Store, key string) []T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to read collection, using empty fallback")
		return nil
	}
	if !ok {
		return nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("corrupt collection blob, using empty fallback")
		return nil
	}

	var out []T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("corrupt collection data, using empty fallback")
		return nil
	}
	return out
}

// saveCollection marshals one collection into its versioned envelope.
func saveCollection[T any](ctx context.Context, s *Store, key string, value []T) error {
	if value == nil {
		value = []T{}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	blob, err := json.Marshal(envelope{SchemaVersion: SchemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("failed to wrap %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(blob)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *Store) SaveItems(ctx context.Context, items []models.Item) error {
	return saveCollection(ctx, s, keyItems, items)
}

func (s *Store) SaveNotifications(ctx context.Context, notifs []models.AppNotification) error {
	return saveCollection(ctx, s, keyNotifications, notifs)
}

func (s *Store) SaveRequests(ctx context.Context, reqs []models.RestockRequest) error {
	return saveCollection(ctx, s, keyRequests, reqs)
}

func (s *Store) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	return saveCollection(ctx, s, keyAccounts, accounts)
}

func (s *Store) SaveChores(ctx context.Context, chores []models.Chore) error {
	return saveCollection(ctx, s, keyChores, chores)
}

func (s *Store) SavePrizeDefs(ctx context.Context, defs []models.PrizeDefinition) error {
	return saveCollection(ctx, s, keyPrizeDefs, defs)
}

func (s *Store) SaveEmployeePrizes(ctx context.Context, prizes []models.EmployeePrize) error {
	return saveCollection(ctx, s, keyEmployeePrizes, prizes)
}

func (s *Store) SaveSwitchRequests(ctx context.Context, switches []models.SwitchRequest) error {
	return saveCollection(ctx, s, keySwitchRequests, switches)
}

func (s *Store) SaveMessages(ctx context.Context, msgs []models.Message) error {
	return saveCollection(ctx, s, keyMessages, msgs)
}

func (s *Store) SaveObjectives(ctx context.Context, objectives []models.Objective) error {
	return saveCollection(ctx, s, keyObjectives, objectives)
}

func (s *Store) SaveSafetyRequirements(ctx context.Context, reqs []models.SafetyRequirement) error {
	return saveCollection(ctx, s, keySafetyRequirements, reqs)
}

// SaveDeviceID stores the device id as a raw scalar.
func (s *Store) SaveDeviceID(ctx context.Context, id string) error {
	return s.kv.Set(ctx, keyDeviceID, id)
}

// SaveActiveRole stores the role, or clears the key for an empty role.
func (s *Store) SaveActiveRole(ctx context.Context, role models.Role) error {
	if role == "" {
		return s.kv.Delete(ctx, keyRole)
	}
	return s.kv.Set(ctx, keyRole, string(role))
}

// SaveCurrentAccountID stores the session account id, or clears the
// key for an empty id.
func (s *Store) SaveCurrentAccountID(ctx context.Context, id string) error {
	if id == "" {
		return s.kv.Delete(ctx, keyCurrentAccountID)
	}
	return s.kv.Set(ctx, keyCurrentAccountID, id)
}

// Reset removes every stored key.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range allKeys() {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	return nil
}

// Ensure Store implements the interface.
var _ secondary.StateStore = (*Store)(nil)
