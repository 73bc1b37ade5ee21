package app

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
	"github.com/example/crewdeck/internal/ports/secondary"
	"github.com/example/crewdeck/internal/state"
)

// fakeStore is an in-memory StateStore. It records how often each
// collection was saved so tests can assert on persistence behavior.
type fakeStore struct {
	st       *state.AppState
	saves    map[string]int
	resets   int
	deviceID string
}

func newFakeStore() *fakeStore {
	return &fakeStore{st: state.New(), saves: map[string]int{}}
}

func (f *fakeStore) Load(ctx context.Context) (*state.AppState, error) {
	return f.st, nil
}

func (f *fakeStore) SaveItems(ctx context.Context, items []models.Item) error {
	f.saves["items"]++
	return nil
}

func (f *fakeStore) SaveNotifications(ctx context.Context, notifs []models.AppNotification) error {
	f.saves["notifications"]++
	return nil
}

func (f *fakeStore) SaveRequests(ctx context.Context, reqs []models.RestockRequest) error {
	f.saves["requests"]++
	return nil
}

func (f *fakeStore) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	f.saves["accounts"]++
	return nil
}

func (f *fakeStore) SaveChores(ctx context.Context, chores []models.Chore) error {
	f.saves["chores"]++
	return nil
}

func (f *fakeStore) SavePrizeDefs(ctx context.Context, defs []models.PrizeDefinition) error {
	f.saves["prizeDefs"]++
	return nil
}

func (f *fakeStore) SaveEmployeePrizes(ctx context.Context, prizes []models.EmployeePrize) error {
	f.saves["employeePrizes"]++
	return nil
}

func (f *fakeStore) SaveSwitchRequests(ctx context.Context, switches []models.SwitchRequest) error {
	f.saves["switchRequests"]++
	return nil
}

func (f *fakeStore) SaveMessages(ctx context.Context, msgs []models.Message) error {
	f.saves["messages"]++
	return nil
}

func (f *fakeStore) SaveObjectives(ctx context.Context, objectives []models.Objective) error {
	f.saves["objectives"]++
	return nil
}

func (f *fakeStore) SaveSafetyRequirements(ctx context.Context, reqs []models.SafetyRequirement) error {
	f.saves["safetyRequirements"]++
	return nil
}

func (f *fakeStore) SaveDeviceID(ctx context.Context, id string) error {
	f.deviceID = id
	return nil
}

func (f *fakeStore) SaveActiveRole(ctx context.Context, role models.Role) error {
	f.saves["activeRole"]++
	return nil
}

func (f *fakeStore) SaveCurrentAccountID(ctx context.Context, id string) error {
	f.saves["currentAccount"]++
	return nil
}

func (f *fakeStore) Reset(ctx context.Context) error {
	f.resets++
	return nil
}

var _ secondary.StateStore = (*fakeStore)(nil)

// testClock is an advanceable clock injected into test engines.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestEngine returns an engine with a silenced logger, a sequential
// id generator and a fixed, advanceable clock.
func newTestEngine(t *testing.T) (*Engine, *fakeStore, *testClock) {
	t.Helper()

	fs := newFakeStore()
	log := logrus.New()
	log.SetOutput(io.Discard)

	e, err := NewEngine(context.Background(), fs, log)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	clock := &testClock{t: time.UnixMilli(1_700_000_000_000)}
	e.now = clock.now

	seq := 0
	e.newID = func() string {
		seq++
		return fmt.Sprintf("id-%03d", seq)
	}

	return e, fs, clock
}

func mustLogin(t *testing.T, e *Engine, role models.Role, name string) *models.Account {
	t.Helper()
	acc, err := e.LoginOrCreateAccount(context.Background(), primary.LoginParams{
		Role: role, Name: name, Password: "pw",
	})
	if err != nil {
		t.Fatalf("LoginOrCreateAccount(%s, %s): %v", role, name, err)
	}
	return acc
}

func mustAddItem(t *testing.T, e *Engine, name string, initial, current int) *models.Item {
	t.Helper()
	item, err := e.AddItem(context.Background(), primary.CreateItemParams{
		Name: name, Category: models.CategoryStore,
		InitialStock: initial, CurrentStock: current,
	})
	if err != nil {
		t.Fatalf("AddItem(%s): %v", name, err)
	}
	return item
}

// notifCount counts feed entries of the given type.
func notifCount(e *Engine, typ models.NotificationType) int {
	n := 0
	for _, notif := range e.Notifications() {
		if notif.Type == typ {
			n++
		}
	}
	return n
}
