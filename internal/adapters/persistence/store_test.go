package persistence

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/example/crewdeck/internal/models"
)

// mockKV implements secondary.KV in memory for testing.
type mockKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string]string)}
}

func (m *mockKV) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *mockKV) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKV) Close() error { return nil }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore() (*Store, *mockKV) {
	kv := newMockKV()
	return NewStore(kv, testLogger()), kv
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	items := []models.Item{
		{ID: "i1", Name: "Oil Filter", Category: models.CategoryGeneralService, InitialStock: 100, CurrentStock: 22},
	}
	if err := store.SaveItems(ctx, items); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.SaveDeviceID(ctx, "dev-1"); err != nil {
		t.Fatalf("save device id failed: %v", err)
	}
	if err := store.SaveActiveRole(ctx, models.RoleMechanic); err != nil {
		t.Fatalf("save role failed: %v", err)
	}

	st, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(st.Items) != 1 || st.Items[0].Name != "Oil Filter" {
		t.Errorf("unexpected items %+v", st.Items)
	}
	if st.DeviceID != "dev-1" {
		t.Errorf("expected device id dev-1, got %q", st.DeviceID)
	}
	if st.ActiveRole != models.RoleMechanic {
		t.Errorf("expected Mechanic role, got %q", st.ActiveRole)
	}
}

func TestStore_CorruptBlobFallsBack(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	kv.data["items_v1"] = "{not json"
	kv.data["chores_v1"] = `{"schemaVersion":1,"data":"not an array"}`

	st, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("expected corrupt blobs to be tolerated, got %v", err)
	}
	if len(st.Items) != 0 {
		t.Errorf("expected empty items fallback, got %+v", st.Items)
	}
	if len(st.Chores) != 0 {
		t.Errorf("expected empty chores fallback, got %+v", st.Chores)
	}
}

func TestStore_MissingKeysLoadEmpty(t *testing.T) {
	store, _ := newTestStore()

	st, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(st.Accounts) != 0 || st.DeviceID != "" || st.CurrentAccountID != "" {
		t.Errorf("expected pristine empty state, got %+v", st)
	}
}

func TestStore_KVReadFailureIsFatalForScalars(t *testing.T) {
	store, kv := newTestStore()
	kv.getErr = errors.New("disk gone")

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected error when the KV itself fails")
	}
}

func TestStore_ClearingScalars(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	if err := store.SaveCurrentAccountID(ctx, "acc-1"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.SaveCurrentAccountID(ctx, ""); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, ok := kv.data["current_account_v1"]; ok {
		t.Error("expected key removed when cleared")
	}
}

func TestStore_Reset(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	store.SaveItems(ctx, []models.Item{{ID: "i1"}})
	store.SaveDeviceID(ctx, "dev-1")

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(kv.data) != 0 {
		t.Errorf("expected all keys removed, still have %v", kv.data)
	}
}

func TestStore_EnvelopeCarriesVersion(t *testing.T) {
	store, kv := newTestStore()
	ctx := context.Background()

	if err := store.SaveMessages(ctx, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	blob := kv.data["messages_v1"]
	if blob != `{"schemaVersion":1,"data":[]}` {
		t.Errorf("unexpected envelope %q", blob)
	}
}
