package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

func TestStockUpdateBandNotifications(t *testing.T) {
	tests := []struct {
		name      string
		initial   int
		before    int
		after     int
		wantType  models.NotificationType
		wantCount int
	}{
		{name: "full to low", initial: 100, before: 80, after: 10, wantType: models.NotifLow, wantCount: 1},
		{name: "medium to low", initial: 100, before: 50, after: 20, wantType: models.NotifLow, wantCount: 1},
		{name: "low to lower stays quiet", initial: 100, before: 20, after: 10, wantType: models.NotifLow, wantCount: 0},
		{name: "full to empty", initial: 100, before: 80, after: 0, wantType: models.NotifEmpty, wantCount: 1},
		{name: "low to empty", initial: 100, before: 10, after: 0, wantType: models.NotifEmpty, wantCount: 1},
		{name: "empty stays empty", initial: 100, before: 0, after: 0, wantType: models.NotifEmpty, wantCount: 0},
		{name: "restock up is quiet", initial: 100, before: 10, after: 90, wantType: models.NotifLow, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t)
			ctx := context.Background()
			item := mustAddItem(t, e, "Oil Filter", tt.initial, tt.before)

			if err := e.UpdateStock(ctx, item.ID, tt.after); err != nil {
				t.Fatalf("UpdateStock: %v", err)
			}
			if got := notifCount(e, tt.wantType); got != tt.wantCount {
				t.Errorf("%s notifications = %d, want %d", tt.wantType, got, tt.wantCount)
			}
		})
	}
}

func TestEmptyNotificationIncludesManagement(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, e, "Shims", 10, 5)

	if err := e.UpdateStock(ctx, item.ID, 0); err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}

	notifs := e.NotificationsFor(models.RoleManagement)
	if len(notifs) != 1 || notifs[0].Type != models.NotifEmpty {
		t.Fatalf("management feed = %v, want one empty notification", notifs)
	}
	// The crew roles see it too.
	for _, role := range []models.Role{models.RoleGeneralService, models.RoleMechanic} {
		if len(e.NotificationsFor(role)) != 1 {
			t.Errorf("%s feed empty, want the empty notification", role)
		}
	}
}

func TestLowNotificationSkipsManagement(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, e, "Shims", 10, 8)

	if err := e.UpdateStock(ctx, item.ID, 2); err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if n := len(e.NotificationsFor(models.RoleManagement)); n != 0 {
		t.Errorf("management feed = %d entries, want 0 for a low crossing", n)
	}
	if n := len(e.NotificationsFor(models.RoleMechanic)); n != 1 {
		t.Errorf("mechanic feed = %d entries, want 1", n)
	}
}

func TestRestockThenDepleteNotifiesAgain(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, e, "Wipers", 20, 15)

	if err := e.UpdateStock(ctx, item.ID, 3); err != nil {
		t.Fatalf("deplete: %v", err)
	}
	if err := e.UpdateStock(ctx, item.ID, 18); err != nil {
		t.Fatalf("restock: %v", err)
	}
	if err := e.UpdateStock(ctx, item.ID, 2); err != nil {
		t.Fatalf("deplete again: %v", err)
	}
	if got := notifCount(e, models.NotifLow); got != 2 {
		t.Errorf("low notifications = %d, want 2 (one per crossing)", got)
	}
}

func TestZeroInitialStockIsEmptyOnlyAtZero(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, e, "Odd Part", 0, 5)

	// With no initial stock the percentage is pinned to zero, so any
	// positive stock sits in the low band and zero is empty.
	if err := e.UpdateStock(ctx, item.ID, 0); err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if got := notifCount(e, models.NotifEmpty); got != 1 {
		t.Errorf("empty notifications = %d, want 1", got)
	}
}

func TestDeleteItemKeepsDanglingRequests(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, e, "Fuses", 100, 50)

	if _, err := e.CreateRequest(ctx, primary.CreateRequestParams{ItemID: item.ID, Quantity: 10}); err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	if err := e.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	if n := len(e.Items()); n != 0 {
		t.Errorf("items = %d, want 0", n)
	}
	reqs := e.Requests()
	if len(reqs) != 1 || reqs[0].ItemID != item.ID {
		t.Errorf("requests = %v, want one with the dangling item id", reqs)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if err := e.UpdateStock(context.Background(), "missing", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAddItemValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	_, err := e.AddItem(context.Background(), primary.CreateItemParams{
		Category: models.CategoryStore, InitialStock: 10, CurrentStock: 10,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("nameless item: err = %v, want ErrValidation", err)
	}
}

func TestItemsAreNewestFirst(t *testing.T) {
	e, _, _ := newTestEngine(t)
	mustAddItem(t, e, "first", 10, 10)
	mustAddItem(t, e, "second", 10, 10)

	items := e.Items()
	if len(items) != 2 || items[0].Name != "second" {
		t.Errorf("items = %v, want newest first", items)
	}
}
