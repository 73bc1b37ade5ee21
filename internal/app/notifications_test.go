package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/crewdeck/internal/models"
)

func TestMarkNotificationReadIsRoleScoped(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, e, "Shims", 10, 5)
	if err := e.UpdateStock(ctx, item.ID, 0); err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	notif := e.Notifications()[0]

	mustLogin(t, e, models.RoleMechanic, "Sam")
	if err := e.MarkNotificationRead(ctx, notif.ID); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}

	got := e.Notifications()[0]
	if !got.ReadByRole(models.RoleMechanic) {
		t.Errorf("mechanic read receipt missing")
	}
	if got.ReadByRole(models.RoleManagement) {
		t.Errorf("management marked read, want unread")
	}

	// Repeat reads do not duplicate the receipt.
	if err := e.MarkNotificationRead(ctx, notif.ID); err != nil {
		t.Fatalf("second MarkNotificationRead: %v", err)
	}
	if n := len(e.Notifications()[0].ReadBy); n != 1 {
		t.Errorf("readBy = %d entries, want 1", n)
	}
}

func TestMarkNotificationReadWithoutSessionFallsBack(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, e, "Shims", 10, 5)
	if err := e.UpdateStock(ctx, item.ID, 0); err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	notif := e.Notifications()[0]

	if err := e.MarkNotificationRead(ctx, notif.ID); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if !e.Notifications()[0].ReadByRole(models.RoleGeneralService) {
		t.Errorf("general service fallback receipt missing")
	}
}

func TestMarkNotificationReadNotFound(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if err := e.MarkNotificationRead(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestNotificationsForFiltersAndOrders(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	first := mustAddItem(t, e, "A", 10, 5)
	second := mustAddItem(t, e, "B", 10, 5)

	if err := e.UpdateStock(ctx, first.ID, 0); err != nil {
		t.Fatalf("UpdateStock A: %v", err)
	}
	if err := e.UpdateStock(ctx, second.ID, 0); err != nil {
		t.Fatalf("UpdateStock B: %v", err)
	}

	notifs := e.NotificationsFor(models.RoleMechanic)
	if len(notifs) != 2 {
		t.Fatalf("mechanic feed = %d, want 2", len(notifs))
	}
	// Newest first: B's notification precedes A's.
	if notifs[0].Data["itemId"] != second.ID {
		t.Errorf("feed order = %v, want newest first", notifs)
	}
}
