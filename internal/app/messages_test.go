package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/crewdeck/internal/models"
)

func TestSendMessageNotifiesRecipientRole(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	recipient := mustLogin(t, e, models.RoleManagement, "Pat")
	sender := mustLogin(t, e, models.RoleMechanic, "Sam")

	msg, err := e.SendMessage(ctx, recipient.ID, "brake pads are in")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.FromAccountID != sender.ID || msg.ToAccountID != recipient.ID {
		t.Errorf("message = %+v", msg)
	}
	if msg.ReadAt != 0 {
		t.Errorf("readAt = %d, want unset", msg.ReadAt)
	}

	notifs := e.NotificationsFor(models.RoleManagement)
	if len(notifs) != 1 || notifs[0].Type != models.NotifMessage {
		t.Fatalf("management feed = %v, want one message notification", notifs)
	}
}

func TestSendMessageToUnknownAccountStoresSilently(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")

	if _, err := e.SendMessage(ctx, "gone", "hello?"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if n := len(e.Messages()); n != 1 {
		t.Errorf("messages = %d, want 1", n)
	}
	if n := notifCount(e, models.NotifMessage); n != 0 {
		t.Errorf("message notifications = %d, want 0 for unknown recipient", n)
	}
}

func TestMarkMessageReadStampsOnce(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	recipient := mustLogin(t, e, models.RoleManagement, "Pat")
	mustLogin(t, e, models.RoleMechanic, "Sam")

	msg, err := e.SendMessage(ctx, recipient.ID, "brake pads are in")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	if err := e.MarkMessageRead(ctx, msg.ID); err != nil {
		t.Fatalf("MarkMessageRead: %v", err)
	}
	first := e.Messages()[0].ReadAt
	if first == 0 {
		t.Fatalf("readAt not stamped")
	}

	clock.advance(time.Hour)
	if err := e.MarkMessageRead(ctx, msg.ID); err != nil {
		t.Fatalf("second MarkMessageRead: %v", err)
	}
	if got := e.Messages()[0].ReadAt; got != first {
		t.Errorf("readAt = %d, want first stamp %d", got, first)
	}
}

func TestSendMessageValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.SendMessage(ctx, "x", "  "); !errors.Is(err, ErrValidation) {
		t.Errorf("blank content err = %v, want ErrValidation", err)
	}
	if _, err := e.SendMessage(ctx, "x", "hi"); !errors.Is(err, ErrNoSession) {
		t.Errorf("no session err = %v, want ErrNoSession", err)
	}
}
