package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

func mustCreatePrize(t *testing.T, e *Engine, name string, unlock int) *models.PrizeDefinition {
	t.Helper()
	def, err := e.CreatePrizeDef(context.Background(), primary.CreatePrizeDefParams{
		Name: name, UnlockAmount: unlock,
	})
	if err != nil {
		t.Fatalf("CreatePrizeDef(%s): %v", name, err)
	}
	return def
}

func TestPrizeUnlocksOnceAtThreshold(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	acc := mustLogin(t, e, models.RoleMechanic, "Sam")
	def := mustCreatePrize(t, e, "Free Lunch", 3)
	chore := mustCreateChore(t, e, "Sweep bays", 3)

	if err := e.ToggleChoreComplete(ctx, chore.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	prizes := e.EmployeePrizes()
	if len(prizes) != 1 {
		t.Fatalf("employee prizes = %d, want 1", len(prizes))
	}
	if prizes[0].PrizeID != def.ID || prizes[0].OwnerAccountID != acc.ID {
		t.Errorf("award = %+v, want (%s, %s)", prizes[0], def.ID, acc.ID)
	}

	// Re-running the hook is a no-op for an already held prize.
	if err := e.AwardUnlockedPrizes(ctx, acc.ID); err != nil {
		t.Fatalf("AwardUnlockedPrizes: %v", err)
	}
	if n := len(e.EmployeePrizes()); n != 1 {
		t.Errorf("employee prizes after repeat = %d, want 1", n)
	}

	// More points do not duplicate the award either.
	if err := e.ToggleChoreComplete(ctx, chore.ID); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if err := e.ToggleChoreComplete(ctx, chore.ID); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if n := len(e.EmployeePrizes()); n != 1 {
		t.Errorf("employee prizes after more points = %d, want 1", n)
	}
	if n := notifCount(e, models.NotifPrizeAwarded); n != 1 {
		t.Errorf("prize_awarded notifications = %d, want 1", n)
	}
}

func TestInactivePrizeNotAwarded(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")

	inactive := false
	if _, err := e.CreatePrizeDef(ctx, primary.CreatePrizeDefParams{
		Name: "Retired", UnlockAmount: 1, Active: &inactive,
	}); err != nil {
		t.Fatalf("CreatePrizeDef: %v", err)
	}

	chore := mustCreateChore(t, e, "Sweep bays", 5)
	if err := e.ToggleChoreComplete(ctx, chore.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if n := len(e.EmployeePrizes()); n != 0 {
		t.Errorf("employee prizes = %d, want 0 for inactive definition", n)
	}
}

func TestNewPrizeAnnouncedToAllRoles(t *testing.T) {
	e, _, _ := newTestEngine(t)
	mustCreatePrize(t, e, "Free Lunch", 10)

	for _, role := range models.AllRoles() {
		if n := len(e.NotificationsFor(role)); n != 1 {
			t.Errorf("%s feed = %d, want 1", role, n)
		}
	}
}

func TestGiftDeliveryExactlyOnce(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	sender := mustLogin(t, e, models.RoleMechanic, "Sam")
	recipient := mustLogin(t, e, models.RoleGeneralService, "Lee")

	mustCreatePrize(t, e, "Free Lunch", 1)
	chore := mustCreateChore(t, e, "Sweep bays", 1)

	// The chore completion must land on the sender.
	if _, err := e.AutoLoginForRole(ctx, models.RoleMechanic); err != nil {
		t.Fatalf("AutoLoginForRole: %v", err)
	}
	if err := e.ToggleChoreComplete(ctx, chore.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	prize := e.EmployeePrizes()[0]
	if prize.OwnerAccountID != sender.ID {
		t.Fatalf("owner = %q, want sender %q", prize.OwnerAccountID, sender.ID)
	}

	deliveryAt := clock.t.Add(time.Hour).UnixMilli()
	if err := e.GiftPrize(ctx, prize.ID, recipient.ID, deliveryAt); err != nil {
		t.Fatalf("GiftPrize: %v", err)
	}

	// Before the delivery time the gift stays with the sender.
	if n := e.DeliverDueGifts(ctx); n != 0 {
		t.Errorf("early sweep delivered %d, want 0", n)
	}
	if got := e.EmployeePrizes()[0]; got.OwnerAccountID != sender.ID || got.Delivered {
		t.Errorf("pending gift = %+v, want undelivered with sender ownership", got)
	}

	clock.advance(2 * time.Hour)
	if n := e.DeliverDueGifts(ctx); n != 1 {
		t.Fatalf("due sweep delivered %d, want 1", n)
	}
	got := e.EmployeePrizes()[0]
	if got.OwnerAccountID != recipient.ID {
		t.Errorf("owner = %q, want recipient %q", got.OwnerAccountID, recipient.ID)
	}
	if !got.Delivered || got.GiftedToAccountID != "" || got.DeliveryAt != 0 {
		t.Errorf("delivered gift = %+v, want cleared schedule", got)
	}

	// A later sweep cannot match the same gift again.
	if n := e.DeliverDueGifts(ctx); n != 0 {
		t.Errorf("repeat sweep delivered %d, want 0", n)
	}
	if n := notifCount(e, models.NotifGiftReceived); n != 1 {
		t.Errorf("gift_received notifications = %d, want 1", n)
	}
}

func TestMutationsTriggerGiftSweep(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")
	recipient := mustLogin(t, e, models.RoleGeneralService, "Lee")

	mustCreatePrize(t, e, "Free Lunch", 1)
	chore := mustCreateChore(t, e, "Sweep bays", 1)
	if _, err := e.AutoLoginForRole(ctx, models.RoleMechanic); err != nil {
		t.Fatalf("AutoLoginForRole: %v", err)
	}
	if err := e.ToggleChoreComplete(ctx, chore.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	prize := e.EmployeePrizes()[0]
	if err := e.GiftPrize(ctx, prize.ID, recipient.ID, clock.t.Add(time.Minute).UnixMilli()); err != nil {
		t.Fatalf("GiftPrize: %v", err)
	}

	clock.advance(5 * time.Minute)
	// Any unrelated mutation runs the sweep as a side effect.
	mustAddItem(t, e, "Fuses", 100, 50)

	got := e.EmployeePrizes()[0]
	if got.OwnerAccountID != recipient.ID || !got.Delivered {
		t.Errorf("gift = %+v, want delivered to recipient by the mutation sweep", got)
	}
}

func TestGiftValidation(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")

	if err := e.GiftPrize(ctx, "missing", "missing", clock.t.UnixMilli()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
