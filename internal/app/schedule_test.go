package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

func TestSetScheduleNotifiesRole(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	acc := mustLogin(t, e, models.RoleMechanic, "Sam")

	schedule := models.DefaultSchedule()
	schedule[models.DayWed] = models.DayHours{Day: models.DayWed, Off: true}
	if err := e.SetSchedule(ctx, acc.ID, schedule); err != nil {
		t.Fatalf("SetSchedule: %v", err)
	}

	if got := e.CurrentAccount().Schedule[models.DayWed]; !got.Off {
		t.Errorf("wednesday = %+v, want off", got)
	}
	if n := notifCount(e, models.NotifScheduleUpdate); n != 1 {
		t.Errorf("schedule_update notifications = %d, want 1", n)
	}
	if n := len(e.NotificationsFor(models.RoleMechanic)); n != 1 {
		t.Errorf("mechanic feed = %d, want 1", n)
	}
}

func TestSwitchRequestLifecycle(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	acc := mustLogin(t, e, models.RoleMechanic, "Sam")

	req, err := e.CreateSwitchRequest(ctx, primary.CreateSwitchRequestParams{
		Date: "2026-09-04", Type: models.SwitchOff, Note: "dentist",
	})
	if err != nil {
		t.Fatalf("CreateSwitchRequest: %v", err)
	}
	if req.RequesterID != acc.ID {
		t.Errorf("requester = %q, want current account", req.RequesterID)
	}
	if req.Status != models.SwitchProposed {
		t.Errorf("status = %q, want proposed", req.Status)
	}
	if n := len(e.NotificationsFor(models.RoleManagement)); n != 1 {
		t.Errorf("management feed = %d, want 1", n)
	}

	steps := []struct {
		name string
		call func(context.Context, string) error
		want models.SwitchStatus
	}{
		{"approve", e.ApproveSwitch, models.SwitchApproved},
		{"complete", e.CompleteSwitch, models.SwitchCompleted},
	}
	for _, s := range steps {
		if err := s.call(ctx, req.ID); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if got := e.SwitchRequests()[0].Status; got != s.want {
			t.Errorf("after %s: status = %q, want %q", s.name, got, s.want)
		}
	}
}

func TestSwitchRequestValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")

	if _, err := e.CreateSwitchRequest(ctx, primary.CreateSwitchRequestParams{
		Date: "2026-09-04", Type: "vacation",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad type err = %v, want ErrValidation", err)
	}
	if err := e.DenySwitch(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id err = %v, want ErrNotFound", err)
	}
}
