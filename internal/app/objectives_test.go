package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

func mustCreateObjective(t *testing.T, e *Engine, title string, points int, role models.Role) *models.Objective {
	t.Helper()
	obj, err := e.CreateObjective(context.Background(), primary.CreateObjectiveParams{
		Title: title, Points: points, AssignedToRole: role,
	})
	if err != nil {
		t.Fatalf("CreateObjective(%s): %v", title, err)
	}
	return obj
}

func TestObjectiveRequiresSession(t *testing.T) {
	e, _, _ := newTestEngine(t)
	_, err := e.CreateObjective(context.Background(), primary.CreateObjectiveParams{
		Title: "Calibrate rack", Points: 5, AssignedToRole: models.RoleAlignmentTech,
	})
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("err = %v, want ErrNoSession", err)
	}
}

func TestObjectiveCompleteAwardsAndTransitions(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleAlignmentTech, "Ira")
	obj := mustCreateObjective(t, e, "Calibrate rack", 5, models.RoleAlignmentTech)

	if obj.Status != models.ObjectiveOpen {
		t.Fatalf("status = %q, want open", obj.Status)
	}
	if err := e.ToggleObjectiveComplete(ctx, obj.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	got := e.Objectives()[0]
	if got.Status != models.ObjectiveCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if p := e.CurrentAccount().Progress; p != 5 {
		t.Errorf("progress = %d, want 5", p)
	}

	// Reversing removes the completer but keeps status and points.
	if err := e.ToggleObjectiveComplete(ctx, obj.ID); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	got = e.Objectives()[0]
	if got.Status != models.ObjectiveCompleted {
		t.Errorf("status after reverse = %q, want completed", got.Status)
	}
	if p := e.CurrentAccount().Progress; p != 5 {
		t.Errorf("progress after reverse = %d, want 5", p)
	}
}

func TestApproveObjectiveManagementOnly(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")
	obj := mustCreateObjective(t, e, "Deep clean bay 3", 4, models.RoleMechanic)

	if err := e.ApproveObjective(ctx, obj.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("mechanic approval err = %v, want ErrNotAuthorized", err)
	}
	if got := e.Objectives()[0].Status; got != models.ObjectiveOpen {
		t.Errorf("status after refused approval = %q, want open", got)
	}

	mgr := mustLogin(t, e, models.RoleManagement, "Pat")
	if err := e.ApproveObjective(ctx, obj.ID); err != nil {
		t.Fatalf("management approval: %v", err)
	}
	got := e.Objectives()[0]
	if got.Status != models.ObjectiveApproved {
		t.Errorf("status = %q, want approved", got.Status)
	}
	if got.ApprovedAt == 0 {
		t.Errorf("approvedAt not stamped")
	}
	// The approver earns the objective's points too.
	e.mu.Lock()
	progress := e.st.AccountByID(mgr.ID).Progress
	e.mu.Unlock()
	if progress != 4 {
		t.Errorf("approver progress = %d, want 4", progress)
	}
}

func TestZeroPointObjectiveDefaultsToOne(t *testing.T) {
	e, _, _ := newTestEngine(t)
	mustLogin(t, e, models.RoleMechanic, "Sam")
	obj := mustCreateObjective(t, e, "Quick check", 0, models.RoleMechanic)
	if obj.Points != 1 {
		t.Errorf("points = %d, want 1", obj.Points)
	}
}
