package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

func TestSafetyOperationsRequireSafetyPersonal(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleMechanic, "Sam")

	_, err := e.CreateSafetyRequirement(ctx, primary.CreateSafetyRequirementParams{
		Title: "Eye protection", TargetRole: models.RoleMechanic,
	})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("create err = %v, want ErrNotAuthorized", err)
	}
	if err := e.VerifySafety(ctx, "x", "y", ""); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("verify err = %v, want ErrNotAuthorized", err)
	}
	if err := e.SetSafetyRequirementActive(ctx, "x", false); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("toggle err = %v, want ErrNotAuthorized", err)
	}
}

func TestSafetyRequirementLifecycle(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mech := mustLogin(t, e, models.RoleMechanic, "Sam")
	officer := mustLogin(t, e, models.RoleSafetyPersonal, "Kim")

	req, err := e.CreateSafetyRequirement(ctx, primary.CreateSafetyRequirementParams{
		Title: "Eye protection", TargetRole: models.RoleMechanic,
	})
	if err != nil {
		t.Fatalf("CreateSafetyRequirement: %v", err)
	}
	if !req.Active {
		t.Errorf("active = false, want default true")
	}
	if req.CreatedByAccountID != officer.ID {
		t.Errorf("createdBy = %q, want %q", req.CreatedByAccountID, officer.ID)
	}
	if n := len(e.NotificationsFor(models.RoleMechanic)); n != 1 {
		t.Errorf("mechanic feed = %d, want 1", n)
	}

	if err := e.VerifySafety(ctx, req.ID, mech.ID, "goggles on"); err != nil {
		t.Fatalf("VerifySafety: %v", err)
	}
	got := e.SafetyRequirements()[0]
	if len(got.Verifications) != 1 {
		t.Fatalf("verifications = %d, want 1", len(got.Verifications))
	}
	v := got.Verifications[0]
	if v.ByAccountID != officer.ID || v.ForAccountID != mech.ID || v.Note != "goggles on" {
		t.Errorf("verification = %+v", v)
	}

	// History is append-only.
	if err := e.VerifySafety(ctx, req.ID, mech.ID, "re-check"); err != nil {
		t.Fatalf("second VerifySafety: %v", err)
	}
	if n := len(e.SafetyRequirements()[0].Verifications); n != 2 {
		t.Errorf("verifications = %d, want 2", n)
	}

	if err := e.SetSafetyRequirementActive(ctx, req.ID, false); err != nil {
		t.Fatalf("SetSafetyRequirementActive: %v", err)
	}
	if e.SafetyRequirements()[0].Active {
		t.Errorf("active = true, want false")
	}
}

func TestVerifySafetyUnknownAccount(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustLogin(t, e, models.RoleSafetyPersonal, "Kim")

	req, err := e.CreateSafetyRequirement(ctx, primary.CreateSafetyRequirementParams{
		Title: "Hard hats", TargetRole: models.RoleGeneralService,
	})
	if err != nil {
		t.Fatalf("CreateSafetyRequirement: %v", err)
	}
	if err := e.VerifySafety(ctx, req.ID, "missing", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
