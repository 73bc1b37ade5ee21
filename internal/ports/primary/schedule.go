package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// ScheduleService defines the primary port for weekly schedules and
// switch requests.
type ScheduleService interface {
	// SetSchedule replaces an account's weekly schedule and notifies
	// that account's role.
	SetSchedule(ctx context.Context, accountID string, schedule models.WeeklySchedule) error

	// CreateSwitchRequest files a schedule-change proposal and
	// notifies Management.
	CreateSwitchRequest(ctx context.Context, params CreateSwitchRequestParams) (*models.SwitchRequest, error)

	// ApproveSwitch, DenySwitch, CancelSwitch and CompleteSwitch move
	// the proposal through its lifecycle. No side effects beyond the
	// status change.
	ApproveSwitch(ctx context.Context, id string) error
	DenySwitch(ctx context.Context, id string) error
	CancelSwitch(ctx context.Context, id string) error
	CompleteSwitch(ctx context.Context, id string) error

	// SwitchRequests returns a snapshot of the proposals.
	SwitchRequests() []models.SwitchRequest
}

// CreateSwitchRequestParams contains parameters for a switch request.
// RequesterID defaults to the current account when empty.
type CreateSwitchRequestParams struct {
	RequesterID string
	PartnerID   string
	Date        string            `validate:"required"`
	Type        models.SwitchType `validate:"required,oneof=work off"`
	Note        string
}
