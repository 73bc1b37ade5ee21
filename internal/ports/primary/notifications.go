package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// NotificationService defines the primary port for the derived
// notification feed.
type NotificationService interface {
	// MarkNotificationRead appends the session's role to the readBy
	// list, deduplicated. Read state is role-scoped: every account
	// sharing the role sees the notification as read afterwards.
	MarkNotificationRead(ctx context.Context, id string) error

	// Notifications returns a snapshot of the whole feed.
	Notifications() []models.AppNotification

	// NotificationsFor returns the slice of the feed targeted at the
	// role, newest first.
	NotificationsFor(role models.Role) []models.AppNotification
}

// MaintenanceService groups the demo-seed and full-reset operations.
type MaintenanceService interface {
	// SeedDemo replaces the state with the built-in demo fixture.
	SeedDemo(ctx context.Context) error

	// SeedFromFile replaces the state with a YAML fixture file.
	SeedFromFile(ctx context.Context, path string) error

	// Reset clears every collection and storage key.
	Reset(ctx context.Context) error
}
