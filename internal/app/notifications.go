package app

import (
	"context"
	"fmt"

	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// MarkNotificationRead appends the session role to the readBy list,
// deduplicated. Without a session the role falls back to General
// Service, matching the fan-out default.
func (e *Engine) MarkNotificationRead(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	role := e.st.ActiveRole
	if role == "" {
		role = models.RoleGeneralService
	}

	for i := range e.st.Notifications {
		n := &e.st.Notifications[i]
		if n.ID != id {
			continue
		}
		if !n.ReadByRole(role) {
			n.ReadBy = append(n.ReadBy, role)
			e.saveNotificationsLocked(ctx)
		}
		return nil
	}
	return fmt.Errorf("notification %s: %w", id, ErrNotFound)
}

// Notifications returns a snapshot of the whole feed.
func (e *Engine) Notifications() []models.AppNotification {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.Notifications)
}

// NotificationsFor returns the feed entries targeted at the role,
// newest first.
func (e *Engine) NotificationsFor(role models.Role) []models.AppNotification {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.AppNotification
	for _, n := range e.st.Notifications {
		if n.TargetedAt(role) {
			out = append(out, n)
		}
	}
	return out
}

// Ensure Engine implements the notification port.
var _ primary.NotificationService = (*Engine)(nil)
