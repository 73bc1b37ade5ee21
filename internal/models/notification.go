package models

// NotificationType tags the state transition a notification derives from.
type NotificationType string

// Notification types
const (
	NotifLow                  NotificationType = "low"
	NotifEmpty                NotificationType = "empty"
	NotifRequest              NotificationType = "request"
	NotifRequestUpdate        NotificationType = "request_update"
	NotifScheduleRequest      NotificationType = "schedule_request"
	NotifScheduleUpdate       NotificationType = "schedule_update"
	NotifChoreAssigned        NotificationType = "chore_assigned"
	NotifChoreCompleted       NotificationType = "chore_completed"
	NotifObjectiveAssigned    NotificationType = "objective_assigned"
	NotifObjectiveCompleted   NotificationType = "objective_completed"
	NotifSafetyRequirementNew NotificationType = "safety_requirement_new"
	NotifSafetyVerified       NotificationType = "safety_verified"
	NotifPrizeNew             NotificationType = "prize_new"
	NotifPrizeAwarded         NotificationType = "prize_awarded"
	NotifGiftScheduled        NotificationType = "gift_scheduled"
	NotifGiftReceived         NotificationType = "gift_received"
	NotifMessage              NotificationType = "message"
)

// AppNotification fans out to every account holding one of the target
// roles. Read state is tracked per role, not per account: once any
// account of a role reads it, the whole role sees it as read.
type AppNotification struct {
	ID        string            `json:"id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Targets   []Role            `json:"targets"`
	CreatedAt int64             `json:"createdAt"`
	ReadBy    []Role            `json:"readBy"`
	Data      map[string]string `json:"data,omitempty"`
}

// TargetedAt reports whether the notification fans out to the role.
func (n *AppNotification) TargetedAt(role Role) bool {
	for _, r := range n.Targets {
		if r == role {
			return true
		}
	}
	return false
}

// ReadByRole reports whether the role has a read receipt.
func (n *AppNotification) ReadByRole(role Role) bool {
	for _, r := range n.ReadBy {
		if r == role {
			return true
		}
	}
	return false
}
