package models

// SwitchStatus is the lifecycle state of a schedule-change proposal.
type SwitchStatus string

// Switch request statuses
const (
	SwitchProposed  SwitchStatus = "proposed"
	SwitchApproved  SwitchStatus = "approved"
	SwitchDenied    SwitchStatus = "denied"
	SwitchCancelled SwitchStatus = "cancelled"
	SwitchCompleted SwitchStatus = "completed"
)

// SwitchType says whether the requester wants to work or be off.
type SwitchType string

// Switch types
const (
	SwitchWork SwitchType = "work"
	SwitchOff  SwitchType = "off"
)

// SwitchRequest proposes a schedule change for one ISO date.
type SwitchRequest struct {
	ID          string       `json:"id"`
	RequesterID string       `json:"requesterId"`
	PartnerID   string       `json:"partnerId,omitempty"`
	Date        string       `json:"date"` // ISO date (day)
	Type        SwitchType   `json:"type"`
	Note        string       `json:"note,omitempty"`
	Status      SwitchStatus `json:"status"`
	CreatedAt   int64        `json:"createdAt"`
	UpdatedAt   int64        `json:"updatedAt"`
}
