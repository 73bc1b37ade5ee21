package models

// ObjectiveStatus is the three-state objective lifecycle.
type ObjectiveStatus string

// Objective statuses: open -> completed -> approved.
const (
	ObjectiveOpen      ObjectiveStatus = "open"
	ObjectiveCompleted ObjectiveStatus = "completed"
	ObjectiveApproved  ObjectiveStatus = "approved"
)

// Objective is a role-assignable goal. Points go to the completer on
// open->completed and again to the approver on completed->approved.
type Objective struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	Description           string          `json:"description,omitempty"`
	Points                int             `json:"points"`
	CreatedByAccountID    string          `json:"createdByAccountId"`
	CreatedByRole         Role            `json:"createdByRole"`
	AssignedToRole        Role            `json:"assignedToRole"`
	AssignedToAccountID   string          `json:"assignedToAccountId,omitempty"`
	RequiresApproval      bool            `json:"requiresApproval,omitempty"`
	DueAt                 int64           `json:"dueAt,omitempty"`
	Status                ObjectiveStatus `json:"status"`
	CompletedByAccountIDs []string        `json:"completedByAccountIds"`
	ApprovedAt            int64           `json:"approvedAt,omitempty"`
	CreatedAt             int64           `json:"createdAt"`
}

// CompletedBy reports whether the account has marked the objective done.
func (o *Objective) CompletedBy(accountID string) bool {
	for _, id := range o.CompletedByAccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
