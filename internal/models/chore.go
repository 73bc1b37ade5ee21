package models

// ChoreAudience selects who a chore is meant for.
type ChoreAudience string

// Chore audiences
const (
	AudienceCrew       ChoreAudience = "Crew"
	AudienceManagement ChoreAudience = "Management"
)

// Chore is a repeatable task. Multiple accounts can independently
// complete the same chore; each completion-toggle-on earns points.
type Chore struct {
	ID                    string        `json:"id"`
	Title                 string        `json:"title"`
	Description           string        `json:"description,omitempty"`
	Audience              ChoreAudience `json:"audience"`
	Points                int           `json:"points"`
	AssignedToAccountID   string        `json:"assignedToAccountId,omitempty"`
	CreatedByAccountID    string        `json:"createdByAccountId,omitempty"`
	DueAt                 int64         `json:"dueAt,omitempty"`
	CompletedByAccountIDs []string      `json:"completedByAccountIds"`
	CreatedAt             int64         `json:"createdAt"`
}

// CompletedBy reports whether the account has marked the chore done.
func (c *Chore) CompletedBy(accountID string) bool {
	for _, id := range c.CompletedByAccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
