// Package notify contains the pure notification derivation rules.
// Each rule maps a state transition to one event with a role-based
// target list; the engine stamps id, timestamp and read state.
package notify

import (
	"fmt"

	"github.com/example/crewdeck/internal/models"
)

// Event is a derived notification before id/timestamp assignment.
type Event struct {
	Type    models.NotificationType
	Title   string
	Body    string
	Targets []models.Role
	Data    map[string]string
}

// crewRoles are the roles that consume stock day to day.
func crewRoles() []models.Role {
	return []models.Role{models.RoleGeneralService, models.RoleMechanic}
}

// ItemEmpty fires when a stock patch crosses into the empty band.
func ItemEmpty(item models.Item) Event {
	return Event{
		Type:    models.NotifEmpty,
		Title:   "Item Empty",
		Body:    fmt.Sprintf("%s is out of stock.", item.Name),
		Targets: []models.Role{models.RoleGeneralService, models.RoleMechanic, models.RoleManagement},
		Data:    map[string]string{"itemId": item.ID},
	}
}

// ItemLow fires when a stock patch crosses into the low band.
func ItemLow(item models.Item) Event {
	return Event{
		Type:    models.NotifLow,
		Title:   "Low Stock Alert",
		Body:    fmt.Sprintf("%s is running low.", item.Name),
		Targets: crewRoles(),
		Data:    map[string]string{"itemId": item.ID},
	}
}

// RequestCreated fires when a restock request is filed.
func RequestCreated(req models.RestockRequest) Event {
	title := "Restock Request"
	if req.Immediate {
		title = "Immediate Restock Request"
	}
	return Event{
		Type:    models.NotifRequest,
		Title:   title,
		Body:    fmt.Sprintf("%d units requested", req.Quantity),
		Targets: []models.Role{models.RoleManagement},
		Data:    map[string]string{"requestId": req.ID, "itemId": req.ItemID},
	}
}

// RequestApproved fires on the pending->approved transition.
func RequestApproved(req models.RestockRequest) Event {
	return Event{
		Type:    models.NotifRequestUpdate,
		Title:   "Request Approved",
		Body:    fmt.Sprintf("Your request for %d was approved.", req.Quantity),
		Targets: crewRoles(),
		Data:    map[string]string{"requestId": req.ID, "itemId": req.ItemID},
	}
}

// RequestDenied fires on the pending->denied transition.
func RequestDenied(req models.RestockRequest) Event {
	return Event{
		Type:    models.NotifRequestUpdate,
		Title:   "Request Denied",
		Body:    fmt.Sprintf("Request for %d was denied.", req.Quantity),
		Targets: crewRoles(),
		Data:    map[string]string{"requestId": req.ID, "itemId": req.ItemID},
	}
}

// ChoreAssigned fires when a chore is created. Management-audience
// chores notify Management; crew chores notify General Service.
func ChoreAssigned(chore models.Chore) Event {
	target := models.RoleGeneralService
	if chore.Audience == models.AudienceManagement {
		target = models.RoleManagement
	}
	return Event{
		Type:    models.NotifChoreAssigned,
		Title:   "New Chore",
		Body:    chore.Title,
		Targets: []models.Role{target},
		Data:    map[string]string{"choreId": chore.ID},
	}
}

// ChoreCompleted fires on the completion toggle-on transition.
func ChoreCompleted(chore models.Chore, by models.Account) Event {
	return Event{
		Type:    models.NotifChoreCompleted,
		Title:   "Chore Completed",
		Body:    fmt.Sprintf("%s completed %s", by.Name, chore.Title),
		Targets: []models.Role{models.RoleManagement},
		Data:    map[string]string{"choreId": chore.ID, "accountId": by.ID},
	}
}

// ObjectiveAssigned fires when an objective is created.
func ObjectiveAssigned(obj models.Objective) Event {
	return Event{
		Type:    models.NotifObjectiveAssigned,
		Title:   "New Objective",
		Body:    obj.Title,
		Targets: []models.Role{obj.AssignedToRole},
		Data:    map[string]string{"objectiveId": obj.ID},
	}
}

// ObjectiveCompleted fires on the open->completed transition.
func ObjectiveCompleted(obj models.Objective, by models.Account) Event {
	return Event{
		Type:    models.NotifObjectiveCompleted,
		Title:   "Objective Completed",
		Body:    fmt.Sprintf("%s completed %s", by.Name, obj.Title),
		Targets: []models.Role{models.RoleManagement, obj.CreatedByRole},
		Data:    map[string]string{"objectiveId": obj.ID, "accountId": by.ID},
	}
}

// ObjectiveApproved fires on the completed->approved transition.
func ObjectiveApproved(obj models.Objective, by models.Account) Event {
	return Event{
		Type:    models.NotifObjectiveCompleted,
		Title:   "Objective Approved",
		Body:    fmt.Sprintf("%s approved %s", by.Name, obj.Title),
		Targets: []models.Role{models.RoleManagement, obj.CreatedByRole},
		Data:    map[string]string{"objectiveId": obj.ID, "accountId": by.ID},
	}
}

// SafetyRequirementNew fires when a safety requirement is created.
func SafetyRequirementNew(req models.SafetyRequirement) Event {
	return Event{
		Type:    models.NotifSafetyRequirementNew,
		Title:   "New Safety Requirement",
		Body:    req.Title,
		Targets: []models.Role{models.RoleManagement, req.TargetRole},
		Data:    map[string]string{"safetyRequirementId": req.ID},
	}
}

// SafetyVerified fires when a verification is appended.
func SafetyVerified(req models.SafetyRequirement, verified models.Account) Event {
	return Event{
		Type:    models.NotifSafetyVerified,
		Title:   "Safety Verified",
		Body:    fmt.Sprintf("%s verified for: %s", verified.Name, req.Title),
		Targets: []models.Role{models.RoleManagement, verified.Role},
		Data:    map[string]string{"safetyRequirementId": req.ID, "forAccountId": verified.ID},
	}
}

// PrizeNew fires when a prize definition is created. Every role hears
// about a new reward tier.
func PrizeNew(def models.PrizeDefinition) Event {
	return Event{
		Type:    models.NotifPrizeNew,
		Title:   "New Reward Available",
		Body:    def.Name,
		Targets: models.AllRoles(),
		Data:    map[string]string{"prizeId": def.ID},
	}
}

// PrizeAwarded fires when an account's progress unlocks a prize.
func PrizeAwarded(def models.PrizeDefinition, owner models.Account) Event {
	return Event{
		Type:    models.NotifPrizeAwarded,
		Title:   "Prize Unlocked",
		Body:    fmt.Sprintf("%s unlocked!", def.Name),
		Targets: []models.Role{owner.Role},
		Data:    map[string]string{"prizeId": def.ID},
	}
}

// GiftScheduled fires when a prize gift transfer is scheduled.
func GiftScheduled(prize models.EmployeePrize) Event {
	return Event{
		Type:    models.NotifGiftScheduled,
		Title:   "Gift Scheduled",
		Body:    "A prize gift was scheduled.",
		Targets: []models.Role{models.RoleManagement},
		Data: map[string]string{
			"employeePrizeId": prize.ID,
			"toAccountId":     prize.GiftedToAccountID,
		},
	}
}

// GiftReceived fires when the delivery sweep transfers ownership.
// The recipient role falls back to General Service when the recipient
// account no longer exists.
func GiftReceived(prize models.EmployeePrize, recipientRole models.Role) Event {
	if recipientRole == "" {
		recipientRole = models.RoleGeneralService
	}
	return Event{
		Type:    models.NotifGiftReceived,
		Title:   "Gift Received",
		Body:    "A prize was delivered to you.",
		Targets: []models.Role{recipientRole},
		Data:    map[string]string{"employeePrizeId": prize.ID},
	}
}

// ScheduleRequested fires when a switch request is filed.
func ScheduleRequested(req models.SwitchRequest) Event {
	return Event{
		Type:    models.NotifScheduleRequest,
		Title:   "Schedule Change Requested",
		Body:    fmt.Sprintf("%s day on %s", req.Type, req.Date),
		Targets: []models.Role{models.RoleManagement},
		Data:    map[string]string{"switchId": req.ID},
	}
}

// ScheduleUpdated fires when an account's weekly schedule is replaced.
func ScheduleUpdated(acc models.Account) Event {
	return Event{
		Type:    models.NotifScheduleUpdate,
		Title:   "Schedule Updated",
		Body:    "Your schedule was updated.",
		Targets: []models.Role{acc.Role},
		Data:    map[string]string{"accountId": acc.ID},
	}
}

// NewMessage fires when a message is sent to an existing account.
// The body previews the first 40 characters of the content.
func NewMessage(msg models.Message, from models.Account, toRole models.Role) Event {
	preview := msg.Content
	if len(preview) > 40 {
		preview = preview[:40]
	}
	return Event{
		Type:    models.NotifMessage,
		Title:   "New Message",
		Body:    fmt.Sprintf("%s: %s", from.Name, preview),
		Targets: []models.Role{toRole},
		Data:    map[string]string{"messageId": msg.ID},
	}
}
