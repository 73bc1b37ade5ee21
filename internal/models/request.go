package models

// RequestStatus is the lifecycle state of a restock request.
type RequestStatus string

// Restock request statuses. Transitions are one-directional except
// cancellation, which is allowed from pending or approved.
const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestDenied    RequestStatus = "denied"
	RequestCancelled RequestStatus = "cancelled"
	RequestDeleted   RequestStatus = "deleted"
)

// RestockRequest asks Management to restock an item. ItemID is a soft
// reference; the item may have been deleted since.
type RestockRequest struct {
	ID                 string        `json:"id"`
	ItemID             string        `json:"itemId"`
	Quantity           int           `json:"quantity"`
	Immediate          bool          `json:"immediate"`
	Status             RequestStatus `json:"status"`
	ExpectedDeliveryAt int64         `json:"expectedDeliveryAt,omitempty"`
	CreatedBy          Role          `json:"createdBy,omitempty"`
	CreatedByAccountID string        `json:"createdByAccountId,omitempty"`
	DecisionNote       string        `json:"decisionNote,omitempty"`
	CreatedAt          int64         `json:"createdAt"`
	UpdatedAt          int64         `json:"updatedAt"`
}
