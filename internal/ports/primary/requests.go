package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// RequestService defines the primary port for restock requests.
type RequestService interface {
	// CreateRequest files a pending restock request and notifies
	// Management. The item id is not validated; a dangling reference
	// is tolerated and rendered as an unknown item downstream.
	CreateRequest(ctx context.Context, params CreateRequestParams) (*models.RestockRequest, error)

	// ApproveRequest marks the request approved and computes the
	// expected delivery time from the optional ETA.
	ApproveRequest(ctx context.Context, id string, eta ETA) error

	// DenyRequest marks the request denied.
	DenyRequest(ctx context.Context, id string) error

	// CancelRequest marks the request cancelled. Allowed from pending
	// or approved.
	CancelRequest(ctx context.Context, id string) error

	// DeleteRequest hard-removes the request.
	DeleteRequest(ctx context.Context, id string) error

	// Requests returns a snapshot of the request collection.
	Requests() []models.RestockRequest
}

// CreateRequestParams contains parameters for filing a restock request.
type CreateRequestParams struct {
	ItemID    string `validate:"required"`
	Quantity  int    `validate:"gt=0"`
	Immediate bool
}

// ETA is the expected delivery offset attached on approval. Zero
// values mean delivery is expected now.
type ETA struct {
	Days  int
	Hours int
}
