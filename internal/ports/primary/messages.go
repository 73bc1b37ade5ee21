package primary

import (
	"context"

	"github.com/example/crewdeck/internal/models"
)

// MessageService defines the primary port for account-to-account
// messages.
type MessageService interface {
	// SendMessage sends from the current account. A notification goes
	// to the recipient's role when the recipient exists; the message
	// itself is stored either way.
	SendMessage(ctx context.Context, toAccountID, content string) (*models.Message, error)

	// MarkMessageRead stamps readAt once; later reads keep the first
	// timestamp.
	MarkMessageRead(ctx context.Context, id string) error

	// Messages returns a snapshot of the message collection.
	Messages() []models.Message
}
