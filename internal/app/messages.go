package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/crewdeck/internal/core/notify"
	"github.com/example/crewdeck/internal/models"
	"github.com/example/crewdeck/internal/ports/primary"
)

// SendMessage sends from the current account. The message is stored
// even when the recipient id is dangling; the role notification fires
// only for a known recipient.
func (e *Engine) SendMessage(ctx context.Context, toAccountID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	from := e.st.CurrentAccount()
	if from == nil {
		return nil, ErrNoSession
	}

	msg := models.Message{
		ID:            e.newID(),
		FromAccountID: from.ID,
		ToAccountID:   toAccountID,
		Content:       content,
		CreatedAt:     e.nowMillis(),
	}

	e.st.Messages = append([]models.Message{msg}, e.st.Messages...)
	e.saveMessagesLocked(ctx)

	if to := e.st.AccountByID(toAccountID); to != nil {
		e.notifyLocked(ctx, notify.NewMessage(msg, *from, to.Role))
	}

	return &msg, nil
}

// MarkMessageRead stamps readAt once. Later calls keep the first
// timestamp.
func (e *Engine) MarkMessageRead(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.sweepGiftsLocked(ctx)

	for i := range e.st.Messages {
		msg := &e.st.Messages[i]
		if msg.ID != id {
			continue
		}
		if msg.ReadAt == 0 {
			msg.ReadAt = e.nowMillis()
			e.saveMessagesLocked(ctx)
		}
		return nil
	}
	return fmt.Errorf("message %s: %w", id, ErrNotFound)
}

// Messages returns a snapshot of the message collection.
func (e *Engine) Messages() []models.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.st.Messages)
}

// Ensure Engine implements the message port.
var _ primary.MessageService = (*Engine)(nil)
