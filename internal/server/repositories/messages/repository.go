// Package messages declares the message ledger's storage contract and its
// PostgreSQL implementation.
package messages

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// Repository stores messages.
type Repository interface {
	// Create persists a message; sent_at is assigned by the store. Unknown
	// sender or recipient yields common.ErrorForeignKey.
	Create(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageReceipt, error)

	// MarkRead sets read_at if it is still unset and returns the stamp that
	// ends up stored. Unknown ids yield common.ErrorNotFound.
	MarkRead(ctx context.Context, id string) (*models.ReadReceipt, error)

	// Get returns the message with both participants resolved, or
	// common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.FullMessage, error)
}
