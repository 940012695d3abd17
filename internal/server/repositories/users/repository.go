// Package users declares the account directory's storage contract and its
// PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// Repository stores user rows and produces the mailbox views that join
// messages against users.
type Repository interface {
	// Create inserts a user. Duplicate usernames yield common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the full row, password hash included, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// TouchLogin stamps last_login_at. Unknown usernames are a no-op.
	TouchLogin(ctx context.Context, username string) error

	// List returns all users ordered by username.
	List(ctx context.Context) ([]*models.UserSummary, error)

	// MessagesFrom returns messages sent by username with recipients resolved.
	MessagesFrom(ctx context.Context, username string) ([]*models.OutgoingMessage, error)

	// MessagesTo returns messages received by username with senders resolved.
	MessagesTo(ctx context.Context, username string) ([]*models.IncomingMessage, error)
}
