// Package refreshtokens declares the server-side repository contract for
// refresh tokens and its PostgreSQL implementation.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens.
type Repository interface {
	// Create stores a refresh token for username expiring at now+validity.
	Create(ctx context.Context, username string, token string, validity time.Duration) error

	// Find returns the token row or common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete revokes a token. It yields common.ErrorNotFound when no row was
	// removed, which lets concurrent rotations of one token detect the loser.
	Delete(ctx context.Context, token string) error
}
