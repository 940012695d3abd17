// Package memory keeps users, messages and refresh tokens in process memory.
// It backs the server when no database DSN is configured and mirrors the
// PostgreSQL repositories' guarantees: unique usernames, sender and
// recipient existence checks, and a read stamp that is set at most once.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/google/uuid"
)

type message struct {
	id     string
	from   string
	to     string
	body   string
	sentAt time.Time
	readAt *time.Time
}

// Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	messages map[string]*message
	tokens   map[string]*models.RefreshToken

	// txMu serializes InTx callers only; plain repository calls are not
	// blocked by it.
	txMu sync.Mutex

	now   func() time.Time
	newID func() string
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		messages: make(map[string]*message),
		tokens:   make(map[string]*models.RefreshToken),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// InTx runs fn while holding the store's transaction lock.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (s *Store) Users() *UsersRepository {
	return &UsersRepository{s: s}
}

func (s *Store) Messages() *MessagesRepository {
	return &MessagesRepository{s: s}
}

func (s *Store) RefreshTokens() *RefreshTokensRepository {
	return &RefreshTokensRepository{s: s}
}
