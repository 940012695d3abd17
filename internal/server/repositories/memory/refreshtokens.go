package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type RefreshTokensRepository struct {
	s *Store
}

func (r *RefreshTokensRepository) Create(ctx context.Context, username string, token string, validity time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[username]; !ok {
		return common.ErrorForeignKey
	}
	if _, ok := r.s.tokens[token]; ok {
		return common.ErrorAlreadyExists
	}

	now := r.s.now()
	r.s.tokens[token] = &models.RefreshToken{
		ID:        r.s.newID(),
		Username:  username,
		Token:     token,
		Expires:   now.Add(validity),
		CreatedAt: now,
	}
	return nil
}

func (r *RefreshTokensRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	rt := *row
	return &rt, nil
}

func (r *RefreshTokensRepository) Delete(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tokens[token]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.tokens, token)
	return nil
}
