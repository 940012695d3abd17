package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type UsersRepository struct {
	s *Store
}

func (r *UsersRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}

	now := r.s.now()
	user.JoinAt = now
	user.LastLoginAt = now

	row := *user
	r.s.users[user.Username] = &row

	return user, nil
}

func (r *UsersRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *row
	return &u, nil
}

func (r *UsersRepository) TouchLogin(ctx context.Context, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if row, ok := r.s.users[username]; ok {
		row.LastLoginAt = r.s.now()
	}
	return nil
}

func (r *UsersRepository) List(ctx context.Context) ([]*models.UserSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.UserSummary, 0, len(r.s.users))
	for _, row := range r.s.users {
		result = append(result, &models.UserSummary{
			Username:  row.Username,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })

	return result, nil
}

func (r *UsersRepository) MessagesFrom(ctx context.Context, username string) ([]*models.OutgoingMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	picked := r.s.mailbox(func(m *message) bool { return m.from == username })
	result := make([]*models.OutgoingMessage, 0, len(picked))
	for _, m := range picked {
		result = append(result, &models.OutgoingMessage{
			ID:     m.id,
			ToUser: r.s.publicProfile(m.to),
			Body:   m.body,
			SentAt: m.sentAt,
			ReadAt: copyTime(m.readAt),
		})
	}
	return result, nil
}

func (r *UsersRepository) MessagesTo(ctx context.Context, username string) ([]*models.IncomingMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	picked := r.s.mailbox(func(m *message) bool { return m.to == username })
	result := make([]*models.IncomingMessage, 0, len(picked))
	for _, m := range picked {
		result = append(result, &models.IncomingMessage{
			ID:       m.id,
			FromUser: r.s.publicProfile(m.from),
			Body:     m.body,
			SentAt:   m.sentAt,
			ReadAt:   copyTime(m.readAt),
		})
	}
	return result, nil
}

// mailbox returns matching messages ordered by sent_at, then id.
// Callers hold s.mu.
func (s *Store) mailbox(match func(*message) bool) []*message {
	picked := make([]*message, 0)
	for _, m := range s.messages {
		if match(m) {
			picked = append(picked, m)
		}
	}
	sort.Slice(picked, func(i, j int) bool {
		if !picked[i].sentAt.Equal(picked[j].sentAt) {
			return picked[i].sentAt.Before(picked[j].sentAt)
		}
		return picked[i].id < picked[j].id
	})
	return picked
}

// Callers hold s.mu.
func (s *Store) publicProfile(username string) models.PublicProfile {
	row, ok := s.users[username]
	if !ok {
		return models.PublicProfile{Username: username}
	}
	return models.PublicProfile{
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
