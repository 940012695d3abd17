package memory

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type MessagesRepository struct {
	s *Store
}

func (r *MessagesRepository) Create(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageReceipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[fromUsername]; !ok {
		return nil, common.ErrorForeignKey
	}
	if _, ok := r.s.users[toUsername]; !ok {
		return nil, common.ErrorForeignKey
	}

	m := &message{
		id:     r.s.newID(),
		from:   fromUsername,
		to:     toUsername,
		body:   body,
		sentAt: r.s.now(),
	}
	r.s.messages[m.id] = m

	return &models.MessageReceipt{
		ID:           m.id,
		FromUsername: m.from,
		ToUsername:   m.to,
		Body:         m.body,
		SentAt:       m.sentAt,
	}, nil
}

func (r *MessagesRepository) MarkRead(ctx context.Context, id string) (*models.ReadReceipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.messages[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if m.readAt == nil {
		stamp := r.s.now()
		if stamp.Before(m.sentAt) {
			stamp = m.sentAt
		}
		m.readAt = &stamp
	}

	return &models.ReadReceipt{ID: m.id, ReadAt: *m.readAt}, nil
}

func (r *MessagesRepository) Get(ctx context.Context, id string) (*models.FullMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.messages[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &models.FullMessage{
		ID:       m.id,
		Body:     m.body,
		SentAt:   m.sentAt,
		ReadAt:   copyTime(m.readAt),
		FromUser: r.s.publicProfile(m.from),
		ToUser:   r.s.publicProfile(m.to),
	}, nil
}
