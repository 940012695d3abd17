package grpc

import (
	"time"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timestamp leaves the field unset for the zero time.
func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// readAt leaves the field unset for unread messages.
func readAt(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func toPublicProfile(p models.PublicProfile) *api.PublicProfile {
	return &api.PublicProfile{
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
	}
}

func toUserProfile(p *models.UserProfile) *api.UserProfile {
	return &api.UserProfile{
		Username:    p.Username,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		JoinAt:      timestamp(p.JoinAt),
		LastLoginAt: timestamp(p.LastLoginAt),
	}
}

func toUserSummaries(list []*models.UserSummary) []*api.UserSummary {
	out := make([]*api.UserSummary, 0, len(list))
	for _, u := range list {
		out = append(out, &api.UserSummary{Username: u.Username, FirstName: u.FirstName, LastName: u.LastName})
	}
	return out
}

func toOutgoing(msgs []*models.OutgoingMessage) []*api.OutgoingMessage {
	out := make([]*api.OutgoingMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &api.OutgoingMessage{
			Id:     m.ID,
			ToUser: toPublicProfile(m.ToUser),
			Body:   m.Body,
			SentAt: timestamppb.New(m.SentAt),
			ReadAt: readAt(m.ReadAt),
		})
	}
	return out
}

func toIncoming(msgs []*models.IncomingMessage) []*api.IncomingMessage {
	out := make([]*api.IncomingMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &api.IncomingMessage{
			Id:       m.ID,
			FromUser: toPublicProfile(m.FromUser),
			Body:     m.Body,
			SentAt:   timestamppb.New(m.SentAt),
			ReadAt:   readAt(m.ReadAt),
		})
	}
	return out
}

func toReceipt(r *models.MessageReceipt) *api.MessageReceipt {
	return &api.MessageReceipt{
		Id:           r.ID,
		FromUsername: r.FromUsername,
		ToUsername:   r.ToUsername,
		Body:         r.Body,
		SentAt:       timestamppb.New(r.SentAt),
	}
}

func toFullMessage(m *models.FullMessage) *api.FullMessage {
	out := &api.FullMessage{
		Id:       m.ID,
		Body:     m.Body,
		SentAt:   timestamppb.New(m.SentAt),
		FromUser: toPublicProfile(m.FromUser),
		ToUser:   toPublicProfile(m.ToUser),
	}
	if m.IsRead() {
		out.ReadAt = timestamppb.New(*m.ReadAt)
	}
	return out
}
