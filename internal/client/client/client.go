package client

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/api"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, reg *api.RegisterRequest) error
	Login(ctx context.Context, username string, password []byte) error
	Logout()
	ListUsers(ctx context.Context) ([]*api.UserSummary, error)
	GetUser(ctx context.Context, username string) (*api.UserProfile, error)
	Outbox(ctx context.Context, username string) ([]*api.OutgoingMessage, error)
	Inbox(ctx context.Context, username string) ([]*api.IncomingMessage, error)
	Send(ctx context.Context, toUsername, body string) (*api.MessageReceipt, error)
	GetMessage(ctx context.Context, id string) (*api.FullMessage, error)
	MarkRead(ctx context.Context, id string) (*api.ReadReceipt, error)
}
