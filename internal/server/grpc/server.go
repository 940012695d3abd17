// Package grpc exposes the account directory and the message ledger over
// gRPC using the protobuf service generated in package api.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the part of services.UserService the handlers use.
type UserService interface {
	Register(ctx context.Context, reg models.Registration) (*models.UserProfile, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	List(ctx context.Context) ([]*models.UserSummary, error)
	Get(ctx context.Context, username string) (*models.UserProfile, error)
	MessagesFrom(ctx context.Context, username string) ([]*models.OutgoingMessage, error)
	MessagesTo(ctx context.Context, username string) ([]*models.IncomingMessage, error)
}

// MessageService is the part of services.MessageService the handlers use.
type MessageService interface {
	Create(ctx context.Context, fromUsername, toUsername, body string) (*models.MessageReceipt, error)
	MarkRead(ctx context.Context, id string) (*models.ReadReceipt, error)
	Get(ctx context.Context, id string) (*models.FullMessage, error)
}

type GRPCServer struct {
	api.UnimplementedMessagelyServer
	address   string
	users     UserService
	messages  MessageService
	logger    logging.Logger
	jwtSecret []byte
}

var _ api.MessagelyServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us UserService, ms MessageService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		messages:  ms,
		jwtSecret: []byte(secretKey),
	}
}

// NewServer builds a grpc.Server with the interceptors installed and the
// service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterMessagelyServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
