package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/access"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.TokenResponse, error) {
	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	_, err := s.users.Register(ctx, models.Registration{
		Username:  req.GetUsername(),
		Password:  req.GetPassword(),
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
		Phone:     req.GetPhone(),
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	tokens, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", req.GetUsername())
	return &api.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Warn(ctx, "Login failed", "username", req.GetUsername())
			return nil, status.Error(codes.Unauthenticated, "invalid username or password")
		}
		return nil, s.mapError(ctx, err)
	}

	return &api.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &api.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *api.Empty) (*api.ListUsersResponse, error) {
	if err := access.RequireIdentity(UsernameFromContext(ctx)); err != nil {
		return nil, s.mapError(ctx, err)
	}

	list, err := s.users.List(ctx)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &api.ListUsersResponse{Users: toUserSummaries(list)}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *api.UsernameRequest) (*api.UserProfile, error) {
	if err := access.AuthorizeAccount(UsernameFromContext(ctx), req.GetUsername()); err != nil {
		return nil, s.mapError(ctx, err)
	}

	p, err := s.users.Get(ctx, req.GetUsername())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return toUserProfile(p), nil
}

func (s *GRPCServer) MessagesFrom(ctx context.Context, req *api.UsernameRequest) (*api.MessagesFromResponse, error) {
	if err := access.AuthorizeAccount(UsernameFromContext(ctx), req.GetUsername()); err != nil {
		return nil, s.mapError(ctx, err)
	}

	msgs, err := s.users.MessagesFrom(ctx, req.GetUsername())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &api.MessagesFromResponse{Messages: toOutgoing(msgs)}, nil
}

func (s *GRPCServer) MessagesTo(ctx context.Context, req *api.UsernameRequest) (*api.MessagesToResponse, error) {
	if err := access.AuthorizeAccount(UsernameFromContext(ctx), req.GetUsername()); err != nil {
		return nil, s.mapError(ctx, err)
	}

	msgs, err := s.users.MessagesTo(ctx, req.GetUsername())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &api.MessagesToResponse{Messages: toIncoming(msgs)}, nil
}

// SendMessage always sends as the authenticated user; there is no way to
// name another sender.
func (s *GRPCServer) SendMessage(ctx context.Context, req *api.SendMessageRequest) (*api.MessageReceipt, error) {
	actor := UsernameFromContext(ctx)
	if err := access.RequireIdentity(actor); err != nil {
		return nil, s.mapError(ctx, err)
	}

	r, err := s.messages.Create(ctx, actor, req.GetToUsername(), req.GetBody())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return toReceipt(r), nil
}

func (s *GRPCServer) GetMessage(ctx context.Context, req *api.MessageIDRequest) (*api.FullMessage, error) {
	actor := UsernameFromContext(ctx)
	if err := access.RequireIdentity(actor); err != nil {
		return nil, s.mapError(ctx, err)
	}

	m, err := s.messages.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	if err := access.AuthorizeView(actor, m); err != nil {
		return nil, s.mapError(ctx, err)
	}

	return toFullMessage(m), nil
}

func (s *GRPCServer) MarkRead(ctx context.Context, req *api.MessageIDRequest) (*api.ReadReceipt, error) {
	actor := UsernameFromContext(ctx)
	if err := access.RequireIdentity(actor); err != nil {
		return nil, s.mapError(ctx, err)
	}

	m, err := s.messages.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	if err := access.AuthorizeMarkRead(actor, m); err != nil {
		return nil, s.mapError(ctx, err)
	}

	rr, err := s.messages.MarkRead(ctx, req.GetId())
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	return &api.ReadReceipt{Id: rr.ID, ReadAt: timestamppb.New(rr.ReadAt)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

// mapError turns service errors into gRPC statuses. Only validation errors
// carry their text to the client; unexpected errors are logged and reported
// as Internal.
func (s *GRPCServer) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorForeignKey):
		return status.Error(codes.FailedPrecondition, common.ErrorForeignKey.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
