package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.MessagelyClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// accessTokenInterceptor attaches the access token to protected calls. When
// the server answers that the token expired, the tokens are refreshed once
// and the call is retried.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if api.PublicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	accessToken, refreshToken := s.tokens()

	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refreshToken == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refreshToken})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())

	return invoker(withAccessToken(ctx, resp.GetAccessToken()), method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpointURL. Extra dial options are appended
// after the defaults (insecure transport, token interceptor).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewMessagelyClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Register creates the account and keeps the returned tokens, so the user
// is logged in afterwards.
func (s *GRPCClient) Register(ctx context.Context, reg *api.RegisterRequest) error {
	resp, err := s.client.Register(ctx, reg)
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, username string, password []byte) error {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: username, Password: string(password)})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

// Logout forgets the tokens. The refresh token stays valid on the server
// until it expires.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]*api.UserSummary, error) {
	resp, err := s.client.ListUsers(ctx, &api.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetUsers(), nil
}

func (s *GRPCClient) GetUser(ctx context.Context, username string) (*api.UserProfile, error) {
	resp, err := s.client.GetUser(ctx, &api.UsernameRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Outbox(ctx context.Context, username string) ([]*api.OutgoingMessage, error) {
	resp, err := s.client.MessagesFrom(ctx, &api.UsernameRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetMessages(), nil
}

func (s *GRPCClient) Inbox(ctx context.Context, username string) ([]*api.IncomingMessage, error) {
	resp, err := s.client.MessagesTo(ctx, &api.UsernameRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetMessages(), nil
}

func (s *GRPCClient) Send(ctx context.Context, toUsername, body string) (*api.MessageReceipt, error) {
	resp, err := s.client.SendMessage(ctx, &api.SendMessageRequest{ToUsername: toUsername, Body: body})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GetMessage(ctx context.Context, id string) (*api.FullMessage, error) {
	resp, err := s.client.GetMessage(ctx, &api.MessageIDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) MarkRead(ctx context.Context, id string) (*api.ReadReceipt, error) {
	resp, err := s.client.MarkRead(ctx, &api.MessageIDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
