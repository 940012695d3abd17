package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// ---- fakes ----

type fakeUsers struct {
	regResp *models.UserProfile
	regErr  error
	regGot  models.Registration

	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error

	listResp []*models.UserSummary
	getResp  *models.UserProfile
	fromResp []*models.OutgoingMessage
	toResp   []*models.IncomingMessage
	readErr  error

	calls int
}

func (f *fakeUsers) Register(_ context.Context, reg models.Registration) (*models.UserProfile, error) {
	f.regGot = reg
	return f.regResp, f.regErr
}
func (f *fakeUsers) Login(context.Context, string, string) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUsers) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUsers) List(context.Context) ([]*models.UserSummary, error) {
	f.calls++
	return f.listResp, f.readErr
}
func (f *fakeUsers) Get(context.Context, string) (*models.UserProfile, error) {
	f.calls++
	return f.getResp, f.readErr
}
func (f *fakeUsers) MessagesFrom(context.Context, string) ([]*models.OutgoingMessage, error) {
	f.calls++
	return f.fromResp, f.readErr
}
func (f *fakeUsers) MessagesTo(context.Context, string) ([]*models.IncomingMessage, error) {
	f.calls++
	return f.toResp, f.readErr
}

type fakeMessages struct {
	createResp *models.MessageReceipt
	createErr  error
	createFrom string

	getResp *models.FullMessage
	getErr  error

	markResp  *models.ReadReceipt
	markErr   error
	markCalls int
}

func (f *fakeMessages) Create(_ context.Context, from, to, body string) (*models.MessageReceipt, error) {
	f.createFrom = from
	return f.createResp, f.createErr
}
func (f *fakeMessages) Get(context.Context, string) (*models.FullMessage, error) {
	return f.getResp, f.getErr
}
func (f *fakeMessages) MarkRead(context.Context, string) (*models.ReadReceipt, error) {
	f.markCalls++
	return f.markResp, f.markErr
}

func newHandlerServer(us *fakeUsers, ms *fakeMessages) *GRPCServer {
	return NewGRPCServer("", logging.Nop{}, us, ms, "secret")
}

func asUser(username string) context.Context {
	return withUsername(context.Background(), username)
}

func aliceToBob() *models.FullMessage {
	return &models.FullMessage{
		ID:       "m1",
		Body:     "hi",
		SentAt:   time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		FromUser: models.PublicProfile{Username: "alice", FirstName: "Alice"},
		ToUser:   models.PublicProfile{Username: "bob", FirstName: "Bob"},
	}
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), "err=%v", err)
}

// ---- tests ----

func TestMapError(t *testing.T) {
	s := newHandlerServer(&fakeUsers{}, &fakeMessages{})

	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("%w: body is required", common.ErrorValidation), codes.InvalidArgument},
		{fmt.Errorf("wrap: %w", common.ErrorNotFound), codes.NotFound},
		{fmt.Errorf("wrap: %w", common.ErrorAlreadyExists), codes.AlreadyExists},
		{fmt.Errorf("wrap: %w", common.ErrorForeignKey), codes.FailedPrecondition},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{common.ErrRefreshTokenExpired, codes.Unauthenticated},
		{common.ErrorForbidden, codes.PermissionDenied},
		{errors.New("db error: connection reset"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			err := s.mapError(context.Background(), tt.err)
			requireCode(t, err, tt.code)
		})
	}
}

func TestMapError_InternalHidesDetails(t *testing.T) {
	s := newHandlerServer(&fakeUsers{}, &fakeMessages{})

	err := s.mapError(context.Background(), errors.New("db error: password=hunter2"))
	st, _ := status.FromError(err)
	assert.Equal(t, "internal error", st.Message())

	err = s.mapError(context.Background(), fmt.Errorf("%w: phone is required", common.ErrorValidation))
	st, _ = status.FromError(err)
	assert.Contains(t, st.Message(), "phone is required")
}

func TestRegister_ReturnsTokens(t *testing.T) {
	us := &fakeUsers{
		regResp:   &models.UserProfile{Username: "alice"},
		loginResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}
	s := newHandlerServer(us, &fakeMessages{})

	resp, err := s.Register(context.Background(), &api.RegisterRequest{
		Username: "alice", Password: "pw", FirstName: "A", LastName: "L", Phone: "1",
	})
	require.NoError(t, err)
	assert.True(t, proto.Equal(&api.TokenResponse{AccessToken: "a", RefreshToken: "r"}, resp), "got %v", resp)
	assert.Equal(t, models.Registration{Username: "alice", Password: "pw", FirstName: "A", LastName: "L", Phone: "1"}, us.regGot)
}

func TestRegister_Errors(t *testing.T) {
	s := newHandlerServer(&fakeUsers{regErr: common.ErrorAlreadyExists}, &fakeMessages{})
	_, err := s.Register(context.Background(), &api.RegisterRequest{Username: "alice"})
	requireCode(t, err, codes.AlreadyExists)

	s = newHandlerServer(&fakeUsers{regErr: fmt.Errorf("%w: phone is required", common.ErrorValidation)}, &fakeMessages{})
	_, err = s.Register(context.Background(), &api.RegisterRequest{Username: "alice"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestLogin(t *testing.T) {
	s := newHandlerServer(&fakeUsers{loginErr: common.ErrorUnauthorized}, &fakeMessages{})
	_, err := s.Login(context.Background(), &api.LoginRequest{Username: "alice", Password: "x"})
	requireCode(t, err, codes.Unauthenticated)
	st, _ := status.FromError(err)
	assert.Equal(t, "invalid username or password", st.Message())

	s = newHandlerServer(&fakeUsers{loginErr: fmt.Errorf("%w: db down", common.ErrorInternal)}, &fakeMessages{})
	_, err = s.Login(context.Background(), &api.LoginRequest{Username: "alice", Password: "x"})
	requireCode(t, err, codes.Internal)

	s = newHandlerServer(&fakeUsers{loginResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}, &fakeMessages{})
	resp, err := s.Login(context.Background(), &api.LoginRequest{Username: "alice", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.AccessToken)
}

func TestRefreshToken(t *testing.T) {
	s := newHandlerServer(&fakeUsers{refreshErr: common.ErrRefreshTokenExpired}, &fakeMessages{})
	_, err := s.RefreshToken(context.Background(), &api.RefreshTokenRequest{RefreshToken: "r"})
	requireCode(t, err, codes.Unauthenticated)

	s = newHandlerServer(&fakeUsers{refreshResp: &services.TokenPair{AccessToken: "a2", RefreshToken: "r2"}}, &fakeMessages{})
	resp, err := s.RefreshToken(context.Background(), &api.RefreshTokenRequest{RefreshToken: "r"})
	require.NoError(t, err)
	assert.Equal(t, "r2", resp.RefreshToken)
}

func TestAccountReads_SelfOnly(t *testing.T) {
	us := &fakeUsers{
		getResp:  &models.UserProfile{Username: "bob", Phone: "1"},
		fromResp: []*models.OutgoingMessage{{ID: "m1", ToUser: models.PublicProfile{Username: "alice"}}},
		toResp:   []*models.IncomingMessage{{ID: "m2", FromUser: models.PublicProfile{Username: "alice"}}},
	}
	s := newHandlerServer(us, &fakeMessages{})

	_, err := s.GetUser(asUser("alice"), &api.UsernameRequest{Username: "bob"})
	requireCode(t, err, codes.PermissionDenied)
	_, err = s.MessagesFrom(asUser("alice"), &api.UsernameRequest{Username: "bob"})
	requireCode(t, err, codes.PermissionDenied)
	_, err = s.MessagesTo(asUser("alice"), &api.UsernameRequest{Username: "bob"})
	requireCode(t, err, codes.PermissionDenied)
	_, err = s.GetUser(context.Background(), &api.UsernameRequest{Username: "bob"})
	requireCode(t, err, codes.Unauthenticated)
	assert.Zero(t, us.calls, "services must not be reached")

	p, err := s.GetUser(asUser("bob"), &api.UsernameRequest{Username: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "1", p.Phone)

	from, err := s.MessagesFrom(asUser("bob"), &api.UsernameRequest{Username: "bob"})
	require.NoError(t, err)
	require.Len(t, from.Messages, 1)
	assert.Equal(t, "alice", from.Messages[0].ToUser.Username)

	to, err := s.MessagesTo(asUser("bob"), &api.UsernameRequest{Username: "bob"})
	require.NoError(t, err)
	require.Len(t, to.Messages, 1)
	assert.Equal(t, "m2", to.Messages[0].GetId())
}

func TestListUsers(t *testing.T) {
	us := &fakeUsers{listResp: []*models.UserSummary{{Username: "alice"}, {Username: "bob"}}}
	s := newHandlerServer(us, &fakeMessages{})

	_, err := s.ListUsers(context.Background(), &api.Empty{})
	requireCode(t, err, codes.Unauthenticated)

	resp, err := s.ListUsers(asUser("carol"), &api.Empty{})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)

	us.readErr = errors.New("db down")
	_, err = s.ListUsers(asUser("carol"), &api.Empty{})
	requireCode(t, err, codes.Internal)
}

func TestSendMessage_SenderFromIdentity(t *testing.T) {
	ms := &fakeMessages{createResp: &models.MessageReceipt{ID: "m1", FromUsername: "alice", ToUsername: "bob", Body: "hi"}}
	s := newHandlerServer(&fakeUsers{}, ms)

	resp, err := s.SendMessage(asUser("alice"), &api.SendMessageRequest{ToUsername: "bob", Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "alice", ms.createFrom)
	assert.Equal(t, "m1", resp.GetId())

	_, err = s.SendMessage(context.Background(), &api.SendMessageRequest{ToUsername: "bob", Body: "hi"})
	requireCode(t, err, codes.Unauthenticated)

	ms.createErr = common.ErrorForeignKey
	_, err = s.SendMessage(asUser("alice"), &api.SendMessageRequest{ToUsername: "ghost", Body: "hi"})
	requireCode(t, err, codes.FailedPrecondition)
}

func TestGetMessage_ParticipantsOnly(t *testing.T) {
	ms := &fakeMessages{getResp: aliceToBob()}
	s := newHandlerServer(&fakeUsers{}, ms)

	for _, who := range []string{"alice", "bob"} {
		m, err := s.GetMessage(asUser(who), &api.MessageIDRequest{Id: "m1"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", m.GetFromUser().GetFirstName())
		assert.Nil(t, m.GetReadAt())
	}

	readAt := time.Date(2026, 5, 1, 12, 5, 0, 0, time.UTC)
	ms.getResp.ReadAt = &readAt
	m, err := s.GetMessage(asUser("bob"), &api.MessageIDRequest{Id: "m1"})
	require.NoError(t, err)
	require.NotNil(t, m.GetReadAt())
	assert.True(t, readAt.Equal(m.GetReadAt().AsTime()))

	_, err = s.GetMessage(asUser("carol"), &api.MessageIDRequest{Id: "m1"})
	requireCode(t, err, codes.PermissionDenied)

	ms.getResp, ms.getErr = nil, common.ErrorNotFound
	_, err = s.GetMessage(asUser("alice"), &api.MessageIDRequest{Id: "nope"})
	requireCode(t, err, codes.NotFound)
}

func TestMarkRead_RecipientOnly(t *testing.T) {
	readAt := time.Date(2026, 5, 1, 12, 5, 0, 0, time.UTC)
	ms := &fakeMessages{getResp: aliceToBob(), markResp: &models.ReadReceipt{ID: "m1", ReadAt: readAt}}
	s := newHandlerServer(&fakeUsers{}, ms)

	_, err := s.MarkRead(asUser("alice"), &api.MessageIDRequest{Id: "m1"})
	requireCode(t, err, codes.PermissionDenied)
	_, err = s.MarkRead(asUser("carol"), &api.MessageIDRequest{Id: "m1"})
	requireCode(t, err, codes.PermissionDenied)
	assert.Zero(t, ms.markCalls)

	rr, err := s.MarkRead(asUser("bob"), &api.MessageIDRequest{Id: "m1"})
	require.NoError(t, err)
	assert.True(t, readAt.Equal(rr.GetReadAt().AsTime()))
	assert.Equal(t, 1, ms.markCalls)

	ms.getResp, ms.getErr = nil, common.ErrorNotFound
	_, err = s.MarkRead(asUser("bob"), &api.MessageIDRequest{Id: "nope"})
	requireCode(t, err, codes.NotFound)
}

func TestPing(t *testing.T) {
	s := newHandlerServer(&fakeUsers{}, &fakeMessages{})
	resp, err := s.Ping(context.Background(), &api.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}
