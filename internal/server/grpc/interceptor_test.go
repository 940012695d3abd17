package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/messagely/internal/api"
	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", logging.Nop{}, &fakeUsers{}, &fakeMessages{}, secret)
}

func ctxWithToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))
}

func TestInterceptor_PublicMethodWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: api.Messagely_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req any) (any, error) {
		handlerCalled = true
		if UsernameFromContext(ctx) != "" {
			t.Fatal("public call must not carry an identity")
		}
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled || resp != "ok" {
		t.Fatalf("handler not called or bad resp: %v", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: api.Messagely_SendMessage_FullMethodName}
	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestInterceptor_ValidToken(t *testing.T) {
	s := newTestServer("secret")

	tok, err := auth.GenerateToken("alice", []byte("secret"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	info := &grpc.UnaryServerInfo{FullMethod: api.Messagely_GetMessage_FullMethodName}
	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got = UsernameFromContext(ctx)
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(ctxWithToken(tok), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Fatalf("username in ctx = %q, want alice", got)
	}
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")

	tok, err := auth.GenerateToken("alice", []byte("secret"), -time.Second)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	info := &grpc.UnaryServerInfo{FullMethod: api.Messagely_ListUsers_FullMethodName}
	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	}

	_, err = s.accessTokenInterceptor(ctxWithToken(tok), nil, info, h)
	st, _ := status.FromError(err)
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		t.Fatalf("want Unauthenticated %q, got %v", common.ErrTokenExpired.Error(), err)
	}
}

func TestInterceptor_ForgedToken(t *testing.T) {
	s := newTestServer("secret")

	tok, err := auth.GenerateToken("alice", []byte("other-secret"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	info := &grpc.UnaryServerInfo{FullMethod: api.Messagely_MarkRead_FullMethodName}
	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for forged token")
		return nil, nil
	}

	_, err = s.accessTokenInterceptor(ctxWithToken(tok), nil, info, h)
	st, _ := status.FromError(err)
	if st.Code() != codes.Unauthenticated || st.Message() != "invalid token" {
		t.Fatalf("want Unauthenticated invalid token, got %v", err)
	}
}
