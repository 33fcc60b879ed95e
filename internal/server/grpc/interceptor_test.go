package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	users := &fakeUser{regResp: &models.User{ID: "u1", UserName: "alice"}}
	return &GRPCServer{logger: logging.Nop{}, users: users, jwtSecret: []byte(secret)}
}

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethodsSkipToken(t *testing.T) {
	s := newTestServer("secret")

	for _, m := range []string{
		pb.TaskTracker_Ping_FullMethodName,
		pb.TaskTracker_Register_FullMethodName,
		pb.TaskTracker_Login_FullMethodName,
		pb.TaskTracker_RefreshToken_FullMethodName,
	} {
		info := &grpc.UnaryServerInfo{FullMethod: m}
		called := false
		resp, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
			called = true
			return "ok", nil
		})
		require.NoError(t, err, m)
		assert.True(t, called, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_CreateTask_FullMethodName}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_ListTasks_FullMethodName}

	_, err := s.accessTokenInterceptor(withToken("not-a-valid-jwt"), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called with invalid token")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrInvalidToken.Error(), status.Convert(err).Message())
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")
	token, err := auth.GenerateToken("u1", "alice", []byte("secret"), -time.Minute)
	require.NoError(t, err)
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_ListTasks_FullMethodName}

	_, err = s.accessTokenInterceptor(withToken(token), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called with expired token")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrTokenExpired.Error(), status.Convert(err).Message())
}

func TestInterceptor_ValidTokenSetsIdentity(t *testing.T) {
	s := newTestServer("secret")
	token, err := auth.GenerateToken("u1", "alice", []byte("secret"), time.Minute)
	require.NoError(t, err)
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_ListTasks_FullMethodName}

	var got auth.Identity
	_, err = s.accessTokenInterceptor(withToken(token), nil, info, func(ctx context.Context, req any) (any, error) {
		id, ok := auth.IdentityFromContext(ctx)
		require.True(t, ok)
		got = id
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: "u1", UserName: "alice"}, got)
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_Ping_FullMethodName}
	want := status.Error(codes.NotFound, "not found")

	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "resp", want
	})
	assert.Equal(t, "resp", resp)
	assert.Equal(t, want, err)
}

func TestInterceptor_IdentityUsesStoredUserName(t *testing.T) {
	s := newTestServer("secret")
	s.users.(*fakeUser).regResp = &models.User{ID: "u1", UserName: "alice2"}
	token, err := auth.GenerateToken("u1", "alice", []byte("secret"), time.Minute)
	require.NoError(t, err)
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_CreateTask_FullMethodName}

	var got auth.Identity
	_, err = s.accessTokenInterceptor(withToken(token), nil, info, func(ctx context.Context, req any) (any, error) {
		got, _ = auth.IdentityFromContext(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.UserName)
	assert.Equal(t, "u1", s.users.(*fakeUser).gotOwner)
}

func TestInterceptor_DeletedUserIsRejected(t *testing.T) {
	s := newTestServer("secret")
	s.users.(*fakeUser).regErr = fmt.Errorf("error loading profile: %w", common.ErrorNotFound)
	token, err := auth.GenerateToken("u1", "alice", []byte("secret"), time.Minute)
	require.NoError(t, err)
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_CreateTask_FullMethodName}

	_, err = s.accessTokenInterceptor(withToken(token), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called for a deleted user")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrInvalidToken.Error(), status.Convert(err).Message())
}

func TestInterceptor_UserLookupFailureIsInternal(t *testing.T) {
	s := newTestServer("secret")
	s.users.(*fakeUser).regErr = errors.New("db down")
	token, err := auth.GenerateToken("u1", "alice", []byte("secret"), time.Minute)
	require.NoError(t, err)
	info := &grpc.UnaryServerInfo{FullMethod: pb.TaskTracker_ListTasks_FullMethodName}

	_, err = s.accessTokenInterceptor(withToken(token), nil, info, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when the user lookup fails")
		return nil, nil
	})
	assert.Equal(t, codes.Internal, status.Code(err))
}
