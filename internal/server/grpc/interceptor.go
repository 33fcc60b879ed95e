package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods are served without an access token.
var publicMethods = map[string]bool{
	pb.TaskTracker_Ping_FullMethodName:         true,
	pb.TaskTracker_Register_FullMethodName:     true,
	pb.TaskTracker_Login_FullMethodName:        true,
	pb.TaskTracker_RefreshToken_FullMethodName: true,
}

// accessTokenInterceptor resolves the caller identity from the access token
// for every method except the public ones. The token must belong to a user
// that still exists; the identity carries that user's stored name. Handlers
// read it with auth.IdentityFromContext and never trust ids from payloads.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		// the client refreshes its tokens on exactly this message
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	user, err := s.users.Profile(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}
		return nil, toStatus(err)
	}
	id.UserName = user.UserName

	return handler(auth.WithIdentity(ctx, id), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "rpc failed", append(args, "error", err)...)
	} else {
		s.logger.Info(ctx, "rpc", args...)
	}
	return resp, err
}
