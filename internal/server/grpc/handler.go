package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// caller returns the identity placed in ctx by accessTokenInterceptor.
func caller(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return id, status.Error(codes.Unauthenticated, "missing identity")
	}
	return id, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	user, tokens, err := s.users.Register(ctx, services.Registration{
		UserName:        req.GetUsername(),
		Email:           req.GetEmail(),
		Password:        req.GetPassword(),
		PasswordConfirm: req.GetPasswordConfirm(),
		FirstName:       req.GetFirstName(),
		LastName:        req.GetLastName(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	return &pb.RegisterResponse{
		User:         toUser(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {

	tokens, err := s.users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.MessageResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, id.UserID, req.GetRefreshToken()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.MessageResponse{Message: "Logged out successfully"}, nil
}

func (s *GRPCServer) Profile(ctx context.Context, req *pb.ProfileRequest) (*pb.User, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Profile(ctx, id.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toUser(user), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.MessageResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.DeleteAccount(ctx, id.UserID); err != nil {
		return nil, toStatus(err)
	}
	return &pb.MessageResponse{Message: "Account deleted"}, nil
}
