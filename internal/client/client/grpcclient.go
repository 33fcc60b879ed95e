package client

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/tasktracker/internal/client/models"
	"github.com/dmitrijs2005/tasktracker/internal/common"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.TaskTrackerClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.Tokens()
	if access != "" {
		ctx = withAccessToken(ctx, access)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || refresh == "" {
		return err
	}

	tokens := &pb.TokenResponse{}
	if err := invoker(ctx, pb.TaskTracker_RefreshToken_FullMethodName, &pb.RefreshTokenRequest{RefreshToken: refresh}, tokens, cc, opts...); err != nil {
		return err
	}
	s.SetTokens(tokens.GetAccessToken(), tokens.GetRefreshToken())

	// tokens refreshed, retry once with the new access token
	ctx = withAccessToken(ctx, tokens.GetAccessToken())
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewTaskTrackerClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewTaskTrackerClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = accessToken, refreshToken
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		return nil, mapError(err)
	}
	s.SetTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return &models.RegisterResponse{
		User:         fromUser(resp.GetUser()),
		AccessToken:  resp.GetAccessToken(),
		RefreshToken: resp.GetRefreshToken(),
	}, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return mapError(err)
	}
	s.SetTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.Tokens()
	if refresh == "" {
		return ErrNotLoggedIn
	}
	_, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh})
	if err = mapError(err); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	s.SetTokens("", "")
	return nil
}

func (s *GRPCClient) Profile(ctx context.Context) (*models.User, error) {
	resp, err := s.client.Profile(ctx, &pb.ProfileRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	u := fromUser(resp)
	return &u, nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context) error {
	if _, err := s.client.DeleteAccount(ctx, &pb.DeleteAccountRequest{}); err != nil {
		return mapError(err)
	}
	s.SetTokens("", "")
	return nil
}

func (s *GRPCClient) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	return task(s.client.CreateTask(ctx, toCreateTask(req)))
}

func (s *GRPCClient) GetTask(ctx context.Context, id string) (*models.Task, error) {
	return task(s.client.GetTask(ctx, &pb.TaskIdRequest{Id: id}))
}

func (s *GRPCClient) UpdateTask(ctx context.Context, req *models.UpdateTaskRequest) (*models.Task, error) {
	return task(s.client.UpdateTask(ctx, toUpdateTask(req)))
}

func (s *GRPCClient) DeleteTask(ctx context.Context, id string) error {
	_, err := s.client.DeleteTask(ctx, &pb.TaskIdRequest{Id: id})
	return mapError(err)
}

func (s *GRPCClient) ToggleTask(ctx context.Context, id string) (*models.Task, error) {
	return task(s.client.ToggleTask(ctx, &pb.TaskIdRequest{Id: id}))
}

// task unwraps a call that returns a single task.
func task(resp *pb.Task, err error) (*models.Task, error) {
	if err != nil {
		return nil, mapError(err)
	}
	t := fromTask(resp)
	return &t, nil
}

func (s *GRPCClient) ListTasks(ctx context.Context, req *models.ListTasksRequest) ([]models.Task, error) {
	resp, err := s.client.ListTasks(ctx, toListTasks(req))
	if err != nil {
		return nil, mapError(err)
	}
	return fromTasks(resp.GetTasks()), nil
}

func (s *GRPCClient) Statistics(ctx context.Context) (*models.Statistics, error) {
	resp, err := s.client.GetStatistics(ctx, &pb.GetStatisticsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return fromStatistics(resp), nil
}

func (s *GRPCClient) BulkUpdate(ctx context.Context, req *models.BulkUpdateRequest) (int64, error) {
	resp, err := s.client.BulkUpdate(ctx, &pb.BulkUpdateRequest{
		TaskIds:  req.TaskIDs,
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.GetUpdatedCount(), nil
}

func (s *GRPCClient) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	resp, err := s.client.BulkDelete(ctx, &pb.BulkDeleteRequest{TaskIds: ids})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.GetDeletedCount(), nil
}

func (s *GRPCClient) ExportTasks(ctx context.Context) (*models.ExportResponse, error) {
	resp, err := s.client.ExportTasks(ctx, &pb.ExportTasksRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return &models.ExportResponse{Key: resp.GetKey(), URL: resp.GetUrl(), ExpiresAt: resp.GetExpiresAt().AsTime()}, nil
}

func (s *GRPCClient) CreateCategory(ctx context.Context, name, color string) (*models.Category, error) {
	return category(s.client.CreateCategory(ctx, &pb.CreateCategoryRequest{Name: name, Color: color}))
}

func (s *GRPCClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := s.client.ListCategories(ctx, &pb.ListCategoriesRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	res := make([]models.Category, 0, len(resp.GetCategories()))
	for _, c := range resp.GetCategories() {
		res = append(res, fromCategory(c))
	}
	return res, nil
}

func (s *GRPCClient) UpdateCategory(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
	return category(s.client.UpdateCategory(ctx, &pb.UpdateCategoryRequest{Id: req.ID, Name: req.Name, Color: req.Color}))
}

func (s *GRPCClient) DeleteCategory(ctx context.Context, id string) error {
	_, err := s.client.DeleteCategory(ctx, &pb.CategoryIdRequest{Id: id})
	return mapError(err)
}

func category(resp *pb.Category, err error) (*models.Category, error) {
	if err != nil {
		return nil, mapError(err)
	}
	c := fromCategory(resp)
	return &c, nil
}
