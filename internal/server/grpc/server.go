// Package grpc exposes the task tracker services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/logging"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, r services.Registration) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, userName, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, ownerID, refreshToken string) error
	Profile(ctx context.Context, ownerID string) (*models.User, error)
	DeleteAccount(ctx context.Context, ownerID string) error
}

type taskSvc interface {
	Create(ctx context.Context, ownerID string, in services.NewTask) (*models.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (*models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, patch services.TaskPatch) (*models.Task, error)
	Toggle(ctx context.Context, ownerID, taskID string) (*models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	List(ctx context.Context, ownerID string, p services.ListParams) ([]*models.Task, error)
	Statistics(ctx context.Context, ownerID string) (*models.Statistics, error)
	BulkUpdate(ctx context.Context, ownerID string, p services.BulkUpdate) (int64, error)
	BulkDelete(ctx context.Context, ownerID string, ids []string) (int64, error)
	Today() time.Time
}

type categorySvc interface {
	Create(ctx context.Context, ownerID, name, colorHex string) (*models.Category, error)
	List(ctx context.Context, ownerID string) ([]*models.Category, error)
	Update(ctx context.Context, ownerID, id string, name, colorHex *string) (*models.Category, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type exportSvc interface {
	Export(ctx context.Context, ownerID string) (*services.Export, error)
}

type GRPCServer struct {
	pb.UnimplementedTaskTrackerServer
	address    string
	users      userSvc
	tasks      taskSvc
	categories categorySvc
	exports    exportSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ts taskSvc, cs categorySvc, es exportSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		tasks:      ts,
		categories: cs,
		exports:    es,
		jwtSecret:  []byte(secretKey),
	}, nil
}

// NewServer builds a grpc.Server with the interceptor chain and the service
// registered, ready to Serve on any listener.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterTaskTrackerServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
