package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"github.com/dmitrijs2005/tasktracker/internal/server/config"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// e2eClient talks to a full in-process server backed by the memory store.
type e2eClient struct {
	t     *testing.T
	api   pb.TaskTrackerClient
	token string
}

func startE2E(t *testing.T) *e2eClient {
	t.Helper()

	cfg := &config.Config{
		SecretKey:                    "e2e-secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
	}
	clock := timex.FixedClock{T: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}
	m := repomanager.NewMemoryRepositoryManager()
	tasks := services.NewTaskService(m, clock, logging.Nop{})
	srv, err := NewGRPCServer("bufconn", logging.Nop{},
		services.NewUserService(m, cfg, clock, logging.Nop{}),
		tasks,
		services.NewCategoryService(m, clock, logging.Nop{}),
		services.NewExportService(tasks, cfg, clock, logging.Nop{}),
		cfg.SecretKey)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	gs := srv.NewServer()
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &e2eClient{t: t, api: pb.NewTaskTrackerClient(conn)}
}

// ctx carries the current access token, if any.
func (c *e2eClient) ctx() context.Context {
	ctx := context.Background()
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, c.token)
	}
	return ctx
}

func (c *e2eClient) register(name string) {
	c.t.Helper()
	resp, err := c.api.Register(c.ctx(), &pb.RegisterRequest{Username: name, Password: "password1", PasswordConfirm: "password1"})
	require.NoError(c.t, err)
	c.token = resp.GetAccessToken()
}

func (c *e2eClient) createTask(req *pb.CreateTaskRequest) *pb.Task {
	c.t.Helper()
	task, err := c.api.CreateTask(c.ctx(), req)
	require.NoError(c.t, err)
	return task
}

func violations(t *testing.T, err error) []string {
	t.Helper()
	st := status.Convert(err)
	require.Equal(t, codes.InvalidArgument, st.Code(), "%v", err)
	var fields []string
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				fields = append(fields, v.GetField())
			}
		}
	}
	return fields
}

func TestE2E_Unauthenticated(t *testing.T) {
	c := startE2E(t)

	ping, err := c.api.Ping(c.ctx(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	_, err = c.api.ListTasks(c.ctx(), &pb.ListTasksRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestE2E_TaskLifecycle(t *testing.T) {
	c := startE2E(t)
	c.register("alice")

	_, err := c.api.CreateTask(c.ctx(), &pb.CreateTaskRequest{Title: "Report", DueDate: "2026-10-15"})
	assert.Equal(t, []string{"due_date"}, violations(t, err))

	task := c.createTask(&pb.CreateTaskRequest{Title: "Report", DueDate: "2026-10-17", Priority: "high"})
	assert.Equal(t, "pending", task.GetStatus())
	assert.Nil(t, task.GetCompletedAt())
	assert.Equal(t, "alice", task.GetUser().GetUsername())

	task, err = c.api.ToggleTask(c.ctx(), &pb.TaskIdRequest{Id: task.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "completed", task.GetStatus())
	assert.NotNil(t, task.GetCompletedAt())

	renamed := "Final report"
	_, err = c.api.UpdateTask(c.ctx(), &pb.UpdateTaskRequest{Id: task.GetId(), Title: &renamed})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	pending := "pending"
	task, err = c.api.UpdateTask(c.ctx(), &pb.UpdateTaskRequest{Id: task.GetId(), Title: &renamed, Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, "pending", task.GetStatus())
	assert.Nil(t, task.GetCompletedAt())

	got, err := c.api.GetTask(c.ctx(), &pb.TaskIdRequest{Id: task.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "Final report", got.GetTitle())
}

func TestE2E_OwnershipAndBulk(t *testing.T) {
	c := startE2E(t)
	c.register("bob")
	foreign := c.createTask(&pb.CreateTaskRequest{Title: "three", DueDate: "2026-10-20"})

	c.register("alice")
	one := c.createTask(&pb.CreateTaskRequest{Title: "one", DueDate: "2026-10-20"})
	two := c.createTask(&pb.CreateTaskRequest{Title: "two", DueDate: "2026-10-20"})

	_, err := c.api.GetTask(c.ctx(), &pb.TaskIdRequest{Id: foreign.GetId()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	stats, err := c.api.GetStatistics(c.ctx(), &pb.GetStatisticsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.GetTotalTasks())
	assert.Equal(t, 0.0, stats.GetCompletionRate())

	del, err := c.api.BulkDelete(c.ctx(), &pb.BulkDeleteRequest{TaskIds: []string{one.GetId(), two.GetId(), foreign.GetId()}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, del.GetDeletedCount())

	list, err := c.api.ListTasks(c.ctx(), &pb.ListTasksRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetTasks())
}

func TestE2E_CategoriesAndExportDisabled(t *testing.T) {
	c := startE2E(t)
	c.register("alice")

	cat, err := c.api.CreateCategory(c.ctx(), &pb.CreateCategoryRequest{Name: "Work"})
	require.NoError(t, err)
	assert.Equal(t, "#007bff", cat.GetColor())
	assert.Equal(t, time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC), cat.GetCreatedAt().AsTime())

	_, err = c.api.CreateCategory(c.ctx(), &pb.CreateCategoryRequest{Name: "Work"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	task := c.createTask(&pb.CreateTaskRequest{Title: "t", DueDate: "2026-10-20", CategoryId: cat.GetId()})
	require.NotNil(t, task.GetCategory())

	_, err = c.api.DeleteCategory(c.ctx(), &pb.CategoryIdRequest{Id: cat.GetId()})
	require.NoError(t, err)
	task, err = c.api.GetTask(c.ctx(), &pb.TaskIdRequest{Id: task.GetId()})
	require.NoError(t, err)
	assert.Nil(t, task.GetCategory())

	_, err = c.api.ExportTasks(c.ctx(), &pb.ExportTasksRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestE2E_DeletedAccountTokenIsRejected(t *testing.T) {
	c := startE2E(t)
	c.register("alice")
	c.createTask(&pb.CreateTaskRequest{Title: "before", DueDate: "2026-10-20"})

	_, err := c.api.DeleteAccount(c.ctx(), &pb.DeleteAccountRequest{})
	require.NoError(t, err)

	_, err = c.api.CreateTask(c.ctx(), &pb.CreateTaskRequest{Title: "orphan", DueDate: "2026-10-20"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrInvalidToken.Error(), status.Convert(err).Message())

	_, err = c.api.CreateCategory(c.ctx(), &pb.CreateCategoryRequest{Name: "Work"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// the name is free again and the new account starts empty
	c.register("alice")
	list, err := c.api.ListTasks(c.ctx(), &pb.ListTasksRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetTasks())
}
