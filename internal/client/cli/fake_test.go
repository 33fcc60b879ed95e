package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/client/client"
	"github.com/dmitrijs2005/tasktracker/internal/client/models"
	"github.com/dmitrijs2005/tasktracker/internal/client/session"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	addr            string
	access, refresh string
	closed          bool

	// rotate simulates a transparent refresh on the next authed call
	rotate *[2]string

	err      error
	pingErrs []error
	pings    int

	tasks      []models.Task
	task       *models.Task
	categories []models.Category
	stats      *models.Statistics
	export     *models.ExportResponse

	loginUser, loginPass string
	registerReq          *models.RegisterRequest
	createReq            *models.CreateTaskRequest
	listReq              *models.ListTasksRequest
	updateReq            *models.UpdateTaskRequest
	bulkReq              *models.BulkUpdateRequest
	deletedIDs           []string
	categoryReq          *models.UpdateCategoryRequest
	createdCategory      [2]string
	accountDeleted       bool
}

func (f *fakeClient) authed() error {
	if f.rotate != nil {
		f.access, f.refresh = f.rotate[0], f.rotate[1]
		f.rotate = nil
	}
	return f.err
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Ping(context.Context) error {
	f.pings++
	if len(f.pingErrs) > 0 {
		err := f.pingErrs[0]
		f.pingErrs = f.pingErrs[1:]
		return err
	}
	return f.err
}

func (f *fakeClient) Register(_ context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	f.registerReq = req
	if f.err != nil {
		return nil, f.err
	}
	f.access, f.refresh = "A", "R"
	return &models.RegisterResponse{User: models.User{ID: "u1", Username: req.Username}, AccessToken: "A", RefreshToken: "R"}, nil
}

func (f *fakeClient) Login(_ context.Context, username, password string) error {
	f.loginUser, f.loginPass = username, password
	if f.err != nil {
		return f.err
	}
	f.access, f.refresh = "A", "R"
	return nil
}

func (f *fakeClient) Logout(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.access, f.refresh = "", ""
	return nil
}

func (f *fakeClient) Profile(context.Context) (*models.User, error) {
	if err := f.authed(); err != nil {
		return nil, err
	}
	return &models.User{Username: "alice", Email: "alice@example.com", FirstName: "Alice",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)}, nil
}

func (f *fakeClient) DeleteAccount(context.Context) error {
	if err := f.authed(); err != nil {
		return err
	}
	f.accountDeleted = true
	f.access, f.refresh = "", ""
	return nil
}

func (f *fakeClient) CreateTask(_ context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	f.createReq = req
	if err := f.authed(); err != nil {
		return nil, err
	}
	return &models.Task{ID: "t1", Title: req.Title}, nil
}

func (f *fakeClient) GetTask(context.Context, string) (*models.Task, error) {
	return f.task, f.authed()
}

func (f *fakeClient) UpdateTask(_ context.Context, req *models.UpdateTaskRequest) (*models.Task, error) {
	f.updateReq = req
	return f.task, f.authed()
}

func (f *fakeClient) DeleteTask(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.authed()
}

func (f *fakeClient) ToggleTask(context.Context, string) (*models.Task, error) {
	return f.task, f.authed()
}

func (f *fakeClient) ListTasks(_ context.Context, req *models.ListTasksRequest) ([]models.Task, error) {
	f.listReq = req
	return f.tasks, f.authed()
}

func (f *fakeClient) Statistics(context.Context) (*models.Statistics, error) {
	return f.stats, f.authed()
}

func (f *fakeClient) BulkUpdate(_ context.Context, req *models.BulkUpdateRequest) (int64, error) {
	f.bulkReq = req
	return int64(len(req.TaskIDs)), f.authed()
}

func (f *fakeClient) BulkDelete(_ context.Context, ids []string) (int64, error) {
	f.deletedIDs = ids
	return int64(len(ids)), f.authed()
}

func (f *fakeClient) ExportTasks(context.Context) (*models.ExportResponse, error) {
	return f.export, f.authed()
}

func (f *fakeClient) CreateCategory(_ context.Context, name, color string) (*models.Category, error) {
	f.createdCategory = [2]string{name, color}
	return &models.Category{ID: "c1", Name: name, Color: color}, f.authed()
}

func (f *fakeClient) ListCategories(context.Context) ([]models.Category, error) {
	return f.categories, f.authed()
}

func (f *fakeClient) UpdateCategory(_ context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
	f.categoryReq = req
	return &models.Category{ID: req.ID, Name: "Office", Color: "#007bff"}, f.authed()
}

func (f *fakeClient) DeleteCategory(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.authed()
}

func (f *fakeClient) Tokens() (string, string) { return f.access, f.refresh }

func (f *fakeClient) SetTokens(access, refresh string) { f.access, f.refresh = access, refresh }

var _ client.Client = (*fakeClient)(nil)

type harness struct {
	t       *testing.T
	app     *App
	fake    *fakeClient
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	session *session.Store
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		fake:   &fakeClient{},
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	h.session = session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	h.app = NewApp(strings.NewReader(input), h.out, h.errOut)
	h.app.clock = timex.FixedClock{T: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}
	h.app.newClient = func(addr string) (client.Client, error) {
		h.fake.addr = addr
		return h.fake, nil
	}
	return h
}

func (h *harness) loggedIn() *harness {
	h.t.Helper()
	require.NoError(h.t, h.session.Save(&session.Session{Username: "alice", AccessToken: "A", RefreshToken: "R"}))
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.Execute(context.Background(), append(args, "--session", h.session.Path()))
}

func (h *harness) saved() *session.Session {
	h.t.Helper()
	s, err := h.session.Load()
	require.NoError(h.t, err)
	return s
}

func stubPasswords(t *testing.T, passwords ...string) *[]string {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	var prompts []string
	getPassword = func(_ io.Writer, prompt string) ([]byte, error) {
		prompts = append(prompts, prompt)
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}
	return &prompts
}
