package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"github.com/stretchr/testify/require"
)

var (
	// noon is "now" in every service test.
	noon      = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	yesterday = "2026-10-15"
	today     = "2026-10-16"
	tomorrow  = "2026-10-17"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func ptr[T any](v T) *T { return &v }

// movableClock lets a test advance time between calls.
type movableClock struct{ t time.Time }

func (c *movableClock) Now() time.Time { return c.t }

func newTaskService(t *testing.T) (*TaskService, repomanager.RepositoryManager) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	return NewTaskService(m, timex.FixedClock{T: noon}, logging.Nop{}), m
}

func mustCreate(t *testing.T, s *TaskService, owner string, in NewTask) *models.Task {
	t.Helper()
	if in.DueDate == "" {
		in.DueDate = tomorrow
	}
	task, err := s.Create(context.Background(), owner, in)
	require.NoError(t, err)
	return task
}

// failingManager serves memory repositories but swaps in a tasks repository
// whose every call fails.
type failingManager struct {
	repomanager.RepositoryManager
}

func (m failingManager) Tasks() tasks.Repository { return failingTasks{} }

func (m failingManager) WithTx(ctx context.Context, fn func(context.Context, repomanager.Repositories) error) error {
	return fn(ctx, m)
}

type failingTasks struct{ tasks.Repository }

var errStore = errors.New("store unavailable")

func (failingTasks) Create(context.Context, *models.Task) (*models.Task, error) { return nil, errStore }
func (failingTasks) GetByID(context.Context, string, string) (*models.Task, error) {
	return nil, errStore
}
func (failingTasks) Delete(context.Context, string, string) error { return errStore }
func (failingTasks) List(context.Context, string, models.TaskFilter) ([]*models.Task, error) {
	return nil, errStore
}
func (failingTasks) Counts(context.Context, string, time.Time) (models.TaskCounts, error) {
	return models.TaskCounts{}, errStore
}
func (failingTasks) BulkUpdate(context.Context, string, []string, models.BulkChange) (int64, error) {
	return 0, errStore
}
func (failingTasks) BulkDelete(context.Context, string, []string) (int64, error) { return 0, errStore }
func (failingTasks) ClearCategory(context.Context, string, string, time.Time) error {
	return errStore
}
