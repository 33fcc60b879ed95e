package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(tasks []*models.Task) []string {
	res := make([]string, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, t.Title)
	}
	return res
}

// seedQueryTasks creates, in order: "Write report" (high, due today),
// "Buy groceries" (low, due tomorrow, completed), "Call mom" (medium, due
// tomorrow) and "Fix 100% bug" (high, due later), plus one foreign task.
// "Write report" is then made overdue by moving the clock a day ahead.
func seedQueryTasks(t *testing.T) (*TaskService, *movableClock) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	clock := &movableClock{t: noon}
	s := NewTaskService(m, clock, logging.Nop{})
	ctx := context.Background()

	step := func(in NewTask) {
		t.Helper()
		clock.t = clock.t.Add(1e9)
		_, err := s.Create(ctx, "u1", in)
		require.NoError(t, err)
	}
	step(NewTask{Title: "Write report", Description: "quarterly numbers", DueDate: today, Priority: "high"})
	step(NewTask{Title: "Buy groceries", Description: "milk and REPORT cards", DueDate: tomorrow, Priority: "low", Status: "completed"})
	step(NewTask{Title: "Call mom", DueDate: tomorrow})
	step(NewTask{Title: "Fix 100% bug", DueDate: "2026-11-01", Priority: "high"})
	_, err := s.Create(ctx, "u2", NewTask{Title: "Write report", DueDate: today, Priority: "high"})
	require.NoError(t, err)

	return s, clock
}

func TestList_FiltersAndSorts(t *testing.T) {
	s, clock := seedQueryTasks(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		params ListParams
		want   []string
	}{
		{"default newest first", ListParams{}, []string{"Fix 100% bug", "Call mom", "Buy groceries", "Write report"}},
		{"status pending", ListParams{Status: "pending"}, []string{"Fix 100% bug", "Call mom", "Write report"}},
		{"status completed", ListParams{Status: "completed"}, []string{"Buy groceries"}},
		{"priority high", ListParams{Priority: "high"}, []string{"Fix 100% bug", "Write report"}},
		{"search title or description", ListParams{Search: "report"}, []string{"Buy groceries", "Write report"}},
		{"search wildcard is literal", ListParams{Search: "100%"}, []string{"Fix 100% bug"}},
		{"search percent alone", ListParams{Search: "%"}, []string{"Fix 100% bug"}},
		{"due date exact", ListParams{DueDate: tomorrow}, []string{"Call mom", "Buy groceries"}},
		{"due today", ListParams{DueToday: true}, []string{"Write report"}},
		{"sort due date", ListParams{SortBy: "due_date"}, []string{"Write report", "Call mom", "Buy groceries", "Fix 100% bug"}},
		{"sort priority", ListParams{SortBy: "priority"}, []string{"Fix 100% bug", "Write report", "Call mom", "Buy groceries"}},
		{"unknown sort falls back", ListParams{SortBy: "title"}, []string{"Fix 100% bug", "Call mom", "Buy groceries", "Write report"}},
		{"combined", ListParams{Status: "pending", Priority: "high", SortBy: "due_date"}, []string{"Write report", "Fix 100% bug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, "u1", tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}

	t.Run("overdue is relative to today", func(t *testing.T) {
		got, err := s.List(ctx, "u1", ListParams{Overdue: true})
		require.NoError(t, err)
		assert.Empty(t, got)

		clock.t = noon.AddDate(0, 0, 2)
		got, err = s.List(ctx, "u1", ListParams{Overdue: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"Call mom", "Write report"}, titles(got))
		clock.t = noon
	})
}

func TestList_PendingFilterNeverLeaksCompleted(t *testing.T) {
	s, _ := seedQueryTasks(t)
	ctx := context.Background()

	for _, p := range []ListParams{
		{Status: "pending"},
		{Status: "pending", Search: "groceries"},
		{Status: "pending", DueDate: tomorrow},
		{Status: "pending", Priority: "low"},
		{Status: "pending", DueToday: true, SortBy: "priority"},
	} {
		got, err := s.List(ctx, "u1", p)
		require.NoError(t, err)
		for _, task := range got {
			assert.Equal(t, models.StatusPending, task.Status, "params %+v", p)
			assert.Nil(t, task.CompletedAt)
		}
	}
}

func TestList_PriorityOrdering(t *testing.T) {
	s, _ := seedQueryTasks(t)

	got, err := s.List(context.Background(), "u1", ListParams{SortBy: "priority"})
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Priority.Rank(), got[i].Priority.Rank())
	}
}

func TestList_InvalidParams(t *testing.T) {
	s, _ := newTaskService(t)

	_, err := s.List(context.Background(), "u1", ListParams{Status: "done", Priority: "urgent", DueDate: "tomorrow"})
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, []string{"status", "priority", "due_date"}, fieldsOf(t, err))
}

func TestStatistics(t *testing.T) {
	s, _ := seedQueryTasks(t)

	got, err := s.Statistics(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskCounts{
		Total: 4, Pending: 3, Completed: 1, Overdue: 0, DueToday: 1, High: 2, Medium: 1, Low: 1,
	}, got.TaskCounts)
	assert.Equal(t, 25.0, got.CompletionRate)
}

func TestStatistics_Empty(t *testing.T) {
	s, _ := newTaskService(t)

	got, err := s.Statistics(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, got.Total)
	assert.Equal(t, 0.0, got.CompletionRate)
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total int
		want             float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{3, 3, 100},
		{1, 8, 12.5},
	}
	for _, tt := range tests {
		got := completionRate(models.TaskCounts{Completed: tt.completed, Total: tt.total})
		assert.Equal(t, tt.want, got, "%d/%d", tt.completed, tt.total)
	}
}
