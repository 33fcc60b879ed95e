package tasks

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func ptr[T any](v T) *T { return &v }

var (
	today = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	now   = time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
)

var rowColumns = []string{
	"id", "user_id", "title", "description", "due_date", "priority", "status",
	"category_id", "created_at", "updated_at", "completed_at", "name", "color",
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	task := &models.Task{
		UserID: "u1", Title: "Buy milk", DueDate: today, Priority: models.PriorityMedium,
		Status: models.StatusPending, CreatedAt: now, UpdatedAt: now,
	}
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+tasks\s*\(user_id,.*completed_at\).*RETURNING\s+id`).
		WithArgs("u1", "Buy milk", "", "2026-10-16", "medium", "pending", nil, now, now, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1"))

	got, err := repo.Create(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Conflict(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+tasks`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Task{UserID: "u1", Title: "dup", DueDate: today})
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+tasks`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Task{UserID: "u1", Title: "x", DueDate: today})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	done := now.Add(-time.Hour)
	rows := sqlmock.NewRows(rowColumns).
		AddRow("t1", "u1", "Report", "quarterly", today, "high", "completed",
			"c1", now, now, done, "Work", "#ff0000")
	mock.ExpectQuery(`(?s)SELECT\s+t\.id,.*FROM\s+tasks\s+t\s+LEFT\s+JOIN\s+categories\s+c\s+ON\s+c\.id\s*=\s*t\.category_id\s+WHERE\s+t\.user_id\s*=\s*\$1\s+AND\s+t\.id\s*=\s*\$2`).
		WithArgs("u1", "t1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, models.StatusCompleted, got.Status)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, "c1", *got.CategoryID)
	assert.Equal(t, &models.CategoryRef{ID: "c1", Name: "Work", Color: "#ff0000"}, got.Category)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(done))
	assert.True(t, got.DueDate.Equal(today))
}

func TestGetByID_NoCategory(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows(rowColumns).
		AddRow("t1", "u1", "Report", "", today, "low", "pending", nil, now, now, nil, nil, nil)
	mock.ExpectQuery(`FROM\s+tasks\s+t`).WithArgs("u1", "t1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u1", "t1")
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.Category)
	assert.Nil(t, got.CompletedAt)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+tasks\s+t`).WithArgs("u2", "t1").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "u2", "t1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	task := &models.Task{
		ID: "t1", UserID: "u1", Title: "Report", DueDate: today, Priority: models.PriorityLow,
		Status: models.StatusCompleted, CategoryID: ptr("c1"), UpdatedAt: now, CompletedAt: ptr(now),
	}
	q := `(?s)UPDATE\s+tasks\s+SET\s+title\s*=\s*\$1,.*WHERE\s+id\s*=\s*\$9\s+AND\s+user_id\s*=\s*\$10`

	mock.ExpectExec(q).
		WithArgs("Report", "", "2026-10-16", "low", "completed", "c1", now, now, "t1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), task))

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), task), common.ErrorNotFound)

	mock.ExpectExec(q).WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Update(context.Background(), task), common.ErrorConflict)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs("t1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "u1", "t1"))

	mock.ExpectExec(`DELETE\s+FROM\s+tasks`).
		WithArgs("t1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "u2", "t1"), common.ErrorNotFound)
}

func buildList(t *testing.T, f models.TaskFilter) (string, []any) {
	t.Helper()
	query, args, err := applyFilter(selectTasks().Where(squirrel.Eq{"t.user_id": "u1"}), f).ToSql()
	require.NoError(t, err)
	return query, args
}

func TestApplyFilter_NoParams(t *testing.T) {
	query, args := buildList(t, models.TaskFilter{})

	assert.Contains(t, query, "WHERE t.user_id = $1 ORDER BY t.created_at DESC, t.id ASC")
	assert.Equal(t, []any{"u1"}, args)
}

func TestApplyFilter_AllParams(t *testing.T) {
	due := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	query, args := buildList(t, models.TaskFilter{
		Status:   ptr(models.StatusPending),
		Priority: ptr(models.PriorityHigh),
		Search:   "50%_off",
		DueDate:  &due,
		Overdue:  true,
		DueToday: true,
		Today:    today,
		SortBy:   models.SortByPriority,
	})

	assert.Contains(t, query, "t.status = $2")
	assert.Contains(t, query, "t.priority = $3")
	assert.Contains(t, query, "(t.title ILIKE $4 OR t.description ILIKE $5)")
	assert.Contains(t, query, "t.due_date = $6")
	assert.Contains(t, query, "t.due_date < $8")
	assert.Contains(t, query, "t.due_date = $9")
	assert.Contains(t, query, "ORDER BY CASE t.priority WHEN 'high' THEN 1")
	assert.Equal(t, []any{
		"u1", "pending", "high", `%50\%\_off%`, `%50\%\_off%`, "2026-10-20", "pending", "2026-10-16", "2026-10-16",
	}, args)
}

func TestApplyFilter_SortDueDate(t *testing.T) {
	query, _ := buildList(t, models.TaskFilter{SortBy: models.SortByDueDate})
	assert.Contains(t, query, "ORDER BY t.due_date ASC, t.created_at DESC, t.id ASC")
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows(rowColumns).
		AddRow("t2", "u1", "B", "", today, "medium", "pending", nil, now, now, nil, nil, nil).
		AddRow("t1", "u1", "A", "", today, "low", "pending", nil, now.Add(-time.Hour), now, nil, nil, nil)
	mock.ExpectQuery(`(?s)FROM\s+tasks\s+t.*WHERE\s+t\.user_id\s*=\s*\$1\s+AND\s+t\.status\s*=\s*\$2\s+ORDER\s+BY`).
		WithArgs("u1", "pending").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "u1", models.TaskFilter{Status: ptr(models.StatusPending)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t2", got[0].ID)
	assert.Equal(t, "t1", got[1].ID)
}

func TestList_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+tasks\s+t`).WithArgs("u1").WillReturnRows(sqlmock.NewRows(rowColumns))

	got, err := repo.List(context.Background(), "u1", models.TaskFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCounts(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\),.*FILTER\s+\(WHERE\s+status\s*=\s*'pending'\s+AND\s+due_date\s*<\s*\$1\).*FILTER\s+\(WHERE\s+due_date\s*=\s*\$2\).*FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$3`).
		WithArgs("2026-10-16", "2026-10-16", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"t", "p", "c", "o", "d", "h", "m", "l"}).
			AddRow(5, 3, 2, 1, 2, 1, 3, 1))

	got, err := repo.Counts(context.Background(), "u1", today)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCounts{Total: 5, Pending: 3, Completed: 2, Overdue: 1, DueToday: 2, High: 1, Medium: 3, Low: 1}, got)
}

func TestBulkUpdate_Completed(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+tasks\s+SET\s+updated_at\s*=\s*\$1,\s*status\s*=\s*\$2,\s*completed_at\s*=\s*\$3,\s*priority\s*=\s*\$4\s+WHERE\s+user_id\s*=\s*\$5\s+AND\s+id\s+IN\s+\(\$6,\$7\)`).
		WithArgs(now, "completed", now, "high", "u1", "t1", "t2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.BulkUpdate(context.Background(), "u1", []string{"t1", "t2"}, models.BulkChange{
		Status:      ptr(models.StatusCompleted),
		Priority:    ptr(models.PriorityHigh),
		CompletedAt: &now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestBulkUpdate_Pending(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+tasks\s+SET\s+updated_at\s*=\s*\$1,\s*status\s*=\s*\$2,\s*completed_at\s*=\s*\$3\s+WHERE`).
		WithArgs(now, "pending", nil, "u1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.BulkUpdate(context.Background(), "u1", []string{"t1"}, models.BulkChange{
		Status:    ptr(models.StatusPending),
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestBulkDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)DELETE\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s+IN\s+\(\$2,\$3,\$4\)`).
		WithArgs("u1", "a", "b", "c").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.BulkDelete(context.Background(), "u1", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	mock.ExpectExec(`DELETE\s+FROM\s+tasks`).WillReturnError(errors.New("db down"))
	_, err = repo.BulkDelete(context.Background(), "u1", []string{"a"})
	assert.ErrorContains(t, err, "db down")
}

func TestClearCategory(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+tasks\s+SET\s+category_id\s*=\s*NULL,\s*updated_at\s*=\s*\$1\s+WHERE\s+user_id\s*=\s*\$2\s+AND\s+category_id\s*=\s*\$3`).
		WithArgs(now, "u1", "c1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	require.NoError(t, repo.ClearCategory(context.Background(), "u1", "c1", now))

	mock.ExpectExec(`DELETE\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	require.NoError(t, repo.DeleteByUser(context.Background(), "u1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
