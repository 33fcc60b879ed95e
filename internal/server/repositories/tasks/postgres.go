package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/dbx"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var taskColumns = []string{
	"t.id", "t.user_id", "t.title", "t.description", "t.due_date", "t.priority", "t.status",
	"t.category_id", "t.created_at", "t.updated_at", "t.completed_at", "c.name", "c.color",
}

const (
	orderCreated  = "t.created_at DESC, t.id ASC"
	orderDueDate  = "t.due_date ASC, " + orderCreated
	orderPriority = "CASE t.priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END ASC, " + orderCreated
)

func selectTasks() squirrel.SelectBuilder {
	return squirrel.Select(taskColumns...).
		From("tasks t").
		LeftJoin("categories c ON c.id = t.category_id").
		PlaceholderFormat(squirrel.Dollar)
}

// dateArg renders a calendar date so the server types it as DATE rather
// than a zone-sensitive timestamp.
func dateArg(d time.Time) string {
	return d.Format(common.DateLayout)
}

// nullTime maps a nil pointer to an untyped nil for the driver.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	var (
		t             models.Task
		priority      string
		status        string
		categoryID    sql.NullString
		completedAt   sql.NullTime
		categoryName  sql.NullString
		categoryColor sql.NullString
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate, &priority, &status,
		&categoryID, &t.CreatedAt, &t.UpdatedAt, &completedAt, &categoryName, &categoryColor)
	if err != nil {
		return nil, err
	}

	t.DueDate = time.Date(t.DueDate.Year(), t.DueDate.Month(), t.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	t.Priority = models.Priority(priority)
	t.Status = models.Status(status)
	if categoryID.Valid {
		id := categoryID.String
		t.CategoryID = &id
		t.Category = &models.CategoryRef{ID: id, Name: categoryName.String, Color: categoryColor.String}
	}
	if completedAt.Valid {
		at := completedAt.Time
		t.CompletedAt = &at
	}
	return &t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO tasks (user_id, title, description, due_date, priority, status, category_id, created_at, updated_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		t.UserID, t.Title, t.Description, dateArg(t.DueDate), string(t.Priority), string(t.Status),
		nullString(t.CategoryID), t.CreatedAt, t.UpdatedAt, nullTime(t.CompletedAt)).Scan(&t.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	query, args, err := selectTasks().
		Where(squirrel.Eq{"t.user_id": userID}).
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.Task) error {
	query :=
		`UPDATE tasks SET title = $1, description = $2, due_date = $3, priority = $4, status = $5,
		        category_id = $6, updated_at = $7, completed_at = $8
		 WHERE id = $9 AND user_id = $10`

	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, dateArg(t.DueDate), string(t.Priority), string(t.Status),
		nullString(t.CategoryID), t.UpdatedAt, nullTime(t.CompletedAt), t.ID, t.UserID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// likeEscaper neutralises LIKE wildcards in user input; backslash is the
// default LIKE escape character in PostgreSQL.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func applyFilter(b squirrel.SelectBuilder, f models.TaskFilter) squirrel.SelectBuilder {
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"t.status": string(*f.Status)})
	}
	if f.Priority != nil {
		b = b.Where(squirrel.Eq{"t.priority": string(*f.Priority)})
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"t.title": pattern},
			squirrel.ILike{"t.description": pattern},
		})
	}
	if f.DueDate != nil {
		b = b.Where(squirrel.Eq{"t.due_date": dateArg(*f.DueDate)})
	}
	if f.Overdue {
		b = b.Where(squirrel.Eq{"t.status": string(models.StatusPending)}).
			Where(squirrel.Lt{"t.due_date": dateArg(f.Today)})
	}
	if f.DueToday {
		b = b.Where(squirrel.Eq{"t.due_date": dateArg(f.Today)})
	}

	switch f.SortBy {
	case models.SortByDueDate:
		return b.OrderBy(orderDueDate)
	case models.SortByPriority:
		return b.OrderBy(orderPriority)
	}
	return b.OrderBy(orderCreated)
}

func (r *PostgresRepository) List(ctx context.Context, userID string, f models.TaskFilter) ([]*models.Task, error) {
	query, args, err := applyFilter(selectTasks().Where(squirrel.Eq{"t.user_id": userID}), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Counts(ctx context.Context, userID string, today time.Time) (models.TaskCounts, error) {
	day := dateArg(today)
	query, args, err := squirrel.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COUNT(*) FILTER (WHERE status = 'completed')",
	).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = 'pending' AND due_date < ?)", day)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE due_date = ?)", day)).
		Columns(
			"COUNT(*) FILTER (WHERE priority = 'high')",
			"COUNT(*) FILTER (WHERE priority = 'medium')",
			"COUNT(*) FILTER (WHERE priority = 'low')",
		).
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.TaskCounts{}, fmt.Errorf("build query: %w", err)
	}

	var c models.TaskCounts
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.Total, &c.Pending, &c.Completed, &c.Overdue, &c.DueToday, &c.High, &c.Medium, &c.Low)
	if err != nil {
		return models.TaskCounts{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) BulkUpdate(ctx context.Context, userID string, ids []string, change models.BulkChange) (int64, error) {
	b := squirrel.Update("tasks").
		Set("updated_at", change.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)
	if change.Status != nil {
		b = b.Set("status", string(*change.Status)).
			Set("completed_at", nullTime(change.CompletedAt))
	}
	if change.Priority != nil {
		b = b.Set("priority", string(*change.Priority))
	}

	query, args, err := b.
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	return r.execCount(ctx, query, args)
}

func (r *PostgresRepository) BulkDelete(ctx context.Context, userID string, ids []string) (int64, error) {
	query, args, err := squirrel.Delete("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	return r.execCount(ctx, query, args)
}

func (r *PostgresRepository) execCount(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ClearCategory(ctx context.Context, userID, categoryID string, now time.Time) error {
	query :=
		`UPDATE tasks SET category_id = NULL, updated_at = $1
		 WHERE user_id = $2 AND category_id = $3`

	if _, err := r.db.ExecContext(ctx, query, now, userID, categoryID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
