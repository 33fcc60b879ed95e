// Package tasks declares the task store contract and its PostgreSQL
// implementation. Every statement is scoped by owner; a task that belongs to
// someone else is indistinguishable from one that does not exist.
package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

type Repository interface {
	// Create fills ID. Timestamps are taken from t as supplied. A duplicate
	// title for the same owner yields common.ErrorConflict.
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	// GetByID returns the task with its Category reference resolved.
	GetByID(ctx context.Context, userID, id string) (*models.Task, error)
	// Update persists every mutable column of t.
	Update(ctx context.Context, t *models.Task) error
	Delete(ctx context.Context, userID, id string) error

	// List returns the owner's tasks matching f in f.SortBy order.
	List(ctx context.Context, userID string, f models.TaskFilter) ([]*models.Task, error)
	// Counts aggregates the owner's tasks relative to today.
	Counts(ctx context.Context, userID string, today time.Time) (models.TaskCounts, error)

	// BulkUpdate applies change to the owner's tasks among ids and reports
	// how many rows matched.
	BulkUpdate(ctx context.Context, userID string, ids []string, change models.BulkChange) (int64, error)
	BulkDelete(ctx context.Context, userID string, ids []string) (int64, error)

	// ClearCategory detaches every task of the owner from categoryID.
	ClearCategory(ctx context.Context, userID, categoryID string, now time.Time) error
	DeleteByUser(ctx context.Context, userID string) error
}
