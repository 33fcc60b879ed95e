// Package categories declares the category store contract and its PostgreSQL
// implementation. Every lookup is scoped by owner.
package categories

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

type Repository interface {
	// Create fills ID and CreatedAt. A duplicate name for the same owner
	// yields common.ErrorConflict.
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, userID, id string) (*models.Category, error)
	// ListByUser returns the owner's categories ordered by name.
	ListByUser(ctx context.Context, userID string) ([]*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, userID, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
