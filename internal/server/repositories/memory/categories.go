package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/google/uuid"
)

type CategoryRepository struct {
	guard
}

// nameTaken must be called with the lock held.
func (r *CategoryRepository) nameTaken(userID, name, exceptID string) bool {
	for _, c := range r.s.data.categories {
		if c.UserID == userID && c.Name == name && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	defer r.lock()()

	if r.nameTaken(c.UserID, c.Name, "") {
		return nil, common.ErrorConflict
	}
	c.ID = uuid.NewString()
	stored := *c
	r.s.data.categories[c.ID] = &stored
	return c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID, id string) (*models.Category, error) {
	defer r.rlock()()

	c, ok := r.s.data.categories[id]
	if !ok || c.UserID != userID {
		return nil, common.ErrorNotFound
	}
	res := *c
	return &res, nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Category, error) {
	defer r.rlock()()

	result := []*models.Category{}
	for _, c := range r.s.data.categories {
		if c.UserID == userID {
			res := *c
			result = append(result, &res)
		}
	}
	slices.SortFunc(result, func(a, b *models.Category) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	defer r.lock()()

	cur, ok := r.s.data.categories[c.ID]
	if !ok || cur.UserID != c.UserID {
		return common.ErrorNotFound
	}
	if r.nameTaken(c.UserID, c.Name, c.ID) {
		return common.ErrorConflict
	}
	next := *cur
	next.Name = c.Name
	next.Color = c.Color
	r.s.data.categories[c.ID] = &next
	return nil
}

// Delete detaches the category's tasks the way ON DELETE SET NULL does.
func (r *CategoryRepository) Delete(ctx context.Context, userID, id string) error {
	defer r.lock()()

	c, ok := r.s.data.categories[id]
	if !ok || c.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.s.data.categories, id)
	for k, t := range r.s.data.tasks {
		if t.CategoryID != nil && *t.CategoryID == id {
			next := t.Clone()
			next.CategoryID = nil
			next.Category = nil
			r.s.data.tasks[k] = next
		}
	}
	return nil
}

func (r *CategoryRepository) DeleteByUser(ctx context.Context, userID string) error {
	defer r.lock()()

	for k, c := range r.s.data.categories {
		if c.UserID == userID {
			delete(r.s.data.categories, k)
		}
	}
	return nil
}
