package memory

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/google/uuid"
)

type TaskRepository struct {
	guard
}

// titleTaken must be called with the lock held.
func (r *TaskRepository) titleTaken(userID, title, exceptID string) bool {
	for _, t := range r.s.data.tasks {
		if t.UserID == userID && t.Title == title && t.ID != exceptID {
			return true
		}
	}
	return false
}

// categoryExists must be called with the lock held.
func (r *TaskRepository) categoryExists(id *string) bool {
	if id == nil {
		return true
	}
	_, ok := r.s.data.categories[*id]
	return ok
}

// view returns a copy of t with its category reference resolved. The lock
// must be held.
func (r *TaskRepository) view(t *models.Task) *models.Task {
	v := t.Clone()
	v.Category = nil
	if v.CategoryID != nil {
		if c, ok := r.s.data.categories[*v.CategoryID]; ok {
			v.Category = c.Ref()
		}
	}
	return v
}

func stored(t *models.Task) *models.Task {
	s := t.Clone()
	s.Category = nil
	return s
}

func (r *TaskRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	defer r.lock()()

	if r.titleTaken(t.UserID, t.Title, "") {
		return nil, common.ErrorConflict
	}
	if !r.categoryExists(t.CategoryID) {
		return nil, common.ErrorNotFound
	}
	t.ID = uuid.NewString()
	r.s.data.tasks[t.ID] = stored(t)
	return t, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	defer r.rlock()()

	t, ok := r.s.data.tasks[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return r.view(t), nil
}

func (r *TaskRepository) Update(ctx context.Context, t *models.Task) error {
	defer r.lock()()

	cur, ok := r.s.data.tasks[t.ID]
	if !ok || cur.UserID != t.UserID {
		return common.ErrorNotFound
	}
	if r.titleTaken(t.UserID, t.Title, t.ID) {
		return common.ErrorConflict
	}
	if !r.categoryExists(t.CategoryID) {
		return common.ErrorNotFound
	}
	next := stored(t)
	next.CreatedAt = cur.CreatedAt
	r.s.data.tasks[t.ID] = next
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	defer r.lock()()

	t, ok := r.s.data.tasks[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.s.data.tasks, id)
	return nil
}

func (r *TaskRepository) List(ctx context.Context, userID string, f models.TaskFilter) ([]*models.Task, error) {
	defer r.rlock()()

	preds := f.Predicates()
	result := []*models.Task{}
next:
	for _, t := range r.s.data.tasks {
		if t.UserID != userID {
			continue
		}
		for _, p := range preds {
			if !p(t) {
				continue next
			}
		}
		result = append(result, r.view(t))
	}
	models.SortTasks(result, f.SortBy)
	return result, nil
}

func (r *TaskRepository) Counts(ctx context.Context, userID string, today time.Time) (models.TaskCounts, error) {
	defer r.rlock()()

	var owned []*models.Task
	for _, t := range r.s.data.tasks {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return models.CountTasks(owned, today), nil
}

// matching must be called with the lock held.
func (r *TaskRepository) matching(userID string, ids []string) []*models.Task {
	var res []*models.Task
	for _, t := range r.s.data.tasks {
		if t.UserID == userID && slices.Contains(ids, t.ID) {
			res = append(res, t)
		}
	}
	return res
}

func (r *TaskRepository) BulkUpdate(ctx context.Context, userID string, ids []string, change models.BulkChange) (int64, error) {
	defer r.lock()()

	matched := r.matching(userID, ids)
	for _, t := range matched {
		next := t.Clone()
		next.UpdatedAt = change.UpdatedAt
		if change.Status != nil {
			next.Status = *change.Status
			next.CompletedAt = nil
			if change.CompletedAt != nil {
				at := *change.CompletedAt
				next.CompletedAt = &at
			}
		}
		if change.Priority != nil {
			next.Priority = *change.Priority
		}
		r.s.data.tasks[t.ID] = next
	}
	return int64(len(matched)), nil
}

func (r *TaskRepository) BulkDelete(ctx context.Context, userID string, ids []string) (int64, error) {
	defer r.lock()()

	matched := r.matching(userID, ids)
	for _, t := range matched {
		delete(r.s.data.tasks, t.ID)
	}
	return int64(len(matched)), nil
}

func (r *TaskRepository) ClearCategory(ctx context.Context, userID, categoryID string, now time.Time) error {
	defer r.lock()()

	for k, t := range r.s.data.tasks {
		if t.UserID == userID && t.CategoryID != nil && *t.CategoryID == categoryID {
			next := t.Clone()
			next.CategoryID = nil
			next.UpdatedAt = now
			r.s.data.tasks[k] = next
		}
	}
	return nil
}

func (r *TaskRepository) DeleteByUser(ctx context.Context, userID string) error {
	defer r.lock()()

	for k, t := range r.s.data.tasks {
		if t.UserID == userID {
			delete(r.s.data.tasks, k)
		}
	}
	return nil
}
