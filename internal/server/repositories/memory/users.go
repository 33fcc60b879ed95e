package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/google/uuid"
)

type UserRepository struct {
	guard
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	defer r.lock()()

	for _, u := range r.s.data.users {
		if u.UserName == user.UserName {
			return nil, common.ErrorConflict
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	stored := *user
	r.s.data.users[user.ID] = &stored
	return user, nil
}

func (r *UserRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	defer r.rlock()()

	for _, u := range r.s.data.users {
		if u.UserName == login {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	defer r.rlock()()

	u, ok := r.s.data.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

// Delete cascades to the user's tokens, tasks and categories.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	defer r.lock()()

	if _, ok := r.s.data.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.data.users, id)
	for k, t := range r.s.data.tokens {
		if t.UserID == id {
			delete(r.s.data.tokens, k)
		}
	}
	for k, t := range r.s.data.tasks {
		if t.UserID == id {
			delete(r.s.data.tasks, k)
		}
	}
	for k, c := range r.s.data.categories {
		if c.UserID == id {
			delete(r.s.data.categories, k)
		}
	}
	return nil
}
