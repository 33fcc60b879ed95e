package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

type RefreshTokenRepository struct {
	guard
}

func (r *RefreshTokenRepository) Create(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	defer r.lock()()

	if _, ok := r.s.data.tokens[token]; ok {
		return common.ErrorConflict
	}
	r.s.data.tokens[token] = &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		Expires:   expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (r *RefreshTokenRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	defer r.rlock()()

	t, ok := r.s.data.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	defer r.lock()()

	delete(r.s.data.tokens, token)
	return nil
}

func (r *RefreshTokenRepository) DeleteByUser(ctx context.Context, userID string) error {
	defer r.lock()()

	for k, t := range r.s.data.tokens {
		if t.UserID == userID {
			delete(r.s.data.tokens, k)
		}
	}
	return nil
}
