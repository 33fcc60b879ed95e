package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
)

// MaxCategoryNameLength is measured in runes after trimming.
const MaxCategoryNameLength = 100

// CategoryService manages an owner's categories. Deleting a category
// detaches its tasks and never deletes them.
type CategoryService struct {
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	logger      logging.Logger
}

func NewCategoryService(m repomanager.RepositoryManager, clock timex.Clock, logger logging.Logger) *CategoryService {
	return &CategoryService{
		repomanager: m,
		clock:       clock,
		logger:      logger.With("module", "categories"),
	}
}

func (s *CategoryService) storeErr(ctx context.Context, op string, err error) error {
	logUnexpected(ctx, s.logger, op, err)
	return fmt.Errorf("%s: %w", op, err)
}

func color(v *common.ValidationError, raw string) string {
	c := strings.TrimSpace(raw)
	if !colorPattern.MatchString(c) {
		v.Add("color", "color must be a hex code like #007bff")
	}
	return c
}

func (s *CategoryService) Create(ctx context.Context, ownerID, name, colorHex string) (*models.Category, error) {
	v := &common.ValidationError{}
	c := &models.Category{
		UserID: ownerID,
		Name:   trimmedText(v, "name", name, MaxCategoryNameLength),
		Color:  models.DefaultCategoryColor,
	}
	if colorHex != "" {
		c.Color = color(v, colorHex)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	c.CreatedAt = s.clock.Now().UTC()
	created, err := s.repomanager.Categories().Create(ctx, c)
	if err != nil {
		return nil, s.storeErr(ctx, "error creating category", err)
	}
	return created, nil
}

// List returns the owner's categories ordered by name.
func (s *CategoryService) List(ctx context.Context, ownerID string) ([]*models.Category, error) {
	res, err := s.repomanager.Categories().ListByUser(ctx, ownerID)
	if err != nil {
		return nil, s.storeErr(ctx, "error listing categories", err)
	}
	return res, nil
}

func (s *CategoryService) Get(ctx context.Context, ownerID, id string) (*models.Category, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	c, err := s.repomanager.Categories().GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, s.storeErr(ctx, "error getting category", err)
	}
	return c, nil
}

// Update changes the name and/or color; nil arguments are left alone.
func (s *CategoryService) Update(ctx context.Context, ownerID, id string, name, colorHex *string) (*models.Category, error) {
	c, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	v := &common.ValidationError{}
	if name != nil {
		c.Name = trimmedText(v, "name", *name, MaxCategoryNameLength)
	}
	if colorHex != nil {
		c.Color = color(v, *colorHex)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repomanager.Categories().Update(ctx, c); err != nil {
		return nil, s.storeErr(ctx, "error updating category", err)
	}
	return c, nil
}

// Delete clears the category on the owner's tasks and removes it, atomically.
func (s *CategoryService) Delete(ctx context.Context, ownerID, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	now := s.clock.Now().UTC()
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if err := r.Tasks().ClearCategory(ctx, ownerID, id, now); err != nil {
			return err
		}
		return r.Categories().Delete(ctx, ownerID, id)
	})
	if err != nil {
		return s.storeErr(ctx, "error deleting category", err)
	}
	return nil
}
