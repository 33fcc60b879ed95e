// Package services contains server-side business logic. TaskService owns the
// task lifecycle (creation, the pending/completed state machine, the edit lock
// on completed tasks), owner-scoped queries and bulk operations.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
)

// NewTask holds caller-supplied fields for task creation. Enum and date
// fields are raw strings so every violation can be reported at once.
type NewTask struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
	CategoryID  string
}

// TaskPatch is a partial update; nil fields are left alone. A CategoryID
// pointing at "" detaches the task from its category.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
	Status      *string
	CategoryID  *string
}

type TaskService struct {
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	logger      logging.Logger
}

func NewTaskService(m repomanager.RepositoryManager, clock timex.Clock, logger logging.Logger) *TaskService {
	return &TaskService{
		repomanager: m,
		clock:       clock,
		logger:      logger.With("module", "tasks"),
	}
}

func (s *TaskService) now() time.Time { return s.clock.Now().UTC() }

// Today is the calendar date used for due-date checks.
func (s *TaskService) Today() time.Time { return timex.Today(s.clock) }

// storeErr wraps err for op and logs it when it is not a domain outcome.
func (s *TaskService) storeErr(ctx context.Context, op string, err error) error {
	logUnexpected(ctx, s.logger, op, err)
	return fmt.Errorf("%s: %w", op, err)
}

// Create validates in, injects the owner and stores a new task. New tasks are
// pending with medium priority unless the caller says otherwise.
func (s *TaskService) Create(ctx context.Context, ownerID string, in NewTask) (*models.Task, error) {
	v := &common.ValidationError{}

	title := trimmedText(v, "title", in.Title, models.MaxTitleLength)

	var due time.Time
	if in.DueDate == "" {
		v.Add("due_date", msgRequired)
	} else {
		due = dueDate(v, in.DueDate, s.Today())
	}

	priority := models.PriorityMedium
	if in.Priority != "" {
		priority = parsePriority(v, in.Priority)
	}
	status := models.StatusPending
	if in.Status != "" {
		status = parseStatus(v, in.Status)
	}

	var category *models.Category
	if in.CategoryID != "" {
		c, err := ownedCategory(ctx, s.repomanager.Categories(), v, ownerID, in.CategoryID)
		if err != nil {
			return nil, s.storeErr(ctx, "error resolving category", err)
		}
		category = c
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	now := s.now()
	t := &models.Task{
		UserID:      ownerID,
		Title:       title,
		Description: in.Description,
		DueDate:     due,
		Priority:    priority,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.SetStatus(status, now)
	if category != nil {
		t.CategoryID = &category.ID
	}

	created, err := s.repomanager.Tasks().Create(ctx, t)
	if err != nil {
		return nil, s.storeErr(ctx, "error creating task", err)
	}
	if category != nil {
		created.Category = category.Ref()
	}

	s.logger.Debug(ctx, "task created", "task_id", created.ID, "user_id", ownerID)
	return created, nil
}

// Get returns the owner's task; foreign and unknown ids are both NotFound.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	if !validID(taskID) {
		return nil, common.ErrorNotFound
	}
	t, err := s.repomanager.Tasks().GetByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, s.storeErr(ctx, "error getting task", err)
	}
	return t, nil
}

// Update applies patch. A completed task only accepts patches that move it
// back to pending; such a patch may edit other fields in the same call.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, patch TaskPatch) (*models.Task, error) {
	t, err := s.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if t.Status == models.StatusCompleted &&
		(patch.Status == nil || *patch.Status != string(models.StatusPending)) {
		return nil, common.ErrorPreconditionFailed
	}

	v := &common.ValidationError{}
	now := s.now()

	if patch.Title != nil {
		t.Title = trimmedText(v, "title", *patch.Title, models.MaxTitleLength)
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.DueDate != nil {
		t.DueDate = dueDate(v, *patch.DueDate, s.Today())
	}
	if patch.Priority != nil {
		t.Priority = parsePriority(v, *patch.Priority)
	}

	var status models.Status
	if patch.Status != nil {
		status = parseStatus(v, *patch.Status)
	}

	if patch.CategoryID != nil {
		if *patch.CategoryID == "" {
			t.CategoryID = nil
			t.Category = nil
		} else {
			c, err := ownedCategory(ctx, s.repomanager.Categories(), v, ownerID, *patch.CategoryID)
			if err != nil {
				return nil, s.storeErr(ctx, "error resolving category", err)
			}
			if c != nil {
				t.CategoryID = &c.ID
				t.Category = c.Ref()
			}
		}
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if patch.Status != nil {
		t.SetStatus(status, now)
	}
	t.UpdatedAt = now

	if err := s.repomanager.Tasks().Update(ctx, t); err != nil {
		return nil, s.storeErr(ctx, "error updating task", err)
	}
	return t, nil
}

// Toggle flips pending and completed. It is exempt from the edit lock: it is
// how a completed task is reopened.
func (s *TaskService) Toggle(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	t, err := s.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t.Toggle(now)
	t.UpdatedAt = now

	if err := s.repomanager.Tasks().Update(ctx, t); err != nil {
		return nil, s.storeErr(ctx, "error toggling task", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if !validID(taskID) {
		return common.ErrorNotFound
	}
	if err := s.repomanager.Tasks().Delete(ctx, ownerID, taskID); err != nil {
		return s.storeErr(ctx, "error deleting task", err)
	}
	return nil
}

// logUnexpected logs err unless it is one of the domain outcomes callers are
// expected to handle.
func logUnexpected(ctx context.Context, logger logging.Logger, op string, err error) {
	for _, known := range []error{
		common.ErrorNotFound, common.ErrorConflict, common.ErrorValidation,
		common.ErrorPreconditionFailed, common.ErrorForbidden, common.ErrorUnauthorized,
		context.Canceled,
	} {
		if errors.Is(err, known) {
			return
		}
	}
	logger.Warn(ctx, op, "error", err)
}
