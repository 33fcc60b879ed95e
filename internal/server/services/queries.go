package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
)

// ListParams are the optional list filters as received from callers.
// Empty strings and false flags are not applied.
type ListParams struct {
	Status   string
	Priority string
	Search   string
	DueDate  string
	Overdue  bool
	DueToday bool
	SortBy   string
}

// filter validates p into a models.TaskFilter anchored at today.
func (p ListParams) filter(today time.Time) (models.TaskFilter, error) {
	v := &common.ValidationError{}
	f := models.TaskFilter{
		Search:   strings.TrimSpace(p.Search),
		Overdue:  p.Overdue,
		DueToday: p.DueToday,
		Today:    today,
		SortBy:   models.ParseSortBy(p.SortBy),
	}

	if p.Status != "" {
		s := parseStatus(v, p.Status)
		f.Status = &s
	}
	if p.Priority != "" {
		pr := parsePriority(v, p.Priority)
		f.Priority = &pr
	}
	if p.DueDate != "" {
		d, err := timex.ParseDate(strings.TrimSpace(p.DueDate))
		if err != nil {
			v.Add("due_date", "date has wrong format, use YYYY-MM-DD")
		} else {
			f.DueDate = &d
		}
	}
	return f, v.OrNil()
}

// List returns the owner's tasks narrowed by p. Unknown sort keys fall back
// to newest first.
func (s *TaskService) List(ctx context.Context, ownerID string, p ListParams) ([]*models.Task, error) {
	f, err := p.filter(s.Today())
	if err != nil {
		return nil, err
	}
	tasks, err := s.repomanager.Tasks().List(ctx, ownerID, f)
	if err != nil {
		return nil, s.storeErr(ctx, "error listing tasks", err)
	}
	return tasks, nil
}

// Statistics summarises every task of the owner, ignoring filters.
func (s *TaskService) Statistics(ctx context.Context, ownerID string) (*models.Statistics, error) {
	counts, err := s.repomanager.Tasks().Counts(ctx, ownerID, s.Today())
	if err != nil {
		return nil, s.storeErr(ctx, "error counting tasks", err)
	}
	return &models.Statistics{TaskCounts: counts, CompletionRate: completionRate(counts)}, nil
}

// completionRate is completed/total as a percentage rounded to two decimals,
// and 0 for an empty task set.
func completionRate(c models.TaskCounts) float64 {
	if c.Total == 0 {
		return 0
	}
	return math.Round(float64(c.Completed)/float64(c.Total)*100*100) / 100
}
