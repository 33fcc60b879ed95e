package models

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type SortBy string

const (
	SortByCreatedAt SortBy = "created_at"
	SortByDueDate   SortBy = "due_date"
	SortByPriority  SortBy = "priority"
)

// ParseSortBy maps a caller-supplied sort key; unknown or empty keys fall back
// to newest-created-first.
func ParseSortBy(s string) SortBy {
	switch SortBy(s) {
	case SortByDueDate, SortByPriority:
		return SortBy(s)
	}
	return SortByCreatedAt
}

// TaskFilter narrows an owner's task list. Zero values and nil pointers mean
// "not applied"; every applied condition is ANDed.
type TaskFilter struct {
	Status   *Status
	Priority *Priority
	// Search is a case-insensitive substring matched against title OR description.
	Search   string
	DueDate  *time.Time
	Overdue  bool
	DueToday bool
	// Today anchors Overdue and DueToday.
	Today  time.Time
	SortBy SortBy
}

// Predicates returns one predicate per filter parameter that is present.
func (f TaskFilter) Predicates() []func(*Task) bool {
	var preds []func(*Task) bool

	if f.Status != nil {
		s := *f.Status
		preds = append(preds, func(t *Task) bool { return t.Status == s })
	}
	if f.Priority != nil {
		p := *f.Priority
		preds = append(preds, func(t *Task) bool { return t.Priority == p })
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		preds = append(preds, func(t *Task) bool {
			return strings.Contains(strings.ToLower(t.Title), needle) ||
				strings.Contains(strings.ToLower(t.Description), needle)
		})
	}
	if f.DueDate != nil {
		d := *f.DueDate
		preds = append(preds, func(t *Task) bool { return t.DueDate.Equal(d) })
	}
	if f.Overdue {
		today := f.Today
		preds = append(preds, func(t *Task) bool { return t.IsOverdue(today) })
	}
	if f.DueToday {
		today := f.Today
		preds = append(preds, func(t *Task) bool { return t.DueDate.Equal(today) })
	}
	return preds
}

// Matches applies every predicate to t.
func (f TaskFilter) Matches(t *Task) bool {
	for _, p := range f.Predicates() {
		if !p(t) {
			return false
		}
	}
	return true
}

// SortTasks orders tasks in place. Ties fall back to newest-created-first and
// then to id, so the order is total.
func SortTasks(tasks []*Task, by SortBy) {
	slices.SortStableFunc(tasks, func(a, b *Task) int {
		var c int
		switch by {
		case SortByDueDate:
			c = a.DueDate.Compare(b.DueDate)
		case SortByPriority:
			c = cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		}
		if c != 0 {
			return c
		}
		if c = b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
