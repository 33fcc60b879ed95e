// Package models defines the server-side entities persisted by the record
// store, together with the task status state machine.
package models

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus reports whether s names a known status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority reports whether s names a known priority.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

// Rank orders priorities for sorting: high(1) < medium(2) < low(3).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// MaxTitleLength is measured in runes after trimming.
const MaxTitleLength = 200

// Task is a single to-do item. DueDate is a calendar date held as midnight UTC.
//
// CompletedAt is non-nil exactly when Status is StatusCompleted; only SetStatus
// and Toggle change Status so the pair cannot drift apart.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     time.Time
	Priority    Priority
	Status      Status
	CategoryID  *string
	Category    *CategoryRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// SetStatus moves the task to s. Entering completed stamps CompletedAt with
// now, returning to pending clears it. Setting the current status again keeps
// CompletedAt untouched. It reports whether a transition happened.
func (t *Task) SetStatus(s Status, now time.Time) bool {
	if t.Status == s {
		return false
	}
	t.Status = s
	switch s {
	case StatusCompleted:
		at := now
		t.CompletedAt = &at
	case StatusPending:
		t.CompletedAt = nil
	}
	return true
}

// Toggle flips pending and completed.
func (t *Task) Toggle(now time.Time) {
	if t.Status == StatusCompleted {
		t.SetStatus(StatusPending, now)
		return
	}
	t.SetStatus(StatusCompleted, now)
}

// IsOverdue is true for pending tasks whose due date is strictly before today.
func (t *Task) IsOverdue(today time.Time) bool {
	return t.Status == StatusPending && t.DueDate.Before(today)
}

// Clone returns a deep copy, so stores can hand tasks out without sharing
// pointers.
func (t *Task) Clone() *Task {
	c := *t
	if t.CategoryID != nil {
		id := *t.CategoryID
		c.CategoryID = &id
	}
	if t.Category != nil {
		ref := *t.Category
		c.Category = &ref
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return &c
}

// BulkChange is applied uniformly to every task matched by a bulk update.
// A nil Status or Priority leaves that column alone. When Status is set,
// CompletedAt holds the shared call-time stamp for completed and nil for
// pending.
type BulkChange struct {
	Status      *Status
	Priority    *Priority
	CompletedAt *time.Time
	UpdatedAt   time.Time
}
