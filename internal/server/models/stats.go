package models

import "time"

// TaskCounts are the raw aggregates behind task statistics.
type TaskCounts struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int
	DueToday  int
	High      int
	Medium    int
	Low       int
}

// CountTasks aggregates tasks relative to today.
func CountTasks(tasks []*Task, today time.Time) TaskCounts {
	var c TaskCounts
	for _, t := range tasks {
		c.Total++
		switch t.Status {
		case StatusPending:
			c.Pending++
		case StatusCompleted:
			c.Completed++
		}
		if t.IsOverdue(today) {
			c.Overdue++
		}
		if t.DueDate.Equal(today) {
			c.DueToday++
		}
		switch t.Priority {
		case PriorityHigh:
			c.High++
		case PriorityMedium:
			c.Medium++
		case PriorityLow:
			c.Low++
		}
	}
	return c
}

// Statistics is the caller-facing summary of an owner's tasks.
type Statistics struct {
	TaskCounts
	// CompletionRate is a percentage rounded to two decimals.
	CompletionRate float64
}
