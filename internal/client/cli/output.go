package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tasktracker/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func categoryName(c *models.CategoryRef) string {
	if c == nil {
		return "-"
	}
	return c.Name
}

func taskStatus(t *models.Task) string {
	if t.IsOverdue {
		return t.Status + " (overdue)"
	}
	return t.Status
}

func printTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tDUE\tPRIORITY\tSTATUS\tCATEGORY")
	for i := range tasks {
		t := &tasks[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.DueDate, t.Priority, taskStatus(t), categoryName(t.Category))
	}
	tw.Flush()
}

func printTask(w io.Writer, t *models.Task) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", strings.ReplaceAll(t.Description, "\n", "\n\t"))
	}
	fmt.Fprintf(tw, "Due:\t%s\n", t.DueDate)
	fmt.Fprintf(tw, "Priority:\t%s\n", t.Priority)
	fmt.Fprintf(tw, "Status:\t%s\n", taskStatus(t))
	fmt.Fprintf(tw, "Category:\t%s\n", categoryName(t.Category))
	fmt.Fprintf(tw, "Created:\t%s\n", t.CreatedAt.Format(timeLayout))
	fmt.Fprintf(tw, "Updated:\t%s\n", t.UpdatedAt.Format(timeLayout))
	if t.CompletedAt != nil {
		fmt.Fprintf(tw, "Completed:\t%s\n", t.CompletedAt.Format(timeLayout))
	}
	tw.Flush()
}

func printStatistics(w io.Writer, s *models.Statistics) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total:\t%d\n", s.TotalTasks)
	fmt.Fprintf(tw, "Pending:\t%d\n", s.PendingTasks)
	fmt.Fprintf(tw, "Completed:\t%d\n", s.CompletedTasks)
	fmt.Fprintf(tw, "Overdue:\t%d\n", s.OverdueTasks)
	fmt.Fprintf(tw, "Due today:\t%d\n", s.DueToday)
	fmt.Fprintf(tw, "Priority:\thigh %d, medium %d, low %d\n", s.PriorityBreakdown.High, s.PriorityBreakdown.Medium, s.PriorityBreakdown.Low)
	fmt.Fprintf(tw, "Completion rate:\t%.2f%%\n", s.CompletionRate)
	tw.Flush()
}

func printCategories(w io.Writer, cats []models.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(w, "No categories")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Color)
	}
	tw.Flush()
}

func printUser(w io.Writer, u *models.User) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Username:\t%s\n", u.Username)
	if u.Email != "" {
		fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	}
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		fmt.Fprintf(tw, "Name:\t%s\n", name)
	}
	fmt.Fprintf(tw, "Member since:\t%s\n", u.CreatedAt.Format(timeLayout))
	tw.Flush()
}
