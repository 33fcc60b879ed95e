package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/client/client"
	"github.com/dmitrijs2005/tasktracker/internal/client/models"
	"github.com/dmitrijs2005/tasktracker/internal/client/session"
	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/filex"
	"github.com/dmitrijs2005/tasktracker/internal/netx"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (a *App) tasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task", "t"},
		Short:   "Create, list and change tasks",
	}
	cmd.AddCommand(
		a.addTaskCommand(),
		a.listTasksCommand(),
		a.showTaskCommand(),
		a.editTaskCommand(),
		a.toggleTaskCommand(),
		a.deleteTaskCommand(),
		a.statsCommand(),
		a.bulkUpdateCommand(),
		a.bulkDeleteCommand(),
		a.exportCommand(),
	)
	return cmd
}

// authed is call for commands that need a logged in session.
func (a *App) authed(cmd *cobra.Command, fn func(ctx context.Context, c client.Client) error) error {
	return a.call(cmd, true, func(ctx context.Context, c client.Client, _ *session.Session) error {
		return fn(ctx, c)
	})
}

func (a *App) today() string {
	return timex.Today(a.clock).Format(common.DateLayout)
}

// promptTask fills an empty request interactively.
func (a *App) promptTask(req *models.CreateTaskRequest) error {
	var err error
	if req.Title, err = GetSimpleText(a.in, "Title", a.out); err != nil {
		return err
	}
	if req.Description, err = GetMultiline(a.in, "Description", a.out); err != nil {
		return err
	}
	if req.DueDate, err = GetSimpleText(a.in, fmt.Sprintf("Due date (YYYY-MM-DD, today is %s)", a.today()), a.out); err != nil {
		return err
	}
	if req.Priority == "" {
		if req.Priority, err = GetChoice(a.in, "Priority (low, medium, high; empty for medium)", a.out, []string{"low", "medium", "high"}, "medium"); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) addTaskCommand() *cobra.Command {
	req := models.CreateTaskRequest{}
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task; prompts for the fields when no title is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Title = strings.Join(args, " ")
			if req.Title == "" {
				if err := a.promptTask(&req); err != nil {
					return err
				}
			}
			req.DueDate = resolveDate(req.DueDate, timex.Today(a.clock))

			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				t, err := c.CreateTask(ctx, &req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created task %s\n", t.ID)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&req.Description, "description", "d", "", "description")
	f.StringVar(&req.DueDate, "due", "", "due date: YYYY-MM-DD, today, tomorrow or +Nd")
	f.StringVarP(&req.Priority, "priority", "p", "", "low, medium or high (default medium)")
	f.StringVar(&req.Status, "status", "", "pending or completed (default pending)")
	f.StringVar(&req.CategoryID, "category", "", "category id")
	return cmd
}

func (a *App) listTasksCommand() *cobra.Command {
	req := models.ListTasksRequest{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, optionally filtered and sorted",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.DueDate != "" {
				req.DueDate = resolveDate(req.DueDate, timex.Today(a.clock))
			}
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				tasks, err := c.ListTasks(ctx, &req)
				if err != nil {
					return err
				}
				printTasks(a.out, tasks)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Status, "status", "", "pending or completed")
	f.StringVar(&req.Priority, "priority", "", "low, medium or high")
	f.StringVarP(&req.Search, "search", "s", "", "text to look for in title or description")
	f.StringVar(&req.DueDate, "due", "", "only tasks due on this date")
	f.BoolVar(&req.Overdue, "overdue", false, "only pending tasks past their due date")
	f.BoolVar(&req.DueToday, "due-today", false, "only tasks due today")
	f.StringVar(&req.SortBy, "sort", "", "due_date, -due_date, priority, -priority, created_at, -created_at, title, -title")
	return cmd
}

func (a *App) showTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				t, err := c.GetTask(ctx, args[0])
				if err != nil {
					return err
				}
				printTask(a.out, t)
				return nil
			})
		},
	}
}

// changed returns a pointer to value when the flag was given.
func changed(f *pflag.FlagSet, name, value string) *string {
	if !f.Changed(name) {
		return nil
	}
	return &value
}

func (a *App) editTaskCommand() *cobra.Command {
	var title, description, due, priority, status, category string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task; completed tasks must be set back to pending in the same edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			req := models.UpdateTaskRequest{
				ID:          args[0],
				Title:       changed(f, "title", title),
				Description: changed(f, "description", description),
				DueDate:     changed(f, "due", resolveDate(due, timex.Today(a.clock))),
				Priority:    changed(f, "priority", priority),
				Status:      changed(f, "status", status),
				CategoryID:  changed(f, "category", category),
			}
			if req == (models.UpdateTaskRequest{ID: args[0]}) {
				return fmt.Errorf("nothing to change, pass at least one of --title, --description, --due, --priority, --status, --category")
			}

			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				t, err := c.UpdateTask(ctx, &req)
				if err != nil {
					return err
				}
				printTask(a.out, t)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&title, "title", "", "new title")
	f.StringVarP(&description, "description", "d", "", "new description")
	f.StringVar(&due, "due", "", "new due date")
	f.StringVarP(&priority, "priority", "p", "", "low, medium or high")
	f.StringVar(&status, "status", "", "pending or completed")
	f.StringVar(&category, "category", "", "category id, empty to detach")
	return cmd
}

func (a *App) toggleTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				t, err := c.ToggleTask(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Task %s is now %s\n", t.ID, t.Status)
				return nil
			})
		},
	}
}

func (a *App) deleteTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				if err := c.DeleteTask(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted task %s\n", args[0])
				return nil
			})
		},
	}
}

func (a *App) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				s, err := c.Statistics(ctx)
				if err != nil {
					return err
				}
				printStatistics(a.out, s)
				return nil
			})
		},
	}
}

func (a *App) bulkUpdateCommand() *cobra.Command {
	var status, priority string
	cmd := &cobra.Command{
		Use:   "bulk-update <id>...",
		Short: "Set status and/or priority of several tasks at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			req := models.BulkUpdateRequest{
				TaskIDs:  args,
				Status:   changed(f, "status", status),
				Priority: changed(f, "priority", priority),
			}
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				n, err := c.BulkUpdate(ctx, &req)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%d tasks updated\n", n)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "pending or completed")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high")
	return cmd
}

func (a *App) bulkDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-rm <id>...",
		Short: "Delete several tasks at once; ids you do not own are skipped",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				n, err := c.BulkDelete(ctx, args)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%d tasks deleted\n", n)
				return nil
			})
		},
	}
}

func (a *App) exportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks to object storage and print a download link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.authed(cmd, func(ctx context.Context, c client.Client) error {
				e, err := c.ExportTasks(ctx)
				if err != nil {
					return err
				}
				if output != "" {
					return a.downloadExport(ctx, e, output)
				}
				fmt.Fprintf(a.out, "Exported to %s\nDownload (valid until %s):\n%s\n", e.Key, e.ExpiresAt.Format(time.RFC3339), e.URL)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "download the export into this file")
	return cmd
}

func (a *App) downloadExport(ctx context.Context, e *models.ExportResponse, path string) error {
	f, err := filex.CreateFile(path)
	if err != nil {
		return err
	}
	if err := netx.DownloadPresignedURL(ctx, e.URL, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s and saved as %s\n", e.Key, path)
	return nil
}
