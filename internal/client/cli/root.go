package cli

import (
	"github.com/dmitrijs2005/tasktracker/internal/buildinfo"
	"github.com/dmitrijs2005/tasktracker/internal/client/session"
	"github.com/spf13/cobra"
)

func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasktracker",
		Short: "Personal task tracker",
		Long: `tasktracker manages your personal tasks on a tasktracker server.

Log in once; the session is remembered between runs:

  tasktracker login -u alice
  tasktracker tasks add "Write report" --due 2026-10-20 --priority high
  tasktracker tasks list --status pending --sort priority
  tasktracker tasks toggle <id>`,
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.config.Resolve(cmd.Flags()); err != nil {
				return err
			}
			a.sessions = session.NewStore(a.config.SessionFile)
			return nil
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	a.config.BindFlags(root.PersistentFlags())

	root.AddCommand(a.pingCommand())
	root.AddCommand(a.registerCommand())
	root.AddCommand(a.loginCommand())
	root.AddCommand(a.logoutCommand())
	root.AddCommand(a.profileCommand())
	root.AddCommand(a.deleteAccountCommand())
	root.AddCommand(a.tasksCommand())
	root.AddCommand(a.categoriesCommand())
	root.AddCommand(a.shellCommand())

	return root
}
