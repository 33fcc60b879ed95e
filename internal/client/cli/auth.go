package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/client/client"
	"github.com/dmitrijs2005/tasktracker/internal/client/models"
	"github.com/dmitrijs2005/tasktracker/internal/client/session"
	"github.com/dmitrijs2005/tasktracker/internal/shared"
	"github.com/spf13/cobra"
)

func (a *App) pingCommand() *cobra.Command {
	var wait uint64
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the server answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, false, func(ctx context.Context, c client.Client, _ *session.Session) error {
				var err error
				if wait > 0 {
					err = client.WaitForServer(ctx, c, wait, 200*time.Millisecond)
				} else {
					err = c.Ping(ctx)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s is up\n", a.config.ServerEndpointAddr)
				return nil
			})
		},
	}
	cmd.Flags().Uint64Var(&wait, "wait", 0, "retry this many times while the server is unavailable")
	return cmd
}

// promptIfEmpty asks for a value when the flag was left empty.
func (a *App) promptIfEmpty(value *string, prompt string) error {
	if *value != "" {
		return nil
	}
	v, err := GetSimpleText(a.in, prompt, a.out)
	if err != nil {
		return err
	}
	*value = v
	return nil
}

func (a *App) registerCommand() *cobra.Command {
	req := models.RegisterRequest{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.promptIfEmpty(&req.Username, "Enter username"); err != nil {
				return err
			}

			password, err := getPassword(a.out, "Enter password")
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(password)

			confirm, err := getPassword(a.out, "Repeat password")
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(confirm)

			req.Password, req.PasswordConfirm = string(password), string(confirm)

			return a.call(cmd, false, func(ctx context.Context, c client.Client, sess *session.Session) error {
				resp, err := c.Register(ctx, &req)
				if err != nil {
					return err
				}
				sess.Username = resp.User.Username
				fmt.Fprintf(a.out, "Registered and logged in as %s\n", resp.User.Username)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&req.Username, "username", "u", "", "username")
	f.StringVar(&req.Email, "email", "", "email address")
	f.StringVar(&req.FirstName, "first-name", "", "first name")
	f.StringVar(&req.LastName, "last-name", "", "last name")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.promptIfEmpty(&username, "Enter username"); err != nil {
				return err
			}

			password, err := getPassword(a.out, "Enter password")
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(password)

			return a.call(cmd, false, func(ctx context.Context, c client.Client, sess *session.Session) error {
				if err := c.Login(ctx, username, string(password)); err != nil {
					return err
				}
				sess.Username = username
				fmt.Fprintf(a.out, "Logged in as %s\n", username)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session on the server and forget it locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, true, func(ctx context.Context, c client.Client, _ *session.Session) error {
				err := c.Logout(ctx)
				if errors.Is(err, client.ErrUnauthorized) {
					// the server no longer knows the session; forget it anyway
					c.SetTokens("", "")
					err = nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Logged out")
				return nil
			})
		},
	}
}

func (a *App) profileCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "profile",
		Aliases: []string{"whoami"},
		Short:   "Show the logged in user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, true, func(ctx context.Context, c client.Client, _ *session.Session) error {
				u, err := c.Profile(ctx)
				if err != nil {
					return err
				}
				printUser(a.out, u)
				return nil
			})
		},
	}
}

func (a *App) deleteAccountCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the account together with all its tasks and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, true, func(ctx context.Context, c client.Client, sess *session.Session) error {
				if !yes {
					ok, err := Confirm(a.in, fmt.Sprintf("Delete account %s and all of its data?", sess.Username), a.out)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(a.out, "Aborted")
						return nil
					}
				}
				if err := c.DeleteAccount(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Account deleted")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
