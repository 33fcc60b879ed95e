package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/tasktracker/internal/client/client"
	"github.com/dmitrijs2005/tasktracker/internal/client/config"
	"github.com/dmitrijs2005/tasktracker/internal/client/session"
	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"github.com/spf13/cobra"
)

// getPassword is swapped in tests; the terminal cannot be scripted.
var getPassword = GetPassword

type App struct {
	config    *config.Config
	newClient func(addr string) (client.Client, error)
	sessions  *session.Store
	clock     timex.Clock
	in        *bufio.Reader
	out       io.Writer
	errOut    io.Writer
}

func NewApp(in io.Reader, out, errOut io.Writer) *App {
	c := &config.Config{}
	c.LoadDefaults()
	return &App{
		config: c,
		newClient: func(addr string) (client.Client, error) {
			return client.NewTaskTrackerClient(addr)
		},
		clock:  timex.SystemClock{},
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// Execute runs one command line and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := NewRootCommand(a)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.errOut, "Error:", a.describeError(err))
		return 1
	}
	return 0
}

// call runs fn with a client carrying the saved tokens. Session changes made
// by fn, including tokens rotated by a transparent refresh, are persisted.
func (a *App) call(cmd *cobra.Command, needLogin bool, fn func(ctx context.Context, c client.Client, sess *session.Session) error) error {
	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}
	if needLogin && !sess.LoggedIn() {
		return client.ErrNotLoggedIn
	}

	c, err := a.newClient(a.config.ServerEndpointAddr)
	if err != nil {
		return err
	}
	defer c.Close()
	c.SetTokens(sess.AccessToken, sess.RefreshToken)

	ctx, cancel := context.WithTimeout(cmd.Context(), a.config.Timeout)
	defer cancel()

	before := *sess
	fnErr := fn(ctx, c, sess)

	sess.AccessToken, sess.RefreshToken = c.Tokens()
	if *sess != before {
		if !sess.LoggedIn() {
			sess.Username = ""
			err = a.sessions.Clear()
		} else {
			err = a.sessions.Save(sess)
		}
	}
	return errors.Join(fnErr, err)
}

func (a *App) describeError(err error) string {
	var v *common.ValidationError
	switch {
	case errors.As(err, &v):
		var b strings.Builder
		b.WriteString("invalid input")
		for _, f := range v.Fields {
			fmt.Fprintf(&b, "\n  %s: %s", f.Field, f.Message)
		}
		return b.String()
	case errors.Is(err, client.ErrNotLoggedIn):
		return "not logged in, run \"tasktracker login\" first"
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Sprintf("server %s is unavailable", a.config.ServerEndpointAddr)
	case errors.Is(err, client.ErrUnauthorized):
		return err.Error() + ", run \"tasktracker login\" again"
	}
	return err.Error()
}
