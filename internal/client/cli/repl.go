package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// splitLine splits a command line on whitespace, keeping double-quoted
// parts together so titles with spaces survive.
func splitLine(line string) []string {
	var (
		parts   []string
		cur     strings.Builder
		quoted  bool
		hasPart bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			hasPart = true
		case !quoted && (r == ' ' || r == '\t'):
			if hasPart {
				parts = append(parts, cur.String())
				cur.Reset()
				hasPart = false
			}
		default:
			cur.WriteRune(r)
			hasPart = true
		}
	}
	if hasPart {
		parts = append(parts, cur.String())
	}
	return parts
}

// runREPL reads command lines from reader and runs each through exec until
// EOF or "exit". Errors are reported and the loop keeps going.
func runREPL(ctx context.Context, reader *bufio.Reader, w io.Writer, prompt func() string, exec func(ctx context.Context, args []string) error) {
	for {
		fmt.Fprintf(w, "%s> ", prompt())
		line, err := reader.ReadString('\n')
		parts := splitLine(strings.TrimSpace(line))

		if len(parts) > 0 {
			switch parts[0] {
			case "exit", "quit":
				fmt.Fprintln(w, "Bye!")
				return
			case "shell":
				fmt.Fprintln(w, "Already in the shell")
			default:
				if err := exec(ctx, parts); err != nil {
					fmt.Fprintln(w, "Error:", err)
				}
			}
		}

		if err != nil || ctx.Err() != nil {
			return
		}
	}
}

func (a *App) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively (type \"help\" for commands, \"exit\" to leave)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, "Welcome to tasktracker (type 'help' for commands)")
			prompt := func() string {
				sess, err := a.sessions.Load()
				if err != nil || !sess.LoggedIn() {
					return "tt"
				}
				return fmt.Sprintf("tt (%s)", sess.Username)
			}
			runREPL(cmd.Context(), a.in, a.out, prompt, func(ctx context.Context, args []string) error {
				root := NewRootCommand(a)
				root.SetArgs(args)
				if err := root.ExecuteContext(ctx); err != nil {
					return fmt.Errorf("%s", a.describeError(err))
				}
				return nil
			})
			return nil
		},
	}
}
