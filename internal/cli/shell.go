package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirbrooks/tasker-shell/internal/command"
)

// runShell reads commands until bye or end of input. End of input is
// handled like bye.
func (a *app) runShell() error {
	ws, logger, err := a.open()
	if err != nil {
		a.fail(err)
		return nil
	}
	sess := a.session(ws, logger)
	d := newDisplay(a.out, ws.Config().Quiet)
	if ws.Config().Banner {
		d.Banner()
	}

	// No line length cap: a long line is one command, never end of input.
	r := bufio.NewReader(a.in)
	for {
		line, err := r.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			res := sess.Execute(strings.TrimRight(line, "\r\n"))
			d.Show(res.Message)
			if res.Exit {
				a.code = ExitOK
				return nil
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warn("reading input", "err", err)
			}
			break
		}
	}
	d.Show(sess.Dispatch(command.Command{Kind: command.Bye}).Message)
	a.code = ExitOK
	return nil
}

func (a *app) doCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <command line>",
		Short: "Run a single command line and exit",
		Example: `  tasker do todo read book /tag fun
  tasker do deadline submit report /by 2024-12-01 1800
  tasker do list`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, logger, err := a.open()
			if err != nil {
				a.fail(err)
				return nil
			}
			sess := a.session(ws, logger)
			res := sess.Execute(strings.Join(args, " "))
			d := newDisplay(a.out, ws.Config().Quiet)
			d.Print(res.Message)
			a.code = exitCode(res)
			return nil
		},
	}
}
