package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amirbrooks/tasker-shell/internal/dispatch"
	"github.com/amirbrooks/tasker-shell/internal/store"
	"github.com/amirbrooks/tasker-shell/internal/task"
)

// Exit codes
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitNotFound = 3
	ExitInternal = 10
)

type GlobalFlags struct {
	Root    string
	File    string
	Quiet   bool
	Verbose bool
}

type app struct {
	gf     GlobalFlags
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	code   int
}

func Run(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		return ExitUsage
	}
	return a.code
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasker",
		Short: "tasker: a line-command task list (todos, deadlines, events)",
		Long: `tasker reads one command per line:

  todo <desc>[ /tag <tag>]
  deadline <desc> /by <when>[ /tag <tag>]
  event <desc> /from <start> /to <end>[ /tag <tag>]
  list | find <text> | mark <n> | unmark <n> | delete <n> | bye

Dates: 2024-12-01 1800, 2024-12-01, 1/12/2024 1800, Mon 2pm, Mon 1400, 4pm.
A bare four-digit time such as 1400 needs a weekday in front of it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.gf.Root, "root", defaultRoot(), "store root (default: ~/.tasker or TASKER_ROOT)")
	pf.StringVar(&a.gf.File, "file", "", "task file (default: data_file from config.yaml)")
	pf.BoolVar(&a.gf.Quiet, "quiet", false, "suppress all output")
	pf.BoolVar(&a.gf.Verbose, "verbose", false, "debug logging on stderr")

	cmd.AddCommand(a.doCmd(), a.exportCmd(), a.configCmd())
	return cmd
}

func defaultRoot() string {
	if env := os.Getenv("TASKER_ROOT"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		return filepath.Join(home, ".tasker")
	}
	return ".tasker"
}

// open resolves the workspace, applies flag overrides for this run and
// builds the logger.
func (a *app) open() (*store.Workspace, *slog.Logger, error) {
	ws, err := store.Open(a.gf.Root)
	if err != nil {
		return nil, nil, err
	}
	cfg := ws.Config()
	if strings.TrimSpace(a.gf.File) != "" {
		cfg.DataFile = a.gf.File
	}
	if a.gf.Quiet {
		cfg.Quiet = true
	}
	if a.gf.Verbose {
		cfg.LogLevel = "debug"
	}
	ws.Override(cfg)
	logger := newLogger(a.errOut, ws.Config().LogLevel).With("session", store.NewID())
	return ws, logger, nil
}

// session loads the task file into a fresh dispatcher. A file that cannot
// be read leaves the session with an empty list.
func (a *app) session(ws *store.Workspace, logger *slog.Logger) *dispatch.Session {
	file := ws.TaskFile(logger)
	list, err := file.Load()
	if err != nil {
		logger.Warn("starting with an empty task list", "err", err)
	}
	return dispatch.NewSession(list, file, logger)
}

func (a *app) fail(err error) {
	fmt.Fprintln(a.errOut, "tasker:", err)
	a.code = ExitInternal
}

func exitCode(res dispatch.Result) int {
	switch {
	case res.Err == nil && res.SaveErr == nil:
		return ExitOK
	case errors.Is(res.Err, task.ErrTaskNotFound):
		return ExitNotFound
	case res.Err != nil:
		return ExitUsage
	default:
		return ExitInternal
	}
}
