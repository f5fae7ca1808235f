package dispatch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/amirbrooks/tasker-shell/internal/command"
	"github.com/amirbrooks/tasker-shell/internal/task"
)

// Saver receives the whole list after every successful mutation.
type Saver interface {
	Save(tasks []*task.Task) error
}

// Result is what one command produced. Err is the failure already folded
// into Message; SaveErr is a persistence failure reported after a mutation
// that still took effect in memory.
type Result struct {
	Kind    command.Kind
	Message string
	Exit    bool
	Err     error
	SaveErr error
}

// Session owns the task list for one run and applies commands to it.
type Session struct {
	tasks *task.List
	saver Saver
	log   *slog.Logger
}

func NewSession(tasks *task.List, saver Saver, logger *slog.Logger) *Session {
	if tasks == nil {
		tasks = task.NewList()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{tasks: tasks, saver: saver, log: logger}
}

func (s *Session) Tasks() *task.List {
	return s.tasks
}

// Execute parses and dispatches one raw input line.
func (s *Session) Execute(line string) Result {
	return s.Dispatch(command.Parse(line))
}

// Dispatch runs a parsed command. Fields are extracted and validated before
// the list is touched, so a failed command leaves it unchanged. No error
// escapes: every failure comes back as a message.
func (s *Session) Dispatch(c command.Command) Result {
	res := Result{Kind: c.Kind, Exit: c.Kind == command.Bye}
	msg, err := s.apply(c)
	if err != nil {
		s.log.Debug("command failed", "command", c.Kind.String(), "err", err)
		res.Message = describe(err)
		res.Err = err
		return res
	}
	res.Message = msg
	if c.Kind.Mutates() && s.saver != nil {
		if err := s.saver.Save(s.tasks.All()); err != nil {
			s.log.Warn("save failed", "command", c.Kind.String(), "err", err)
			res.SaveErr = err
			res.Message += "\nWarning: the change is kept for this session but could not be saved: " + err.Error()
		}
	}
	return res
}

func (s *Session) apply(c command.Command) (string, error) {
	switch c.Kind {
	case command.Todo:
		f, err := command.ExtractTodo(c)
		if err != nil {
			return "", err
		}
		return s.add(task.NewTodo(f.Description, f.Tag))
	case command.Deadline:
		f, err := command.ExtractDeadline(c)
		if err != nil {
			return "", err
		}
		return s.add(task.NewDeadline(f.Description, f.By, f.Tag))
	case command.Event:
		f, err := command.ExtractEvent(c)
		if err != nil {
			return "", err
		}
		return s.add(task.NewEvent(f.Description, f.From, f.To, f.Tag))
	case command.Delete:
		n, err := command.ExtractIndex(c)
		if err != nil {
			return "", err
		}
		t, err := s.tasks.Remove(n - 1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed this task:\n  %s\n%s", t, s.countLine()), nil
	case command.Mark, command.Unmark:
		n, err := command.ExtractIndex(c)
		if err != nil {
			return "", err
		}
		t, err := s.tasks.Get(n - 1)
		if err != nil {
			return "", err
		}
		if c.Kind == command.Mark {
			t.MarkDone()
			return "Nice, marked this task as done:\n  " + t.String(), nil
		}
		t.MarkUndone()
		return "OK, marked this task as not done yet:\n  " + t.String(), nil
	case command.List:
		if s.tasks.Len() == 0 {
			return "Your list is empty.", nil
		}
		return "Here are the tasks in your list:\n" + enumerate(s.tasks.All()), nil
	case command.Find:
		q, err := command.ExtractQuery(c)
		if err != nil {
			return "", err
		}
		var matches []*task.Task
		for _, t := range s.tasks.All() {
			if strings.Contains(t.String(), q) {
				matches = append(matches, t)
			}
		}
		if len(matches) == 0 {
			return fmt.Sprintf("No tasks match %q.", q), nil
		}
		return "Here are the matching tasks in your list:\n" + enumerate(matches), nil
	case command.Bye:
		return "Bye. Hope to see you again soon!", nil
	default:
		return "", fmt.Errorf("%w: %q", command.ErrUnknownCommand, c.Keyword)
	}
}

func (s *Session) add(t *task.Task, err error) (string, error) {
	if err != nil {
		return "", err
	}
	s.tasks.Add(t)
	return fmt.Sprintf("Got it. Added this task:\n  %s\n%s", t, s.countLine()), nil
}

func (s *Session) countLine() string {
	if s.tasks.Len() == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", s.tasks.Len())
}

func enumerate(tasks []*task.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}

// describe turns a command failure into the message shown to the user.
func describe(err error) string {
	var tsErr *task.TimestampError
	var nfErr *task.NotFoundError
	switch {
	case errors.Is(err, command.ErrUnknownCommand):
		return "Sorry, I don't know what that means. Try todo, deadline, event, list, find, mark, unmark, delete or bye."
	case errors.As(err, &nfErr):
		return "Hmm, " + nfErr.Error() + "."
	case errors.As(err, &tsErr):
		return fmt.Sprintf("I can't read the %s time %q. Use a date like 2024-12-01 1800 or 1/12/2024, or a day and time like Mon 2pm.", tsErr.Field, strings.TrimSpace(tsErr.Raw))
	case errors.Is(err, command.ErrEmptyDescription):
		return "The description can't be empty."
	case errors.Is(err, command.ErrMissingIndex):
		return "Which task? Add the task number, e.g. mark 2."
	case errors.Is(err, command.ErrNotANumber):
		return "The task number has to be a whole number, e.g. delete 2."
	case errors.Is(err, command.ErrMissingQuery):
		return "What should I look for? e.g. find book"
	case errors.Is(err, command.ErrMalformedDeadline):
		return "A deadline needs a due time: deadline <description> /by <when>"
	case errors.Is(err, command.ErrMalformedEvent):
		return "An event needs a start and an end: event <description> /from <start> /to <end>"
	case errors.Is(err, command.ErrValidation):
		return "That didn't work: " + err.Error() + "."
	default:
		return "Something went wrong: " + err.Error()
	}
}
