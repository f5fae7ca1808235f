package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalid              = errors.New("invalid")
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")
	ErrTaskNotFound         = errors.New("task not found")
)

// FieldSep separates the fields of a persisted record.
const FieldSep = " | "

type Kind int

const (
	KindTodo Kind = iota + 1
	KindDeadline
	KindEvent
)

// Code is the single-letter type tag used in renderings and records.
func (k Kind) Code() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// KindFromCode maps a record type tag back to its Kind.
func KindFromCode(code string) (Kind, bool) {
	switch code {
	case "T":
		return KindTodo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return 0, false
	}
}

// Task is one tracked item. Kind selects which of the date fields are
// meaningful: By for deadlines, From and To for events.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Tag         string

	By   Timestamp
	From Timestamp
	To   Timestamp
}

func NewTodo(description, tag string) (*Task, error) {
	return newTask(KindTodo, description, tag)
}

func NewDeadline(description, by, tag string) (*Task, error) {
	t, err := newTask(KindDeadline, description, tag)
	if err != nil {
		return nil, err
	}
	if err := checkField("by", by); err != nil {
		return nil, err
	}
	if t.By, err = ParseTimestamp("by", by); err != nil {
		return nil, err
	}
	return t, nil
}

// NewEvent builds an event. No ordering between from and to is enforced.
func NewEvent(description, from, to, tag string) (*Task, error) {
	t, err := newTask(KindEvent, description, tag)
	if err != nil {
		return nil, err
	}
	if err := checkField("from", from); err != nil {
		return nil, err
	}
	if err := checkField("to", to); err != nil {
		return nil, err
	}
	if t.From, err = ParseTimestamp("from", from); err != nil {
		return nil, err
	}
	if t.To, err = ParseTimestamp("to", to); err != nil {
		return nil, err
	}
	return t, nil
}

func newTask(kind Kind, description, tag string) (*Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is empty", ErrInvalid)
	}
	if err := checkField("description", description); err != nil {
		return nil, err
	}
	tag = strings.TrimSpace(tag)
	if err := checkField("tag", tag); err != nil {
		return nil, err
	}
	return &Task{Kind: kind, Description: description, Tag: tag}, nil
}

// checkField rejects text that would corrupt a persisted record.
func checkField(name, value string) error {
	if strings.Contains(value, "|") {
		return fmt.Errorf("%w: %s must not contain %q", ErrInvalid, name, "|")
	}
	return nil
}

func (t *Task) MarkDone()   { t.Done = true }
func (t *Task) MarkUndone() { t.Done = false }

// String renders the task for list and find output, e.g.
// "[D][X] submit report (by: Dec 01 2024 1800) #work".
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString("[" + t.Kind.Code() + "]")
	if t.Done {
		b.WriteString("[X] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(t.Description)
	switch t.Kind {
	case KindDeadline:
		fmt.Fprintf(&b, " (by: %s)", t.By)
	case KindEvent:
		fmt.Fprintf(&b, " (from: %s to: %s)", t.From, t.To)
	}
	if t.Tag != "" {
		b.WriteString(" #" + t.Tag)
	}
	return b.String()
}

// Record renders the task as one line of the task file:
// <code> | <0|1> | <description> | <date fields...> [| <tag>].
func (t *Task) Record() string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.Kind.Code(), done, t.Description}
	switch t.Kind {
	case KindDeadline:
		fields = append(fields, t.By.Raw)
	case KindEvent:
		fields = append(fields, t.From.Raw, t.To.Raw)
	}
	if t.Tag != "" {
		fields = append(fields, t.Tag)
	}
	return strings.Join(fields, FieldSep)
}
