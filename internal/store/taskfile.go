package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amirbrooks/tasker-shell/internal/task"
)

// ErrMalformedRecord marks a task file line that cannot be read back.
var ErrMalformedRecord = errors.New("malformed record")

// LineError reports one unreadable line of the task file.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// TaskFile is the flat, one-task-per-line store. Every save rewrites the
// whole file in list order.
type TaskFile struct {
	Path string
	log  *slog.Logger
}

func (w *Workspace) TaskFile(logger *slog.Logger) *TaskFile {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &TaskFile{Path: w.DataPath(), log: logger}
}

// Load reads the task file. A missing file is an empty list. Malformed
// lines are logged and skipped. On a read failure the returned list is
// empty and the error wraps ErrPersistence.
func (f *TaskFile) Load() (*task.List, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return task.NewList(), nil
		}
		return task.NewList(), fmt.Errorf("%w: load %s: %w", ErrPersistence, f.Path, err)
	}
	list, skipped := Decode(b)
	for _, le := range skipped {
		f.log.Warn("skipping task record", "path", f.Path, "line", le.Line, "err", le.Err)
	}
	f.log.Debug("loaded tasks", "path", f.Path, "count", list.Len(), "skipped", len(skipped))
	return list, nil
}

// Save rewrites the task file with tasks, in order.
func (f *TaskFile) Save(tasks []*task.Task) error {
	if err := atomicWriteFile(f.Path, Encode(tasks), 0o644); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrPersistence, f.Path, err)
	}
	return nil
}

func Encode(tasks []*task.Task) []byte {
	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(t.Record())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Decode parses task file contents. Blank lines are ignored; lines that
// fail to parse are returned as LineErrors and left out of the list.
func Decode(b []byte) (*task.List, []*LineError) {
	list := task.NewList()
	var skipped []*LineError
	for i, raw := range strings.Split(string(b), "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := DecodeRecord(line)
		if err != nil {
			skipped = append(skipped, &LineError{Line: i + 1, Err: err})
			continue
		}
		list.Add(t)
	}
	return list, skipped
}

// DecodeRecord parses one "<code> | <0|1> | <description> | ..." line.
func DecodeRecord(line string) (*task.Task, error) {
	fields := strings.Split(line, task.FieldSep)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrMalformedRecord, len(fields))
	}
	kind, ok := task.KindFromCode(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrMalformedRecord, fields[0])
	}
	var done bool
	switch fields[1] {
	case "0":
	case "1":
		done = true
	default:
		return nil, fmt.Errorf("%w: done flag %q is not 0 or 1", ErrMalformedRecord, fields[1])
	}
	desc, extra := fields[2], fields[3:]

	var t *task.Task
	var err error
	switch kind {
	case task.KindTodo:
		if len(extra) > 1 {
			return nil, fmt.Errorf("%w: todo has %d extra fields", ErrMalformedRecord, len(extra))
		}
		t, err = task.NewTodo(desc, optional(extra, 0))
	case task.KindDeadline:
		if len(extra) < 1 || len(extra) > 2 {
			return nil, fmt.Errorf("%w: deadline has %d extra fields", ErrMalformedRecord, len(extra))
		}
		t, err = task.NewDeadline(desc, extra[0], optional(extra, 1))
	case task.KindEvent:
		if len(extra) < 2 || len(extra) > 3 {
			return nil, fmt.Errorf("%w: event has %d extra fields", ErrMalformedRecord, len(extra))
		}
		t, err = task.NewEvent(desc, extra[0], extra[1], optional(extra, 2))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	t.Done = done
	return t, nil
}

func optional(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
