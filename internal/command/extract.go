package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirbrooks/tasker-shell/internal/task"
)

// Delimiters that split command arguments into fields.
const (
	DelimBy   = " /by "
	DelimFrom = " /from "
	DelimTo   = " /to "
	DelimTag  = " /tag "
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrValidation     = task.ErrInvalid
	ErrMalformedField = errors.New("malformed field")

	ErrEmptyDescription  = fmt.Errorf("%w: description is empty", ErrValidation)
	ErrMissingIndex      = fmt.Errorf("%w: task number is missing", ErrValidation)
	ErrNotANumber        = fmt.Errorf("%w: task number is not a number", ErrValidation)
	ErrMissingQuery      = fmt.Errorf("%w: search text is missing", ErrValidation)
	ErrMalformedDeadline = fmt.Errorf("%w: deadline needs %q followed by a time", ErrMalformedField, strings.TrimSpace(DelimBy))
	ErrMalformedEvent    = fmt.Errorf("%w: event needs %q and %q followed by times", ErrMalformedField, strings.TrimSpace(DelimFrom), strings.TrimSpace(DelimTo))
)

type TodoFields struct {
	Description string
	Tag         string
}

type DeadlineFields struct {
	Description string
	By          string
	Tag         string
}

type EventFields struct {
	Description string
	From        string
	To          string
	Tag         string
}

// ExtractTodo reads "<desc>[ /tag <tag>]".
func ExtractTodo(c Command) (TodoFields, error) {
	if !c.HasArgs {
		return TodoFields{}, ErrEmptyDescription
	}
	desc, tag, _ := strings.Cut(c.Args, DelimTag)
	if strings.TrimSpace(desc) == "" {
		return TodoFields{}, ErrEmptyDescription
	}
	return TodoFields{Description: desc, Tag: tag}, nil
}

// ExtractDeadline reads "<desc> /by <when>[ /tag <tag>]".
func ExtractDeadline(c Command) (DeadlineFields, error) {
	if !c.HasArgs {
		return DeadlineFields{}, ErrEmptyDescription
	}
	desc, rest, ok := strings.Cut(c.Args, DelimBy)
	if !ok {
		return DeadlineFields{}, ErrMalformedDeadline
	}
	by, tag, _ := strings.Cut(rest, DelimTag)
	if strings.TrimSpace(by) == "" {
		return DeadlineFields{}, ErrMalformedDeadline
	}
	if strings.TrimSpace(desc) == "" {
		return DeadlineFields{}, ErrEmptyDescription
	}
	return DeadlineFields{Description: desc, By: by, Tag: tag}, nil
}

// ExtractEvent reads "<desc> /from <start> /to <end>[ /tag <tag>]".
// Fields are cut in from, to, tag order, so a " /tag " written before
// " /to " stays inside the from text.
func ExtractEvent(c Command) (EventFields, error) {
	if !c.HasArgs {
		return EventFields{}, ErrEmptyDescription
	}
	desc, rest, ok := strings.Cut(c.Args, DelimFrom)
	if !ok {
		return EventFields{}, ErrMalformedEvent
	}
	from, rest, ok := strings.Cut(rest, DelimTo)
	if !ok {
		return EventFields{}, ErrMalformedEvent
	}
	to, tag, _ := strings.Cut(rest, DelimTag)
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return EventFields{}, ErrMalformedEvent
	}
	if strings.TrimSpace(desc) == "" {
		return EventFields{}, ErrEmptyDescription
	}
	return EventFields{Description: desc, From: from, To: to, Tag: tag}, nil
}

// ExtractIndex reads the 1-based task number of delete, mark and unmark.
// Range checking is left to the list.
func ExtractIndex(c Command) (int, error) {
	if !c.HasArgs {
		return 0, ErrMissingIndex
	}
	n, err := strconv.Atoi(strings.TrimSpace(c.Args))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, c.Args)
	}
	return n, nil
}

// ExtractQuery returns the literal substring for find.
func ExtractQuery(c Command) (string, error) {
	if !c.HasArgs {
		return "", ErrMissingQuery
	}
	return c.Args, nil
}
