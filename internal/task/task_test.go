package task

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodoRendering(t *testing.T) {
	todo, err := NewTodo("  read book ", "")
	require.NoError(t, err)

	assert.Equal(t, "read book", todo.Description)
	assert.Equal(t, "[T][ ] read book", todo.String())
	assert.Equal(t, "T | 0 | read book", todo.Record())
}

func TestNewTodoWithTag(t *testing.T) {
	todo, err := NewTodo("read book", "fun")
	require.NoError(t, err)

	assert.Equal(t, "[T][ ] read book #fun", todo.String())
	assert.Equal(t, "T | 0 | read book | fun", todo.Record())
}

func TestNewTodoRejectsEmptyDescription(t *testing.T) {
	_, err := NewTodo("   ", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewTodoRejectsFieldSeparator(t *testing.T) {
	_, err := NewTodo("a | b", "")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewTodo("a", "x|y")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewDeadline(t *testing.T) {
	d, err := NewDeadline("submit report", "2024-12-01 1800", "work")
	require.NoError(t, err)

	assert.Equal(t, KindDeadline, d.Kind)
	assert.Equal(t, "2024-12-01 1800", d.By.Raw)
	assert.Equal(t, time.Date(2024, time.December, 1, 18, 0, 0, 0, time.UTC), d.By.At)
	assert.Equal(t, "[D][ ] submit report (by: Dec 01 2024 1800) #work", d.String())
	assert.Equal(t, "D | 0 | submit report | 2024-12-01 1800 | work", d.Record())
}

func TestNewDeadlineUnparseable(t *testing.T) {
	_, err := NewDeadline("submit report", "whenever", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparseableTimestamp)

	var tsErr *TimestampError
	require.True(t, errors.As(err, &tsErr))
	assert.Equal(t, "by", tsErr.Field)
	assert.Equal(t, "whenever", tsErr.Raw)
}

func TestNewEvent(t *testing.T) {
	e, err := NewEvent("meeting", "Mon 2pm", "4pm", "")
	require.NoError(t, err)

	assert.Equal(t, "Mon 2pm", e.From.Raw)
	assert.Equal(t, "4pm", e.To.Raw)
	assert.Empty(t, e.Tag)
	assert.Equal(t, "[E][ ] meeting (from: Mon 2pm to: 4pm)", e.String())
	assert.Equal(t, "E | 0 | meeting | Mon 2pm | 4pm", e.Record())
}

func TestNewEventNamesOffendingField(t *testing.T) {
	_, err := NewEvent("meeting", "Mon 2pm", "later", "")

	var tsErr *TimestampError
	require.True(t, errors.As(err, &tsErr))
	assert.Equal(t, "to", tsErr.Field)
}

func TestNewEventAllowsReversedRange(t *testing.T) {
	_, err := NewEvent("meeting", "2024-12-02", "2024-12-01", "")
	assert.NoError(t, err)
}

func TestMarkAndUnmarkRestoreRendering(t *testing.T) {
	d, err := NewDeadline("pay rent", "1/12/2024", "")
	require.NoError(t, err)
	before := d.String()

	d.MarkDone()
	assert.Equal(t, "[D][X] pay rent (by: Dec 01 2024)", d.String())
	assert.Equal(t, "D | 1 | pay rent | 1/12/2024", d.Record())

	d.MarkUndone()
	assert.Equal(t, before, d.String())
}

func TestKindFromCode(t *testing.T) {
	for _, k := range []Kind{KindTodo, KindDeadline, KindEvent} {
		got, ok := KindFromCode(k.Code())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := KindFromCode("X")
	assert.False(t, ok)
}
