package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords(t *testing.T) {
	cases := map[string]Kind{
		"todo read":     Todo,
		"TODO read":     Todo,
		"Deadline x":    Deadline,
		"event x":       Event,
		"delete 1":      Delete,
		"mark 1":        Mark,
		"unmark 1":      Unmark,
		"list":          List,
		"bye":           Bye,
		"find book":     Find,
		"blah":          Unknown,
		"":              Unknown,
		"todos x":       Unknown,
		"  list  ":      List,
		"find\tproject": Find,
	}
	for line, want := range cases {
		assert.Equal(t, want, Parse(line).Kind, line)
	}
}

func TestParseSplitsOnFirstWhitespaceRun(t *testing.T) {
	c := Parse("todo   read  the book ")
	assert.Equal(t, "todo", c.Keyword)
	assert.Equal(t, "read  the book", c.Args)
	assert.True(t, c.HasArgs)

	c = Parse("list")
	assert.Equal(t, "", c.Args)
	assert.False(t, c.HasArgs)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "deadline", Deadline.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Kind(99).String())
	for word, kind := range keywords {
		assert.Equal(t, word, kind.String())
		assert.Equal(t, kind, Parse(kind.String()).Kind)
	}
	assert.True(t, Mark.Mutates())
	assert.False(t, Find.Mutates())
}

func TestExtractTodo(t *testing.T) {
	f, err := ExtractTodo(Parse("todo read book /tag fun"))
	require.NoError(t, err)
	assert.Equal(t, TodoFields{Description: "read book", Tag: "fun"}, f)

	f, err = ExtractTodo(Parse("todo read book"))
	require.NoError(t, err)
	assert.Equal(t, TodoFields{Description: "read book"}, f)

	_, err = ExtractTodo(Parse("todo"))
	assert.ErrorIs(t, err, ErrEmptyDescription)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExtractDeadline(t *testing.T) {
	f, err := ExtractDeadline(Parse("deadline submit report /by 2024-12-01 1800 /tag work"))
	require.NoError(t, err)
	assert.Equal(t, DeadlineFields{Description: "submit report", By: "2024-12-01 1800", Tag: "work"}, f)

	_, err = ExtractDeadline(Parse("deadline submit report"))
	assert.ErrorIs(t, err, ErrMalformedDeadline)
	assert.ErrorIs(t, err, ErrMalformedField)

	_, err = ExtractDeadline(Parse("deadline submit report /by"))
	assert.ErrorIs(t, err, ErrMalformedDeadline)

	_, err = ExtractDeadline(Parse("deadline   /by 2024-12-01"))
	assert.ErrorIs(t, err, ErrMalformedDeadline)

	_, err = ExtractDeadline(Parse("deadline"))
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestExtractEvent(t *testing.T) {
	f, err := ExtractEvent(Parse("event meeting /from Mon 2pm /to 4pm"))
	require.NoError(t, err)
	assert.Equal(t, EventFields{Description: "meeting", From: "Mon 2pm", To: "4pm"}, f)

	f, err = ExtractEvent(Parse("event meeting /from Mon 2pm /to 4pm /tag work"))
	require.NoError(t, err)
	assert.Equal(t, "work", f.Tag)

	_, err = ExtractEvent(Parse("event meeting /to 4pm"))
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = ExtractEvent(Parse("event meeting /from Mon 2pm"))
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestExtractEventTagBeforeToStaysInFrom(t *testing.T) {
	f, err := ExtractEvent(Parse("event meeting /from Mon 2pm /tag work /to 4pm"))
	require.NoError(t, err)
	assert.Equal(t, "Mon 2pm /tag work", f.From)
	assert.Equal(t, "4pm", f.To)
	assert.Empty(t, f.Tag)
}

func TestExtractIndex(t *testing.T) {
	n, err := ExtractIndex(Parse("mark 3"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ExtractIndex(Parse("mark 0"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = ExtractIndex(Parse("delete"))
	assert.ErrorIs(t, err, ErrMissingIndex)

	_, err = ExtractIndex(Parse("delete two"))
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestExtractQuery(t *testing.T) {
	q, err := ExtractQuery(Parse("find project plan"))
	require.NoError(t, err)
	assert.Equal(t, "project plan", q)

	_, err = ExtractQuery(Parse("find"))
	assert.ErrorIs(t, err, ErrMissingQuery)
}
