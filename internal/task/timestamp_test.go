package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampRendering(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2024-12-01 1800", "Dec 01 2024 1800"},
		{"2024-12-01 18:00", "Dec 01 2024 1800"},
		{"2/12/2019 1800", "Dec 02 2019 1800"},
		{"2024-12-01", "Dec 01 2024"},
		{"15/1/2025", "Jan 15 2025"},
		{"Mon 2pm", "Mon 2pm"},
		{"monday 14:00", "Mon 2pm"},
		{"FRI", "Fri"},
		{"4pm", "4pm"},
		{"4:30PM", "4:30pm"},
		{"12am", "12am"},
		{"Wed 0930", "Wed 9:30am"},
		{"  Tue   1200 ", "Tue 12pm"},
	}
	for _, tc := range cases {
		ts, err := ParseTimestamp("by", tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, ts.String(), tc.raw)
		assert.Equal(t, tc.raw, ts.Raw)
	}
}

func TestParseTimestampRejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "tomorrow", "13pm", "25:00", "2024-13-01", "Mon 2pm extra", "2pm Mon", "4:3pm", "7"} {
		_, err := ParseTimestamp("from", raw)
		assert.ErrorIs(t, err, ErrUnparseableTimestamp, raw)
	}
}

func TestParseTimestampBareDigitsNeedWeekday(t *testing.T) {
	for _, raw := range []string{"2024", "1400", "0930"} {
		_, err := ParseTimestamp("by", raw)
		assert.ErrorIs(t, err, ErrUnparseableTimestamp, raw)
	}

	ts, err := ParseTimestamp("by", "Mon 1400")
	require.NoError(t, err)
	assert.Equal(t, "Mon 2pm", ts.String())
}
