package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type form int

const (
	formDateTime form = iota + 1
	formDate
	formWeekday
	formWeekdayClock
	formClock
)

var (
	dateTimeLayouts = []string{"2006-01-02 1504", "2006-01-02 15:04", "2/1/2006 1504", "2/1/2006 15:04"}
	dateLayouts     = []string{"2006-01-02", "2/1/2006"}
)

// Timestamp keeps the text a user typed for a date field next to its parsed
// value. Raw is what gets persisted; String is what gets displayed.
type Timestamp struct {
	Raw     string
	At      time.Time
	Weekday time.Weekday
	form    form
}

// TimestampError reports a date field that does not match any accepted form.
// It satisfies errors.Is(err, ErrUnparseableTimestamp).
type TimestampError struct {
	Field string
	Raw   string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("cannot read %s time %q", e.Field, e.Raw)
}

func (e *TimestampError) Is(target error) bool {
	return target == ErrUnparseableTimestamp
}

// ParseTimestamp reads raw under the accepted grammar: an absolute date with
// an optional clock (2024-12-01 1800, 1/12/2024), or an informal weekday
// and/or clock (Mon 2pm, 4:30pm, 14:00, Mon 1400). A bare four-digit clock
// needs a weekday so that a lone year is not read as a time. field names
// the slot in errors.
func ParseTimestamp(field, raw string) (Timestamp, error) {
	ts := Timestamp{Raw: raw}
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return ts, &TimestampError{Field: field, Raw: raw}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.At, ts.form = t, formDateTime
			return ts, nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.At, ts.form = t, formDate
			return ts, nil
		}
	}

	parts := strings.Fields(strings.ToLower(s))
	switch len(parts) {
	case 1:
		if wd, ok := parseWeekday(parts[0]); ok {
			ts.Weekday, ts.form = wd, formWeekday
			return ts, nil
		}
		if h, m, ok := parseClock(parts[0], false); ok {
			ts.At, ts.form = clockTime(h, m), formClock
			return ts, nil
		}
	case 2:
		wd, okDay := parseWeekday(parts[0])
		h, m, okClock := parseClock(parts[1], true)
		if okDay && okClock {
			ts.Weekday, ts.At, ts.form = wd, clockTime(h, m), formWeekdayClock
			return ts, nil
		}
	}
	return ts, &TimestampError{Field: field, Raw: raw}
}

func (ts Timestamp) String() string {
	switch ts.form {
	case formDateTime:
		return ts.At.Format("Jan 02 2006 1504")
	case formDate:
		return ts.At.Format("Jan 02 2006")
	case formWeekday:
		return ts.Weekday.String()[:3]
	case formWeekdayClock:
		return ts.Weekday.String()[:3] + " " + formatClock(ts.At)
	case formClock:
		return formatClock(ts.At)
	default:
		return strings.TrimSpace(ts.Raw)
	}
}

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return 0, false
}

// parseClock accepts 2pm, 2:30pm and 14:00, plus 1400 when digits is set.
func parseClock(s string, digits bool) (int, int, bool) {
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		pm := strings.HasSuffix(s, "pm")
		body := s[:len(s)-2]
		hs, ms, hasMin := strings.Cut(body, ":")
		h, err := strconv.Atoi(hs)
		if err != nil || h < 1 || h > 12 {
			return 0, 0, false
		}
		m := 0
		if hasMin {
			if len(ms) != 2 {
				return 0, 0, false
			}
			if m, err = strconv.Atoi(ms); err != nil || m < 0 || m > 59 {
				return 0, 0, false
			}
		}
		h %= 12
		if pm {
			h += 12
		}
		return h, m, true
	}
	var hs, ms string
	if before, after, ok := strings.Cut(s, ":"); ok {
		hs, ms = before, after
	} else if digits && len(s) == 4 {
		hs, ms = s[:2], s[2:]
	} else {
		return 0, 0, false
	}
	if len(ms) != 2 || len(hs) == 0 || len(hs) > 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func clockTime(h, m int) time.Time {
	return time.Date(0, time.January, 1, h, m, 0, 0, time.UTC)
}

func formatClock(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if t.Hour() >= 12 {
		suffix = "pm"
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%d%s", h, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute(), suffix)
}
