// Package timex holds the time helpers shared across busdepot: a minute
// resolution time of day (Clock) and a config-friendly Duration.
package timex

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/busdepot/internal/common"
)

// ClockLayout is the 24-hour layout used for both input and output.
const ClockLayout = "15:04"

const minutesPerDay = 24 * 60

// Clock is a time of day with minute resolution and no date component.
// The zero value is 00:00.
type Clock struct {
	minutes int
}

// NewClock builds a Clock from hour and minute. Out of range values are
// rejected with common.ErrInvalidTimeFormat.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d", common.ErrInvalidTimeFormat, hour, minute)
	}
	return Clock{minutes: hour*60 + minute}, nil
}

// MustClock is NewClock for literals known to be valid.
func MustClock(hour, minute int) Clock {
	c, err := NewClock(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseClock parses a strict "HH:mm" string: two digit hour, colon,
// two digit minute.
func ParseClock(s string) (Clock, error) {
	if len(s) != len(ClockLayout) || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, s)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, s)
	}
	return Clock{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (c Clock) Hour() int   { return c.minutes / 60 }
func (c Clock) Minute() int { return c.minutes % 60 }

// String formats the clock as "HH:mm".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// MinusHours subtracts n hours, wrapping across midnight.
func (c Clock) MinusHours(n int) Clock {
	m := (c.minutes - (n%24)*60) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return Clock{minutes: m}
}

// Before reports whether c is strictly earlier in the day than o.
func (c Clock) Before(o Clock) bool { return c.minutes < o.minutes }

// After reports whether c is strictly later in the day than o.
func (c Clock) After(o Clock) bool { return c.minutes > o.minutes }

// Compare returns -1, 0 or +1.
func (c Clock) Compare(o Clock) int {
	switch {
	case c.minutes < o.minutes:
		return -1
	case c.minutes > o.minutes:
		return 1
	default:
		return 0
	}
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", common.ErrInvalidTimeFormat, string(b))
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value stores the clock as "HH:mm" text.
func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan reads a clock stored as "HH:mm" text.
func (c *Clock) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: unsupported column type %T", common.ErrInvalidTimeFormat, src)
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
