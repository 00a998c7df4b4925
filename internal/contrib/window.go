package contrib

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format accepted on the query boundary.
const DateLayout = "2006-01-02"

// ErrInvalidWindow is returned for malformed, reversed, or empty windows.
var ErrInvalidWindow = errors.New("invalid date range")

// DateWindow is a validated half-open commit query window.
// Since is always strictly earlier than Until.
type DateWindow struct {
	Since time.Time
	Until time.Time
}

// ParseWindow parses two calendar dates and validates their ordering.
// Callers substitute defaults for absent input before calling; ParseWindow
// never does. Unparseable input fails the same way a reversed window does.
func ParseWindow(sinceRaw, untilRaw string) (DateWindow, error) {
	since, err := time.Parse(DateLayout, sinceRaw)
	if err != nil {
		return DateWindow{}, ErrInvalidWindow
	}
	until, err := time.Parse(DateLayout, untilRaw)
	if err != nil {
		return DateWindow{}, ErrInvalidWindow
	}
	if !since.Before(until) {
		return DateWindow{}, ErrInvalidWindow
	}
	return DateWindow{Since: since, Until: until}, nil
}

// SinceString returns the window start in canonical form.
func (w DateWindow) SinceString() string {
	return w.Since.Format(DateLayout)
}

// UntilString returns the window end in canonical form.
func (w DateWindow) UntilString() string {
	return w.Until.Format(DateLayout)
}
