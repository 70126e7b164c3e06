package exchange

import (
	"fmt"
	"time"
)

// dateLayout accepts one- and two-digit days and months, e.g. "5.1.2025".
const dateLayout = "2.1.2006"

// DateValidator checks that a date token is a real calendar date within the
// allowed lookback window. Future dates are accepted; only the past is
// bounded.
type DateValidator struct {
	lookback time.Duration
	now      func() time.Time
}

// NewDateValidator builds a validator rejecting dates more than lookbackDays
// in the past.
func NewDateValidator(lookbackDays int) *DateValidator {
	return &DateValidator{
		lookback: time.Duration(lookbackDays) * 24 * time.Hour,
		now:      time.Now,
	}
}

// Validate parses a day.month.year token and enforces the lookback window.
func (v *DateValidator) Validate(date string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDateFormat, date)
	}
	if v.now().Sub(parsed) > v.lookback {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateOutOfWindow, date)
	}
	return parsed, nil
}
