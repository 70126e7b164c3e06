package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValidatorAcceptsRecentDate(t *testing.T) {
	v := NewDateValidator(10)

	date := time.Now().AddDate(0, 0, -3)
	parsed, err := v.Validate(date.Format("2.1.2006"))
	require.NoError(t, err)
	assert.Equal(t, date.Day(), parsed.Day())
	assert.Equal(t, date.Month(), parsed.Month())
}

func TestDateValidatorAcceptsFutureDate(t *testing.T) {
	v := NewDateValidator(10)

	// The lookback window is asymmetric: only the past is bounded.
	_, err := v.Validate(time.Now().AddDate(0, 0, 30).Format("2.1.2006"))
	require.NoError(t, err)
}

func TestDateValidatorRejectsOldDate(t *testing.T) {
	v := NewDateValidator(10)

	_, err := v.Validate(time.Now().AddDate(0, 0, -15).Format("2.1.2006"))
	require.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestDateValidatorRejectsImpossibleDate(t *testing.T) {
	v := NewDateValidator(10)

	_, err := v.Validate("99.99.2025")
	require.ErrorIs(t, err, ErrBadDateFormat)
}
