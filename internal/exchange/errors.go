package exchange

import "errors"

var (
	// ErrNoDate means the message carried no date token.
	ErrNoDate = errors.New("no date in message")
	// ErrAmbiguousDate means the message carried more than one date token.
	ErrAmbiguousDate = errors.New("more than one date in message")
	// ErrNoCurrency means no supported currency code was mentioned.
	ErrNoCurrency = errors.New("no supported currency in message")
	// ErrAmbiguousCurrency means more than one supported currency was mentioned.
	ErrAmbiguousCurrency = errors.New("more than one currency in message")
	// ErrBadDateFormat means the date token did not parse as a calendar date.
	ErrBadDateFormat = errors.New("incorrect date format")
	// ErrDateOutOfWindow means the date is further in the past than allowed.
	ErrDateOutOfWindow = errors.New("date outside the allowed lookback window")
	// ErrFetchFailed means the upstream rate API could not be reached or
	// answered with a non-200 status.
	ErrFetchFailed = errors.New("could not fetch exchange rates")
	// ErrEmptyRateTable means the upstream returned no rates for the date.
	ErrEmptyRateTable = errors.New("exchange rate table is empty")
	// ErrExtraction means the table had no unambiguous entry for the currency.
	ErrExtraction = errors.New("no unambiguous rate entry for currency")
)
