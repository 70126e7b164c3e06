package exchange

import (
	"regexp"
	"strings"
)

// Currencies is the fixed set of currency codes a command may request.
var Currencies = []string{"USD", "EUR", "PLZ", "AUD"}

var datePattern = regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b`)

// Query is a validated exchange rate request extracted from free text.
type Query struct {
	Currency string
	Date     string
}

// ParseCommand extracts a currency code and a date token from free text.
// Exactly one date-like substring and exactly one whitelisted currency must
// be present; anything else is a parse failure.
func ParseCommand(text string) (Query, error) {
	dates := datePattern.FindAllString(text, -1)
	switch {
	case len(dates) == 0:
		return Query{}, ErrNoDate
	case len(dates) > 1:
		return Query{}, ErrAmbiguousDate
	}

	var found []string
	for _, code := range Currencies {
		if strings.Contains(text, code) {
			found = append(found, code)
		}
	}
	switch {
	case len(found) == 0:
		return Query{}, ErrNoCurrency
	case len(found) > 1:
		return Query{}, ErrAmbiguousCurrency
	}

	return Query{Currency: found[0], Date: dates[0]}, nil
}
