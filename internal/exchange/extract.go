package exchange

import (
	"fmt"
	"strconv"
	"strings"
)

// Extract finds the single entry for the requested currency. The upstream is
// expected to list each currency once; zero or multiple matches are treated
// as extraction failures rather than trusted.
func Extract(table RateTable, currency string) (RateEntry, error) {
	if len(table) == 0 {
		return RateEntry{}, ErrEmptyRateTable
	}

	var matches []RateEntry
	for _, entry := range table {
		if entry.Currency == currency {
			matches = append(matches, entry)
		}
	}
	if len(matches) != 1 {
		return RateEntry{}, fmt.Errorf("%w: %s (%d entries)", ErrExtraction, currency, len(matches))
	}
	return matches[0], nil
}

// FormatResult renders an entry as the broadcast line, e.g.
// "Currency: USD, buy: 41.0, sale: 41.6".
func FormatResult(entry RateEntry) string {
	return fmt.Sprintf("Currency: %s, buy: %s, sale: %s",
		entry.Currency, formatRate(entry.BuyRate), formatRate(entry.SellRate))
}

// formatRate trims trailing zeros but always keeps a decimal point.
func formatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
