package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	table := RateTable{
		{Currency: "EUR", BuyRate: 43.2, SellRate: 44.1},
		{Currency: "USD", BuyRate: 41.0, SellRate: 41.6},
	}

	entry, err := Extract(table, "USD")
	require.NoError(t, err)
	assert.Equal(t, 41.0, entry.BuyRate)
	assert.Equal(t, 41.6, entry.SellRate)
}

func TestExtractEmptyTable(t *testing.T) {
	_, err := Extract(RateTable{}, "USD")
	require.ErrorIs(t, err, ErrEmptyRateTable)
}

func TestExtractMissingCurrency(t *testing.T) {
	table := RateTable{{Currency: "EUR", BuyRate: 43.2, SellRate: 44.1}}

	_, err := Extract(table, "USD")
	require.ErrorIs(t, err, ErrExtraction)
}

func TestExtractDuplicateCurrency(t *testing.T) {
	table := RateTable{
		{Currency: "USD", BuyRate: 41.0, SellRate: 41.6},
		{Currency: "USD", BuyRate: 40.9, SellRate: 41.5},
	}

	_, err := Extract(table, "USD")
	require.ErrorIs(t, err, ErrExtraction)
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name  string
		entry RateEntry
		want  string
	}{
		{
			name:  "integral rates keep one decimal",
			entry: RateEntry{Currency: "USD", BuyRate: 41.0, SellRate: 41.6},
			want:  "Currency: USD, buy: 41.0, sale: 41.6",
		},
		{
			name:  "fractional rates unchanged",
			entry: RateEntry{Currency: "EUR", BuyRate: 43.25, SellRate: 44.175},
			want:  "Currency: EUR, buy: 43.25, sale: 44.175",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.entry))
		})
	}
}
