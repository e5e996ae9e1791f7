package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsFromAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"12.345", 1235},
		{"12.344", 1234},
		{"0.01", 1},
		{"0.005", 1},
		{"0.004", 0},
		{"100", 10000},
		{" 42.10 ", 4210},
		{"1.005", 101},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := CentsFromAmount(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCentsFromAmount_RejectsNonNumbers(t *testing.T) {
	_, err := CentsFromAmount("twelve")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFormatCents_RoundTrip(t *testing.T) {
	cents, err := CentsFromAmount("12.345")
	require.NoError(t, err)

	assert.Equal(t, "12.35", FormatCents(cents))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "1500.50", FormatCents(150050))
}

func TestInvoiceItem_Totals(t *testing.T) {
	item := &InvoiceItem{Quantity: 3, UnitPriceInCents: 1999}

	assert.Equal(t, int64(5997), item.TotalInCents())
	assert.Equal(t, "19.99", item.UnitPrice().StringFixed(2))
	assert.Equal(t, "59.97", item.Total().StringFixed(2))
}

func TestParseInvoiceStatus(t *testing.T) {
	for _, status := range InvoiceStatuses {
		parsed, ok := ParseInvoiceStatus(string(status))
		assert.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	_, ok := ParseInvoiceStatus("cancelled")
	assert.False(t, ok)

	_, ok = ParseInvoiceStatus("PAID")
	assert.False(t, ok)
}
