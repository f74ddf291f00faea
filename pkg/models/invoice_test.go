package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceIndexDisplay(t *testing.T) {
	index, err := NewInvoiceIndex(2024, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-01", index.String())
	assert.Equal(t, "2024/01.html", index.Filename())

	index, err = NewInvoiceIndex(987, 42)
	require.NoError(t, err)
	assert.Equal(t, "0987-42", index.String())
	assert.Equal(t, "0987/42.html", index.Filename())
}

func TestNewInvoiceIndexRange(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		sequence int
	}{
		{"year zero", 0, 1},
		{"negative year", -2024, 1},
		{"year too large", 10000, 1},
		{"sequence zero", 2024, 0},
		{"negative sequence", 2024, -1},
		{"sequence beyond two digits", 2024, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInvoiceIndex(tt.year, tt.sequence)
			assert.ErrorIs(t, err, ErrInvalidIndex)
		})
	}
}

func TestParseInvoiceIndex(t *testing.T) {
	index, err := ParseInvoiceIndex("2024", "7")
	require.NoError(t, err)
	assert.Equal(t, InvoiceIndex{Year: 2024, Sequence: 7}, index)

	for _, args := range [][2]string{
		{"twenty24", "1"},
		{"2024", "one"},
		{"", "1"},
		{"2024", ""},
		{"2024.0", "1"},
	} {
		_, err := ParseInvoiceIndex(args[0], args[1])
		assert.ErrorIs(t, err, ErrInvalidIndex, "args %q", args)
	}
}

func TestInvoiceTotal(t *testing.T) {
	attachment := "receipts/3.pdf"
	invoice := &Invoice{
		Items: []LineItem{
			{Description: "Consulting", Amount: Money(12345)},
			{Description: "Hosting", Amount: Money(500), Attachment: &attachment},
			{Description: "Credit", Amount: Money(-345)},
		},
	}
	assert.Equal(t, Money(12500), invoice.Total())

	// Total is order-independent.
	reversed := &Invoice{Items: []LineItem{invoice.Items[2], invoice.Items[1], invoice.Items[0]}}
	assert.Equal(t, invoice.Total(), reversed.Total())

	empty := &Invoice{}
	assert.Equal(t, Money(0), empty.Total())
}
