package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRejectsImpossibleDates(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"month zero", 2024, 0, 15},
		{"month thirteen", 2024, 13, 1},
		{"day zero", 2024, 3, 0},
		{"day thirty-two", 2024, 1, 32},
		{"february 30", 2024, 2, 30},
		{"february 29 in a common year", 2023, 2, 29},
		{"april 31", 2024, 4, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			assert.Error(t, err)
		})
	}
}

func TestNewDateAcceptsValidDates(t *testing.T) {
	d, err := NewDate(2024, 2, 29) // leap year
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	d, err = NewDate(2024, 3, 15)
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 3, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		y    int
		m    int
		d    int
		days int
		want string
	}{
		{"within month", 2024, 3, 1, 10, "2024-03-11"},
		{"crosses month boundary", 2024, 3, 15, 30, "2024-04-14"},
		{"crosses year boundary", 2024, 12, 31, 1, "2025-01-01"},
		{"crosses leap day", 2024, 2, 28, 2, "2024-03-01"},
		{"negative offset", 2024, 1, 1, -1, "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.y, tt.m, tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.AddDays(tt.days).String())
		})
	}
}

func TestDateAddDaysRoundTrip(t *testing.T) {
	d, err := NewDate(2024, 3, 15)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 28, 30, 365, 366, 1000, -1, -400} {
		assert.Equal(t, d, d.AddDays(n).AddDays(-n), "round trip with n=%d", n)
	}
}

func TestDateMonthName(t *testing.T) {
	names := map[int]string{1: "January", 3: "March", 12: "December"}
	for month, want := range names {
		d, err := NewDate(2024, month, 1)
		require.NoError(t, err)
		assert.Equal(t, want, d.MonthName())
	}
}
