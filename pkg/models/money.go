package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount in integer euro cents. All arithmetic stays in cent
// space; conversion to a decimal major-unit value happens only at the
// accounting export boundary via Decimal.
type Money int64

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return -m
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// SumMoney adds up a sequence of amounts.
func SumMoney(amounts []Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}

// Decimal returns the amount in major units (cents / 100) as an exact
// decimal. This is the single sanctioned exit from cent space; callers that
// need a float for serialization take InexactFloat64 on the result.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String renders the amount as <sign>€<major>.<cents>, using U+2212 MINUS
// SIGN rather than a hyphen for negative amounts. Money(0) carries no sign.
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "−"
		cents = -cents
	}
	return fmt.Sprintf("%s€%d.%02d", sign, cents/100, cents%100)
}
