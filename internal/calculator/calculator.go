// Package calculator computes tip, tax, and total amounts for a bill.
//
// All functions are pure and total for valid inputs: a missing or
// unparseable bill amount is treated as zero, and nothing here performs I/O.
// Amounts are shopspring decimals so currency math stays exact; rounding to
// cents happens only at display boundaries via RoundToCents.
package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"tiptally/internal/rates"
)

// TipAmount returns bill multiplied by the tip rate at tipIndex.
//
// Precondition: 0 <= tipIndex < len(rates.TipRates()). Indices come from
// iterating the tip table; anything else is a programming error and panics.
func TipAmount(bill decimal.Decimal, tipIndex int) decimal.Decimal {
	return bill.Mul(rates.TipRates()[tipIndex])
}

// TaxAmount returns bill multiplied by the tax rate of the province at
// provinceIndex. Same index precondition as TipAmount.
func TaxAmount(bill decimal.Decimal, provinceIndex int) decimal.Decimal {
	return bill.Mul(rates.Provinces()[provinceIndex].Rate)
}

// TotalAmount returns bill + tip + tax.
func TotalAmount(bill, tip, tax decimal.Decimal) decimal.Decimal {
	return bill.Add(tip).Add(tax)
}

// ParseAmount parses user-entered bill text leniently. Empty, whitespace,
// unparseable, or negative input yields zero; a leading currency symbol and
// thousands separators are tolerated. The zero substitution matches the
// screen behavior: an absent bill simply computes as a zero bill.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// RoundToCents rounds an amount half-up to two fractional digits.
func RoundToCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
