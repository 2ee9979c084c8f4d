// Package rates holds the compiled-in tip and provincial sales tax tables.
//
// Both tables are constants: there are no mutation operations, and the
// accessor functions return copies so callers cannot alter the data. Tax
// rates are combined GST/PST/HST fractions (e.g. 0.13 for Ontario's 13% HST).
package rates

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Province pairs a two-letter province/territory code with its combined
// sales tax rate. Keeping code and rate in one record makes the alignment
// between the two structural rather than a parallel-array convention.
type Province struct {
	// Code is the two-letter postal abbreviation (e.g. "ON").
	Code string

	// Name is the full province or territory name.
	Name string

	// Rate is the combined sales tax as a fraction (0.13 = 13%).
	Rate decimal.Decimal
}

var tipRates = []decimal.Decimal{
	decimal.Zero,
	decimal.RequireFromString("0.05"),
	decimal.RequireFromString("0.10"),
	decimal.RequireFromString("0.15"),
	decimal.RequireFromString("0.20"),
	decimal.RequireFromString("0.25"),
}

// Ordered by code.
var provinces = []Province{
	{Code: "AB", Name: "Alberta", Rate: decimal.RequireFromString("0.05")},
	{Code: "BC", Name: "British Columbia", Rate: decimal.RequireFromString("0.12")},
	{Code: "MB", Name: "Manitoba", Rate: decimal.RequireFromString("0.12")},
	{Code: "NB", Name: "New Brunswick", Rate: decimal.RequireFromString("0.15")},
	{Code: "NL", Name: "Newfoundland and Labrador", Rate: decimal.RequireFromString("0.15")},
	{Code: "NS", Name: "Nova Scotia", Rate: decimal.RequireFromString("0.15")},
	{Code: "NT", Name: "Northwest Territories", Rate: decimal.RequireFromString("0.05")},
	{Code: "NU", Name: "Nunavut", Rate: decimal.RequireFromString("0.05")},
	{Code: "ON", Name: "Ontario", Rate: decimal.RequireFromString("0.13")},
	{Code: "PE", Name: "Prince Edward Island", Rate: decimal.RequireFromString("0.15")},
	{Code: "QC", Name: "Quebec", Rate: decimal.RequireFromString("0.14975")},
	{Code: "SK", Name: "Saskatchewan", Rate: decimal.RequireFromString("0.11")},
	{Code: "YT", Name: "Yukon", Rate: decimal.RequireFromString("0.05")},
}

// TipRates returns the ordered tip rate table, from no tip to 25%.
func TipRates() []decimal.Decimal {
	return slices.Clone(tipRates)
}

// Provinces returns the province table ordered by code.
func Provinces() []Province {
	return slices.Clone(provinces)
}

// ProvinceByCode looks up a province by its two-letter code.
// The second return value is false if the code is unknown.
func ProvinceByCode(code string) (Province, bool) {
	for _, p := range provinces {
		if p.Code == code {
			return p, true
		}
	}
	return Province{}, false
}

// ProvinceIndex returns the table index for the given code, or -1 if the
// code is unknown.
func ProvinceIndex(code string) int {
	for i, p := range provinces {
		if p.Code == code {
			return i
		}
	}
	return -1
}
