package models

import (
	"github.com/shopspring/decimal"

	"tiptally/internal/rates"
)

// Breakdown holds the derived amounts for one calculation at full precision.
// It is recomputed from the current inputs on every change.
type Breakdown struct {
	// Bill is the parsed bill amount (zero when the input was absent or
	// unparseable).
	Bill decimal.Decimal

	// TipRate is the selected tip rate as a fraction.
	TipRate decimal.Decimal

	// Province is the selected province record, including its tax rate.
	Province rates.Province

	// Tip is bill * tip rate, unrounded.
	Tip decimal.Decimal

	// Tax is bill * province tax rate, unrounded.
	Tax decimal.Decimal

	// Total is bill + tip + tax, unrounded.
	Total decimal.Decimal
}

// Receipt is the display projection of a Breakdown. All amounts are
// formatted currency strings rounded to cents; rate labels are formatted
// percentages.
type Receipt struct {
	// Bill is the formatted bill amount, e.g. "$18.94".
	Bill string

	// TipLabel is the selected tip rate, e.g. "15%".
	TipLabel string

	// ProvinceCode is the selected province code, e.g. "ON".
	ProvinceCode string

	// TaxLabel is the province tax rate, e.g. "13%".
	TaxLabel string

	// Tip, Tax, and Total are the formatted derived amounts.
	Tip   string
	Tax   string
	Total string
}
