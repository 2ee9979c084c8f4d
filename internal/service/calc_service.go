// Package service wires the rate tables, calculator, and formatter together
// for the presentation layer.
package service

import (
	"fmt"
	"log/slog"

	"tiptally/internal/calculator"
	"tiptally/internal/format"
	"tiptally/internal/models"
	"tiptally/internal/rates"
)

// CalcService turns raw screen inputs (bill text plus two selection indices)
// into breakdowns and display receipts.
type CalcService struct {
	formatter format.Formatter
}

// NewCalcService creates a new CalcService with the given formatter.
func NewCalcService(f format.Formatter) *CalcService {
	return &CalcService{formatter: f}
}

// Breakdown computes the derived amounts for the given inputs. Bill text is
// parsed leniently (absent or invalid becomes zero). Both indices must come
// from iterating the rate tables.
func (s *CalcService) Breakdown(billText string, tipIndex, provinceIndex int) models.Breakdown {
	bill := calculator.ParseAmount(billText)
	tip := calculator.TipAmount(bill, tipIndex)
	tax := calculator.TaxAmount(bill, provinceIndex)
	total := calculator.TotalAmount(bill, tip, tax)

	slog.Debug("computed breakdown",
		"bill", bill,
		"tip_index", tipIndex,
		"province_index", provinceIndex,
		"total", total,
	)

	return models.Breakdown{
		Bill:     bill,
		TipRate:  rates.TipRates()[tipIndex],
		Province: rates.Provinces()[provinceIndex],
		Tip:      tip,
		Tax:      tax,
		Total:    total,
	}
}

// Receipt formats a breakdown for display, rounding amounts to cents.
func (s *CalcService) Receipt(b models.Breakdown) models.Receipt {
	return models.Receipt{
		Bill:         s.formatter.Currency(b.Bill),
		TipLabel:     s.formatter.Percent(b.TipRate),
		ProvinceCode: b.Province.Code,
		TaxLabel:     s.formatter.Percent(b.Province.Rate),
		Tip:          s.formatter.Currency(calculator.RoundToCents(b.Tip)),
		Tax:          s.formatter.Currency(calculator.RoundToCents(b.Tax)),
		Total:        s.formatter.Currency(calculator.RoundToCents(b.Total)),
	}
}

// Calculate is the Breakdown+Receipt convenience used on every input change.
func (s *CalcService) Calculate(billText string, tipIndex, provinceIndex int) models.Receipt {
	return s.Receipt(s.Breakdown(billText, tipIndex, provinceIndex))
}

// TipOptions returns the tip table formatted for a selection list.
func (s *CalcService) TipOptions() []string {
	tips := rates.TipRates()
	options := make([]string, len(tips))
	for i, r := range tips {
		options[i] = s.formatter.Percent(r)
	}
	return options
}

// ProvinceOptions returns the province table formatted for a selection list,
// e.g. "ON  Ontario (13%)".
func (s *CalcService) ProvinceOptions() []string {
	provs := rates.Provinces()
	options := make([]string, len(provs))
	for i, p := range provs {
		options[i] = fmt.Sprintf("%s  %s (%s)", p.Code, p.Name, s.formatter.Percent(p.Rate))
	}
	return options
}
