// Package format renders amounts and rates as display strings.
//
// The Formatter interface is deliberately narrow so the numeric core and the
// service layer can be tested without a live locale dependency. The default
// implementation uses golang.org/x/text for locale-correct grouping and
// percent rendering.
package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fallback placeholders, returned only when the underlying formatting
// facility cannot represent the value. For well-formed amounts this never
// happens.
const (
	CurrencyFallback = "--"
	PercentFallback  = "-"
)

// Formatter renders monetary amounts and fractional rates for display.
type Formatter interface {
	// Currency renders an amount with the currency symbol, locale grouping,
	// and exactly two fractional digits, e.g. "$1,234.50".
	Currency(amount decimal.Decimal) string

	// Percent renders a fraction as a percentage, e.g. 0.15 -> "15%".
	Percent(fraction decimal.Decimal) string
}

type localeFormatter struct {
	printer *message.Printer
	symbol  string
}

// New returns a Formatter for the given BCP 47 locale (e.g. "en-CA") and
// currency symbol.
func New(locale, symbol string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &localeFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

func (f *localeFormatter) Currency(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return CurrencyFallback
	}
	return f.symbol + f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

func (f *localeFormatter) Percent(fraction decimal.Decimal) string {
	v, _ := fraction.Float64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return PercentFallback
	}
	// Three fractional digits cover Quebec's 14.975% while whole-number
	// rates still render bare ("15%").
	return f.printer.Sprint(number.Percent(v, number.MaxFractionDigits(3)))
}
