package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newTestFormatter(t *testing.T) Formatter {
	t.Helper()
	f, err := New("en-CA", "$")
	if err != nil {
		t.Fatalf("New(en-CA, $) failed: %v", err)
	}
	return f
}

func TestCurrency(t *testing.T) {
	f := newTestFormatter(t)

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "two digits always", amount: "1.5", want: "$1.50"},
		{name: "zero", amount: "0", want: "$0.00"},
		{name: "grouping", amount: "1234.5", want: "$1,234.50"},
		{name: "rounds half up", amount: "0.947", want: "$0.95"},
		{name: "total rounds to cents", amount: "19.887", want: "$19.89"},
		{name: "large amount", amount: "1234567.891", want: "$1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Currency(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("Currency(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	f := newTestFormatter(t)

	tests := []struct {
		name     string
		fraction string
		want     string
	}{
		{name: "zero", fraction: "0", want: "0%"},
		{name: "five", fraction: "0.05", want: "5%"},
		{name: "fifteen", fraction: "0.15", want: "15%"},
		{name: "twenty five", fraction: "0.25", want: "25%"},
		{name: "ontario", fraction: "0.13", want: "13%"},
		{name: "quebec fractional", fraction: "0.14975", want: "14.975%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Percent(decimal.RequireFromString(tt.fraction))
			if got != tt.want {
				t.Errorf("Percent(%s) = %q, want %q", tt.fraction, got, tt.want)
			}
		})
	}
}

func TestNewRejectsBadLocale(t *testing.T) {
	if _, err := New("not a locale!", "$"); err == nil {
		t.Error("New with an invalid locale tag succeeded, want error")
	}
}

func TestCustomSymbol(t *testing.T) {
	f, err := New("en-CA", "CA$")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got, want := f.Currency(decimal.RequireFromString("1.5")), "CA$1.50"; got != want {
		t.Errorf("Currency(1.5) = %q, want %q", got, want)
	}
}
