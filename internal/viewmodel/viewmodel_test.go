package viewmodel

import (
	"testing"

	"tiptally/internal/format"
	"tiptally/internal/rates"
	"tiptally/internal/service"
)

func newTestViewModel(t *testing.T, defaultProvince string) *ViewModel {
	t.Helper()
	f, err := format.New("en-CA", "$")
	if err != nil {
		t.Fatalf("format.New failed: %v", err)
	}
	return New(service.NewCalcService(f), defaultProvince)
}

func TestNewDefaults(t *testing.T) {
	vm := newTestViewModel(t, "ON")

	if vm.BillText() != "" {
		t.Errorf("initial bill text = %q, want empty", vm.BillText())
	}
	if vm.TipIndex() != 0 {
		t.Errorf("initial tip index = %d, want 0", vm.TipIndex())
	}
	if want := rates.ProvinceIndex("ON"); vm.ProvinceIndex() != want {
		t.Errorf("initial province index = %d, want %d", vm.ProvinceIndex(), want)
	}

	// Empty bill renders as zero amounts, not an error state.
	r := vm.Receipt()
	if r.Tip != "$0.00" || r.Tax != "$0.00" || r.Total != "$0.00" {
		t.Errorf("initial receipt = %+v, want all $0.00 amounts", r)
	}
}

func TestNewUnknownProvinceFallsBack(t *testing.T) {
	vm := newTestViewModel(t, "XX")
	if vm.ProvinceIndex() != 0 {
		t.Errorf("province index = %d, want 0 for unknown default", vm.ProvinceIndex())
	}
}

func TestSettersRecompute(t *testing.T) {
	vm := newTestViewModel(t, "AB")

	vm.SetBillText("18.94")
	if got, want := vm.Receipt().Tax, "$0.95"; got != want {
		t.Errorf("after SetBillText: tax = %q, want %q", got, want)
	}
	if got, want := vm.Receipt().Total, "$19.89"; got != want {
		t.Errorf("after SetBillText: total = %q, want %q", got, want)
	}

	vm.SetBillText("100.00")
	vm.SetTipIndex(4)
	vm.SetProvinceIndex(rates.ProvinceIndex("ON"))

	r := vm.Receipt()
	if r.Tip != "$20.00" {
		t.Errorf("tip = %q, want $20.00", r.Tip)
	}
	if r.Tax != "$13.00" {
		t.Errorf("tax = %q, want $13.00", r.Tax)
	}
	if r.Total != "$133.00" {
		t.Errorf("total = %q, want $133.00", r.Total)
	}
	if r.TipLabel != "20%" {
		t.Errorf("tip label = %q, want 20%%", r.TipLabel)
	}
	if r.ProvinceCode != "ON" {
		t.Errorf("province code = %q, want ON", r.ProvinceCode)
	}
}

// Clearing the bill must behave identically to a zero bill.
func TestClearedBillEqualsZeroBill(t *testing.T) {
	vm := newTestViewModel(t, "ON")
	vm.SetTipIndex(3)

	vm.SetBillText("0")
	zeroReceipt := vm.Receipt()

	vm.SetBillText("42.00")
	vm.SetBillText("")
	if got := vm.Receipt(); got != zeroReceipt {
		t.Errorf("cleared bill receipt = %+v, want %+v", got, zeroReceipt)
	}
}

func TestOptionsMatchTables(t *testing.T) {
	vm := newTestViewModel(t, "ON")

	if got, want := len(vm.TipOptions()), len(rates.TipRates()); got != want {
		t.Errorf("len(TipOptions()) = %d, want %d", got, want)
	}
	if got, want := len(vm.ProvinceOptions()), len(rates.Provinces()); got != want {
		t.Errorf("len(ProvinceOptions()) = %d, want %d", got, want)
	}
}
