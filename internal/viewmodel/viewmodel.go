// Package viewmodel owns the mutable screen state: the bill text and the two
// selection indices. Each setter recomputes the cached receipt, so the screen
// only ever reads derived values, never computes them.
package viewmodel

import (
	"tiptally/internal/models"
	"tiptally/internal/rates"
	"tiptally/internal/service"
)

// ViewModel holds the three inputs as plain fields and keeps the derived
// receipt in sync through explicit setters. Not safe for concurrent use; the
// screen drives it from a single event loop.
type ViewModel struct {
	svc *service.CalcService

	billText      string
	tipIndex      int
	provinceIndex int

	receipt models.Receipt
}

// New creates a ViewModel with an empty bill, no tip, and the given default
// province selected. An unknown code falls back to the first table entry.
func New(svc *service.CalcService, defaultProvince string) *ViewModel {
	idx := rates.ProvinceIndex(defaultProvince)
	if idx < 0 {
		idx = 0
	}
	vm := &ViewModel{svc: svc, provinceIndex: idx}
	vm.recompute()
	return vm
}

// SetBillText updates the bill input and recomputes the receipt.
func (vm *ViewModel) SetBillText(text string) {
	vm.billText = text
	vm.recompute()
}

// SetTipIndex selects a tip rate by table index and recomputes the receipt.
func (vm *ViewModel) SetTipIndex(index int) {
	vm.tipIndex = index
	vm.recompute()
}

// SetProvinceIndex selects a province by table index and recomputes the
// receipt.
func (vm *ViewModel) SetProvinceIndex(index int) {
	vm.provinceIndex = index
	vm.recompute()
}

// BillText returns the current bill input as entered.
func (vm *ViewModel) BillText() string { return vm.billText }

// TipIndex returns the current tip selection index.
func (vm *ViewModel) TipIndex() int { return vm.tipIndex }

// ProvinceIndex returns the current province selection index.
func (vm *ViewModel) ProvinceIndex() int { return vm.provinceIndex }

// Receipt returns the receipt for the current inputs.
func (vm *ViewModel) Receipt() models.Receipt { return vm.receipt }

// TipOptions returns the formatted tip choices for the selection list.
func (vm *ViewModel) TipOptions() []string { return vm.svc.TipOptions() }

// ProvinceOptions returns the formatted province choices for the selection
// list.
func (vm *ViewModel) ProvinceOptions() []string { return vm.svc.ProvinceOptions() }

func (vm *ViewModel) recompute() {
	vm.receipt = vm.svc.Calculate(vm.billText, vm.tipIndex, vm.provinceIndex)
}
