// Package tui renders the single calculator screen: a bill amount field, tip
// and province selectors, and a live totals pane. All arithmetic lives
// behind the view model; this package only wires widgets to its setters.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tiptally/internal/viewmodel"
)

// Screen is the single calculator screen.
type Screen struct {
	app    *tview.Application
	vm     *viewmodel.ViewModel
	form   *tview.Form
	totals *tview.TextView
}

// New builds the screen around the given view model. The selectors only
// offer entries from the rate tables, so every index reaching the view model
// is valid by construction.
func New(vm *viewmodel.ViewModel) *Screen {
	SetupTheme()

	s := &Screen{
		app: tview.NewApplication(),
		vm:  vm,
	}

	s.totals = tview.NewTextView().
		SetDynamicColors(true)
	s.totals.SetBorder(true).SetTitle(" Totals ")

	s.form = tview.NewForm().
		AddInputField("Bill amount", "", 14, nil, func(text string) {
			vm.SetBillText(text)
			s.renderTotals()
		}).
		AddDropDown("Tip", vm.TipOptions(), vm.TipIndex(), func(option string, index int) {
			vm.SetTipIndex(index)
			s.renderTotals()
		}).
		AddDropDown("Province", vm.ProvinceOptions(), vm.ProvinceIndex(), func(option string, index int) {
			vm.SetProvinceIndex(index)
			s.renderTotals()
		})
	s.form.SetBorder(true).SetTitle(" tiptally ")

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("Tip & Tax Calculator")
	footer := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("Tab to move between fields | Esc or Ctrl-C to quit")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(s.form, 11, 0, true).
		AddItem(s.totals, 7, 0, false).
		AddItem(footer, 1, 0, false)

	s.app.SetRoot(layout, true).SetFocus(s.form)

	s.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			s.app.Stop()
			return nil
		}
		return event
	})

	s.renderTotals()
	return s
}

// Run starts the event loop and blocks until the user quits.
func (s *Screen) Run() error {
	return s.app.Run()
}

// renderTotals redraws the totals pane from the current receipt. This is the
// explicit recompute-and-redraw step: every widget change funnels through a
// view model setter and then here.
func (s *Screen) renderTotals() {
	r := s.vm.Receipt()
	s.totals.Clear()
	fmt.Fprintf(s.totals, " [::b]Tip[-:-:-]   (%s)\t%s\n", r.TipLabel, r.Tip)
	fmt.Fprintf(s.totals, " [::b]Tax[-:-:-]   (%s %s)\t%s\n", r.ProvinceCode, r.TaxLabel, r.Tax)
	fmt.Fprintf(s.totals, " [::b]Total[-:-:-]\t%s\n", r.Total)
}
