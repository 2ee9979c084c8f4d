package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// SetupTheme configures a dark slate color theme for the screen.
func SetupTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    tcell.NewRGBColor(24, 26, 33),    // base
		ContrastBackgroundColor:     tcell.NewRGBColor(38, 42, 54),    // surface
		MoreContrastBackgroundColor: tcell.NewRGBColor(52, 58, 74),    // overlay
		BorderColor:                 tcell.NewRGBColor(94, 102, 124),  // muted
		TitleColor:                  tcell.NewRGBColor(247, 199, 133), // amber
		GraphicsColor:               tcell.NewRGBColor(137, 196, 244), // sky
		PrimaryTextColor:            tcell.NewRGBColor(222, 226, 236), // text
		SecondaryTextColor:          tcell.NewRGBColor(148, 156, 176), // subtle
		TertiaryTextColor:           tcell.NewRGBColor(94, 102, 124),  // muted
		InverseTextColor:            tcell.NewRGBColor(24, 26, 33),    // base
		ContrastSecondaryTextColor:  tcell.NewRGBColor(222, 226, 236), // text
	}
}
