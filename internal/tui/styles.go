package tui

import "github.com/gdamore/tcell/v2"

// Styles holds the color scheme for the picker.
type Styles struct {
	BgColor     tcell.Color
	FgColor     tcell.Color
	BorderColor tcell.Color

	TableHeaderBg   tcell.Color
	TableHeaderFg   tcell.Color
	TableSelectedBg tcell.Color
	TableSelectedFg tcell.Color

	TitleFg tcell.Color
	CountFg tcell.Color
}

// DefaultStyles returns the default dark color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		BgColor:     tcell.ColorBlack,
		FgColor:     tcell.ColorWhite,
		BorderColor: tcell.ColorDarkCyan,

		TableHeaderBg:   tcell.ColorDarkCyan,
		TableHeaderFg:   tcell.ColorBlack,
		TableSelectedBg: tcell.ColorDarkCyan,
		TableSelectedFg: tcell.ColorWhite,

		TitleFg: tcell.ColorAqua,
		CountFg: tcell.ColorGray,
	}
}
