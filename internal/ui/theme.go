package ui

import _ "embed"

//go:embed assets/viewer.css
var defaultCSS string

// DefaultStylesheet returns the built-in HUD theme.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic("ui: built-in stylesheet: " + err.Error())
	}
	return sheet
}
