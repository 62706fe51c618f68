// Package hud draws the 2D overlay: the box selection list and the status line.
package hud

import (
	"image/color"
	"os"

	"box-viewer/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// statusLines is how many recent log lines the status panel shows.
const statusLines = 3

// HUD draws ui widgets with raylib using styles resolved from a stylesheet.
// Styles are resolved once; the sheet never changes at runtime.
type HUD struct {
	header      ui.Style
	row         ui.Style
	rowSelected ui.Style
	status      ui.Style
	statusError ui.Style
	font        rl.Font // zero texture ID = raylib default font
}

// New resolves the element styles from sheet.
func New(sheet *ui.Stylesheet) *HUD {
	return &HUD{
		header:      sheet.Resolve("list-header", ""),
		row:         sheet.Resolve("list-row", ""),
		rowSelected: sheet.Resolve("list-row-selected", ""),
		status:      sheet.Resolve("status", ""),
		statusError: sheet.Resolve("status-error", ""),
	}
}

// LoadFont loads a TTF font for all HUD text. Call after the window exists.
// On failure the default font stays in use.
func (h *HUD) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if h.font.Texture.ID != 0 {
		rl.UnloadFont(h.font)
	}
	h.font = f
	return nil
}

// Unload releases the font, if one was loaded.
func (h *HUD) Unload() {
	if h.font.Texture.ID != 0 {
		rl.UnloadFont(h.font)
	}
}

// DrawList draws the list header and, when open, one row per item.
func (h *HUD) DrawList(l *ui.List) {
	label := "Loading boxes..."
	items := l.Items()
	if sel := l.Selected(); sel >= 0 {
		label = items[sel].Label
	} else if l.Revision() > 0 {
		label = "No boxes"
	}
	h.box(l.Header(), label, h.header)
	h.arrow(l.Header(), l.Open(), h.header)
	if !l.Open() {
		return
	}
	for i, it := range items {
		st := h.row
		if i == l.Selected() {
			st = h.rowSelected
		}
		h.box(l.Row(i), it.Label, st)
	}
}

// DrawStatus draws the most recent log lines in a panel along the bottom edge.
// The panel switches to the error style while failed is true.
func (h *HUD) DrawStatus(lines []string, failed bool) {
	if len(lines) > statusLines {
		lines = lines[len(lines)-statusLines:]
	}
	if len(lines) == 0 {
		return
	}
	st := h.status
	if failed {
		st = h.statusError
	}
	lineH := float32(st.FontSize + 4)
	height := lineH*float32(len(lines)) + float32(2*st.Padding)
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	r := ui.Rect{X: 0, Y: screenH - height, W: screenW, H: height}
	h.fill(r, st)
	for i, line := range lines {
		h.text(line, r.X+float32(st.Padding), r.Y+float32(st.Padding)+lineH*float32(i), st)
	}
}

// box draws background, 1px border and padded text inside r.
func (h *HUD) box(r ui.Rect, text string, st ui.Style) {
	h.fill(r, st)
	if text != "" {
		h.text(text, r.X+float32(st.Padding), r.Y+float32(st.Padding), st)
	}
}

// arrow draws the open/closed indicator at the right end of the header.
func (h *HUD) arrow(r ui.Rect, open bool, st ui.Style) {
	cx := r.X + r.W - r.H/2
	cy := r.Y + r.H/2
	s := r.H / 6
	c := rlColor(st.Color)
	if open {
		rl.DrawTriangle(rl.NewVector2(cx, cy-s), rl.NewVector2(cx-s, cy+s), rl.NewVector2(cx+s, cy+s), c)
		return
	}
	rl.DrawTriangle(rl.NewVector2(cx-s, cy-s), rl.NewVector2(cx, cy+s), rl.NewVector2(cx+s, cy-s), c)
}

func (h *HUD) fill(r ui.Rect, st ui.Style) {
	rec := rl.NewRectangle(r.X, r.Y, r.W, r.H)
	if st.Background.A > 0 {
		rl.DrawRectangleRec(rec, rlColor(st.Background))
	}
	if st.HasBorder && r.W > 0 && r.H > 0 {
		rl.DrawRectangleLinesEx(rec, 1, rlColor(st.Border))
	}
}

func (h *HUD) text(s string, x, y float32, st ui.Style) {
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, s, rl.NewVector2(x, y), float32(st.FontSize), 1, rlColor(st.Color))
		return
	}
	rl.DrawText(s, int32(x), int32(y), st.FontSize, rlColor(st.Color))
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
