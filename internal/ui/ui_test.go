package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment { not a rule } */
.header { background: #fff; color: #102030; padding: 8px }
body { color: #000 }
#main { width: 240; border: #11223344; }
.header { padding: 2 }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	st := sheet.Resolve("header", "")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, st.Background)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, st.Color)
	assert.Equal(t, int32(2), st.Padding, "later rule wins")

	main := sheet.Resolve("", "main")
	assert.Equal(t, int32(240), main.Width)
	assert.True(t, main.HasBorder)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0x44}, main.Border)
}

func TestParseCSSErrors(t *testing.T) {
	_, err := ParseCSS(".a { color: #fff")
	assert.Error(t, err)
	_, err = ParseCSS(".a { color: #fff } stray")
	assert.Error(t, err)
}

func TestResolveNilSheet(t *testing.T) {
	var s *Stylesheet
	assert.Equal(t, DefaultStyle(), s.Resolve("x", "y"))
}

func TestParseHexColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#abc":      {0xaa, 0xbb, 0xcc, 0xff},
		"#eeeeee":   {0xee, 0xee, 0xee, 0xff},
		"#ffff0099": {0xff, 0xff, 0x00, 0x99},
	}
	for in, want := range cases {
		got, ok := ParseHexColor(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "fff", "#ff", "#gggggg"} {
		_, ok := ParseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestParsePx(t *testing.T) {
	n, ok := ParsePx(" 12px ")
	assert.True(t, ok)
	assert.Equal(t, int32(12), n)
	_, ok = ParsePx("12em")
	assert.False(t, ok)
}

func TestDefaultStylesheet(t *testing.T) {
	sheet := DefaultStylesheet()
	row := sheet.Resolve("list-row-selected", "")
	assert.Equal(t, int32(18), row.FontSize)
	assert.True(t, row.HasBorder)
	status := sheet.Resolve("status", "")
	assert.Equal(t, uint8(0x88), status.Background.A)

	overlay := sheet.Resolve("overlay", "")
	assert.Equal(t, color.RGBA{0x1a, 0x7f, 0x1a, 0xff}, overlay.Color)
	assert.Equal(t, int32(20), overlay.FontSize)
	assert.Equal(t, int32(12), overlay.Padding)
}

func testList() *List {
	l := NewList(10, 10, 200, 30)
	l.SetItems([]Item{{"A1", "Tools"}, {"B2", "B2"}, {"C3", "Paint"}}, "")
	return l
}

func TestListSetItems(t *testing.T) {
	l := testList()
	assert.Equal(t, 1, l.Revision())
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, "A1", l.Value())

	l.SetItems(l.Items(), "C3")
	assert.Equal(t, "C3", l.Value())

	l.SetItems(nil, "C3")
	assert.Equal(t, -1, l.Selected())
	assert.Equal(t, "", l.Value())
}

func TestListClickFlow(t *testing.T) {
	l := testList()

	// Open via the header: focus, no change.
	v, changed := l.Click(20, 20)
	assert.False(t, changed)
	assert.Empty(t, v)
	assert.True(t, l.Open())
	assert.True(t, l.Focused())

	// Third row (C3) sits below the header and two rows.
	v, changed = l.Click(20, 10+30*3+5)
	assert.True(t, changed)
	assert.Equal(t, "C3", v)
	assert.False(t, l.Open())
	assert.True(t, l.Focused(), "a chosen select keeps focus")

	// Re-choosing the same row is not a change.
	l.Click(20, 20)
	_, changed = l.Click(20, 10+30*3+5)
	assert.False(t, changed)

	// Clicking elsewhere blurs.
	_, changed = l.Click(500, 500)
	assert.False(t, changed)
	assert.False(t, l.Focused())
}

func TestListHitOnlyWhenOpen(t *testing.T) {
	l := testList()
	assert.True(t, l.Hit(20, 20))
	assert.False(t, l.Hit(20, 55), "rows are hidden while closed")
	l.Click(20, 20)
	assert.True(t, l.Hit(20, 55))
}

func TestListStep(t *testing.T) {
	l := testList()
	_, changed := l.Step(1)
	assert.False(t, changed, "no focus, no keyboard navigation")

	l.Click(20, 20)
	v, changed := l.Step(1)
	assert.True(t, changed)
	assert.Equal(t, "B2", v)

	l.Step(5)
	assert.Equal(t, "C3", l.Value())
	_, changed = l.Step(1)
	assert.False(t, changed, "clamped at the end")
}

func TestListEmptyHeaderDoesNotOpen(t *testing.T) {
	l := NewList(0, 0, 100, 20)
	l.Click(5, 5)
	assert.False(t, l.Open())
	assert.True(t, l.Focused())
}
