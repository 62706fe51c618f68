package ui

// Item is one selectable entry.
type Item struct {
	Value string
	Label string
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// List is a single-selection drop-down: a header showing the current item that expands into
// one row per item. Like a focused <select>, it keeps keyboard focus after being clicked until
// a click lands elsewhere, and while focused the arrow keys step through the items.
type List struct {
	X, Y      float32
	Width     float32
	RowHeight float32

	items    []Item
	revision int
	selected int
	open     bool
	focused  bool
}

// NewList returns an empty list with its header at (x, y).
func NewList(x, y, width, rowHeight float32) *List {
	return &List{X: x, Y: y, Width: width, RowHeight: rowHeight, selected: -1}
}

// SetItems replaces the entries and selects value, or the first item when value is absent.
// The list collapses; focus is kept.
func (l *List) SetItems(items []Item, value string) {
	l.items = append(l.items[:0:0], items...)
	l.revision++
	l.open = false
	l.selected = -1
	if len(l.items) > 0 {
		l.selected = 0
	}
	for i, it := range l.items {
		if it.Value == value {
			l.selected = i
			break
		}
	}
}

// Revision counts SetItems calls; zero means the list was never populated.
func (l *List) Revision() int {
	return l.revision
}

// Items returns the entries in display order.
func (l *List) Items() []Item {
	return l.items
}

// Selected returns the selected index, or -1 when the list is empty.
func (l *List) Selected() int {
	return l.selected
}

// Value returns the selected item's value, or "" when the list is empty.
func (l *List) Value() string {
	if l.selected < 0 {
		return ""
	}
	return l.items[l.selected].Value
}

// Open reports whether the rows are shown.
func (l *List) Open() bool {
	return l.open
}

// Focused reports whether the list holds keyboard focus.
func (l *List) Focused() bool {
	return l.focused
}

// Blur drops keyboard focus and collapses the list.
func (l *List) Blur() {
	l.focused = false
	l.open = false
}

// Header is the always-visible box showing the selected label.
func (l *List) Header() Rect {
	return Rect{X: l.X, Y: l.Y, W: l.Width, H: l.RowHeight}
}

// Row is the rectangle of item i when the list is open.
func (l *List) Row(i int) Rect {
	return Rect{X: l.X, Y: l.Y + l.RowHeight*float32(i+1), W: l.Width, H: l.RowHeight}
}

// Hit reports whether (x, y) is over the visible part of the list.
func (l *List) Hit(x, y float32) bool {
	if l.Header().Contains(x, y) {
		return true
	}
	if !l.open {
		return false
	}
	full := Rect{X: l.X, Y: l.Y, W: l.Width, H: l.RowHeight * float32(len(l.items)+1)}
	return full.Contains(x, y)
}

// Click handles a primary click at (x, y). It returns the newly selected value and true only
// when the selection actually changed, matching a DOM change event.
func (l *List) Click(x, y float32) (string, bool) {
	if !l.Hit(x, y) {
		l.Blur()
		return "", false
	}
	l.focused = true
	if l.Header().Contains(x, y) {
		l.open = !l.open && len(l.items) > 0
		return "", false
	}
	for i := range l.items {
		if l.Row(i).Contains(x, y) {
			l.open = false
			return l.choose(i)
		}
	}
	return "", false
}

// Step moves the selection by delta items while the list has focus, clamped to the ends.
func (l *List) Step(delta int) (string, bool) {
	if !l.focused || len(l.items) == 0 {
		return "", false
	}
	i := min(max(l.selected+delta, 0), len(l.items)-1)
	return l.choose(i)
}

func (l *List) choose(i int) (string, bool) {
	if i == l.selected {
		return "", false
	}
	l.selected = i
	return l.items[i].Value, true
}
