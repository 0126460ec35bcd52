package scroll

// FocusMove is a keyboard request to move the focused row.
type FocusMove int

const (
	FocusNone FocusMove = iota
	FocusPrev
	FocusNext
	FocusPageUp
	FocusPageDown
	FocusFirst
	FocusLast
)

// Focus tracks the keyboard-focused row of a List. Focused is -1 while no
// row has focus.
type Focus struct {
	Focused int
	list    *List
}

func NewFocus(l *List) *Focus {
	return &Focus{Focused: -1, list: l}
}

// Move applies m and scrolls the list so the focused row is visible. It
// reports whether the focus changed.
func (f *Focus) Move(m FocusMove) bool {
	n := f.list.Rows()
	if n == 0 || m == FocusNone {
		return false
	}
	old := f.Focused
	if f.Focused < 0 {
		// The first key press focuses the top visible row.
		first, _ := f.list.VisibleRows()
		f.Focused = first
	} else {
		page := f.pageRows()
		switch m {
		case FocusPrev:
			f.Focused--
		case FocusNext:
			f.Focused++
		case FocusPageUp:
			f.Focused -= page
		case FocusPageDown:
			f.Focused += page
		case FocusFirst:
			f.Focused = 0
		case FocusLast:
			f.Focused = n - 1
		}
	}
	f.Focused = min(max(f.Focused, 0), n-1)
	f.list.EnsureRowVisible(f.Focused)
	return f.Focused != old
}

// Clear drops the focus, as after a pointer drag.
func (f *Focus) Clear() { f.Focused = -1 }

// Clamp keeps the focus on an existing row after the row count changes.
func (f *Focus) Clamp() {
	if f.Focused >= f.list.Rows() {
		f.Focused = f.list.Rows() - 1
	}
}

func (f *Focus) pageRows() int {
	if f.list.RowHeight() <= 0 {
		return 1
	}
	return max(int(f.list.Viewport()/f.list.RowHeight())-1, 1)
}
