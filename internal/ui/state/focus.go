package state

// Focus tracks which of a fixed number of widgets has keyboard focus.
type Focus struct {
	Index int
	Count int
}

// NewFocus returns focus on the first of count widgets.
func NewFocus(count int) Focus {
	if count < 0 {
		count = 0
	}
	return Focus{Count: count}
}

// Next moves focus forward, wrapping past the last widget.
func (f *Focus) Next() bool {
	return f.wrapBy(1)
}

// Prev moves focus backward, wrapping past the first widget.
func (f *Focus) Prev() bool {
	return f.wrapBy(-1)
}

// MoveBy moves focus by delta, clamped to the widget range.
func (f *Focus) MoveBy(delta int) bool {
	if f.Count == 0 {
		f.Index = 0
		return false
	}
	old := f.Index
	f.Index += delta
	if f.Index < 0 {
		f.Index = 0
	}
	if f.Index >= f.Count {
		f.Index = f.Count - 1
	}
	return f.Index != old
}

// Set focuses the widget at i. Out-of-range values are ignored.
func (f *Focus) Set(i int) bool {
	if i < 0 || i >= f.Count {
		return false
	}
	old := f.Index
	f.Index = i
	return old != i
}

func (f *Focus) wrapBy(delta int) bool {
	if f.Count == 0 {
		f.Index = 0
		return false
	}
	old := f.Index
	f.Index = ((f.Index+delta)%f.Count + f.Count) % f.Count
	return f.Index != old
}
