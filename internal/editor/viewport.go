package editor

// Viewport is the window of buffer rows mapped onto the screen: rows in
// [MinRow, MaxRow). MaxRow may run past the end of a short buffer; scrolling
// down stops once MaxRow reaches the line count.
type Viewport struct {
	MinRow int
	MaxRow int
}

// NewViewport returns a viewport showing rows [0, rows). At least one row is
// always visible.
func NewViewport(rows int) Viewport {
	if rows < 1 {
		rows = 1
	}
	return Viewport{MinRow: 0, MaxRow: rows}
}

// Rows returns the number of screen rows the viewport covers.
func (v Viewport) Rows() int {
	return v.MaxRow - v.MinRow
}

// Contains reports whether row is visible.
func (v Viewport) Contains(row int) bool {
	return row >= v.MinRow && row < v.MaxRow
}

// ScrollDown shifts the window one row down if rows remain below it.
func (v Viewport) ScrollDown(b Buffer) Viewport {
	if v.MaxRow < b.LineCount() {
		v.MinRow++
		v.MaxRow++
	}
	return v
}

// ScrollUp shifts the window one row up unless it is already at the top.
func (v Viewport) ScrollUp() Viewport {
	if v.MinRow > 0 {
		v.MinRow--
		v.MaxRow--
	}
	return v
}

// Resize keeps the top row and changes the height.
func (v Viewport) Resize(rows int) Viewport {
	if rows < 1 {
		rows = 1
	}
	v.MaxRow = v.MinRow + rows
	return v
}
