package editor

// Cursor is an edit position. Col may equal the line length, which places the
// cursor just after the last character.
type Cursor struct {
	Row int
	Col int
}

// Left moves one column left.
func (c Cursor) Left(b Buffer, v Viewport) Cursor {
	c.Col--
	return c.Clamp(b, v)
}

// Right moves one column right.
func (c Cursor) Right(b Buffer, v Viewport) Cursor {
	c.Col++
	return c.Clamp(b, v)
}

// Up moves one row up.
func (c Cursor) Up(b Buffer, v Viewport) Cursor {
	c.Row--
	return c.Clamp(b, v)
}

// Down moves one row down.
func (c Cursor) Down(b Buffer, v Viewport) Cursor {
	c.Row++
	return c.Clamp(b, v)
}

// Clamp pulls the cursor back inside the buffer and above the bottom of the
// viewport. The row stays below both the line count and v.MaxRow; the column
// stays within [0, line length].
func (c Cursor) Clamp(b Buffer, v Viewport) Cursor {
	c.Row = clamp(c.Row, 0, min(b.LineCount(), v.MaxRow)-1)
	c.Col = clamp(c.Col, 0, b.LineLength(c.Row))
	return c
}

// MoveToCol places the cursor on column col of the current row.
func (c Cursor) MoveToCol(col int) Cursor {
	c.Col = col
	return c
}

// MoveToEnd places the cursor after the last character of its row.
func (c Cursor) MoveToEnd(b Buffer) Cursor {
	c.Col = b.LineLength(c.Row)
	return c
}

// clamp returns the median of lo, value and hi. A limit below lo collapses
// to lo.
func clamp(value, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(value, hi))
}
