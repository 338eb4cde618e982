package editor

// Line is one visible row of a Frame.
type Line struct {
	Row       int // absolute buffer row, used as the row label
	CursorRow bool
	Text      string
}

// Position is a screen cell relative to the top-left of the text area.
type Position struct {
	Row int
	Col int
}

// Frame describes one screen refresh. Render targets clear the screen, draw
// Lines top to bottom, and place the cursor at Cursor when CursorVisible.
type Frame struct {
	Clear         bool
	Lines         []Line
	Cursor        Position
	CursorVisible bool

	// Status data for the reserved bottom row.
	BufferCursor Cursor
	LineCount    int
	UndoDepth    int

	// Final marks the frame emitted by Quit. No frames follow it.
	Final  bool
	Banner string
}
