package editor

import "log"

// State is the controller's position in its two-state machine.
type State int

const (
	Editing State = iota
	Quitting
)

func (s State) String() string {
	if s == Quitting {
		return "Quit"
	}
	return "Editing"
}

// DefaultBanner is shown on the final frame when Options.Banner is empty.
const DefaultBanner = "QUIT"

// Options configure a new Editor.
type Options struct {
	// Rows is the number of screen rows available for text, excluding the
	// status row.
	Rows   int
	Banner string
	Logger *log.Logger
}

// Editor owns the buffer, cursor, viewport and undo history of one session.
// It is not safe for concurrent use; a single input loop drives it.
type Editor struct {
	buffer   Buffer
	cursor   Cursor
	viewport Viewport
	undo     UndoStack
	state    State
	banner   string
	logger   *log.Logger
}

// New returns an editor over lines with the cursor at the origin.
func New(lines []string, opts Options) *Editor {
	banner := opts.Banner
	if banner == "" {
		banner = DefaultBanner
	}
	e := &Editor{
		buffer:   NewBuffer(lines),
		viewport: NewViewport(opts.Rows),
		banner:   banner,
		logger:   opts.Logger,
	}
	e.logf("editor: %d lines, %d rows", e.buffer.LineCount(), e.viewport.Rows())
	return e
}

func (e *Editor) Buffer() Buffer { return e.buffer }

func (e *Editor) Cursor() Cursor { return e.cursor }

func (e *Editor) Viewport() Viewport { return e.viewport }

func (e *Editor) State() State { return e.state }

// UndoDepth returns the number of snapshots available to Undo.
func (e *Editor) UndoDepth() int { return e.undo.Len() }

// Apply runs one command and returns the frame to draw. Once the editor has
// quit, further commands are ignored and the final frame is returned again.
func (e *Editor) Apply(cmd Command) Frame {
	if e.state == Quitting {
		return e.Frame()
	}
	if cmd.Mutates() && !e.atOrigin(cmd) {
		e.snapshot()
	}

	switch cmd.Kind {
	case Quit:
		e.state = Quitting
		e.logf("editor: quit with %d undo snapshots", e.undo.Len())
		return e.Frame()

	case Undo:
		s, ok := e.undo.Pop()
		if !ok {
			break
		}
		e.buffer, e.cursor = s.Buffer, s.Cursor
		e.follow()

	case MoveLeft:
		e.cursor = e.cursor.Left(e.buffer, e.viewport)
		e.follow()
	case MoveRight:
		e.cursor = e.cursor.Right(e.buffer, e.viewport)
		e.follow()
	case MoveUp:
		e.moveUp()
		e.follow()
	case MoveDown:
		e.moveDown()
		e.follow()

	case ScrollUp:
		e.viewport = e.viewport.ScrollUp()
		e.cursor = e.cursor.Clamp(e.buffer, e.viewport)
	case ScrollDown:
		e.viewport = e.viewport.ScrollDown(e.buffer)
		e.cursor = e.cursor.Clamp(e.buffer, e.viewport)

	case Tab:
		e.buffer = e.buffer.InsertTabSpaces(e.cursor.Row, e.cursor.Col)
		for i := 0; i < TabWidth; i++ {
			e.cursor = e.cursor.Right(e.buffer, e.viewport)
		}
		e.follow()

	case Enter:
		e.buffer = e.buffer.SplitLine(e.cursor.Row, e.cursor.Col)
		e.moveDown()
		e.cursor = e.cursor.MoveToCol(0)
		e.follow()

	case Backspace:
		e.backspace()

	case InsertChar:
		e.buffer = e.buffer.Insert(cmd.Char, e.cursor.Row, e.cursor.Col)
		e.cursor = e.cursor.Right(e.buffer, e.viewport)
		e.follow()

	default:
		e.logf("editor: unknown command %v", cmd)
	}
	return e.Frame()
}

// Resize changes the number of text rows and re-clamps the cursor.
func (e *Editor) Resize(rows int) Frame {
	e.viewport = e.viewport.Resize(rows)
	e.follow()
	e.logf("editor: resized to %d rows", e.viewport.Rows())
	return e.Frame()
}

// Frame describes the current screen.
func (e *Editor) Frame() Frame {
	f := Frame{
		Clear:         true,
		Cursor:        Position{Row: e.cursor.Row - e.viewport.MinRow, Col: e.cursor.Col},
		CursorVisible: e.viewport.Contains(e.cursor.Row),
		BufferCursor:  e.cursor,
		LineCount:     e.buffer.LineCount(),
		UndoDepth:     e.undo.Len(),
	}
	end := min(e.viewport.MaxRow, e.buffer.LineCount())
	for row := e.viewport.MinRow; row < end; row++ {
		f.Lines = append(f.Lines, Line{
			Row:       row,
			CursorRow: row == e.cursor.Row,
			Text:      e.buffer.Line(row),
		})
	}
	if e.state == Quitting {
		f.Final = true
		f.Banner = e.banner
		f.CursorVisible = false
	}
	return f
}

func (e *Editor) backspace() {
	row, col := e.cursor.Row, e.cursor.Col
	switch {
	case col > 0:
		e.buffer = e.buffer.Delete(row, col-1)
		e.cursor = e.cursor.Left(e.buffer, e.viewport)
	case row > 0:
		// the join point is the end of the line above, before it grows
		e.cursor = e.cursor.Up(e.buffer, e.viewport).MoveToEnd(e.buffer)
		e.buffer = e.buffer.ShiftLineUp(row)
	default:
		return
	}
	e.follow()
}

// atOrigin reports a Backspace with nothing before the cursor. It edits
// nothing and records no snapshot.
func (e *Editor) atOrigin(cmd Command) bool {
	return cmd.Kind == Backspace && e.cursor == (Cursor{})
}

// moveDown scrolls first when the move would reach the last visible row, so
// the cursor never leaves the viewport.
func (e *Editor) moveDown() {
	if e.cursor.Row+1 >= e.viewport.MaxRow-1 {
		e.viewport = e.viewport.ScrollDown(e.buffer)
	}
	e.cursor = e.cursor.Down(e.buffer, e.viewport)
}

func (e *Editor) moveUp() {
	if e.cursor.Row-1 <= e.viewport.MinRow {
		e.viewport = e.viewport.ScrollUp()
	}
	e.cursor = e.cursor.Up(e.buffer, e.viewport)
}

// follow scrolls one row at a time until the cursor row is visible, then
// clamps the cursor. It stops early when the viewport cannot move further.
func (e *Editor) follow() {
	for e.cursor.Row < e.viewport.MinRow && e.viewport.MinRow > 0 {
		e.viewport = e.viewport.ScrollUp()
	}
	for e.cursor.Row >= e.viewport.MaxRow {
		next := e.viewport.ScrollDown(e.buffer)
		if next == e.viewport {
			break
		}
		e.viewport = next
	}
	e.cursor = e.cursor.Clamp(e.buffer, e.viewport)
}

// snapshot must run before the buffer changes; undo restores exactly this
// state.
func (e *Editor) snapshot() {
	e.undo.Push(e.buffer, e.cursor)
}

func (e *Editor) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
