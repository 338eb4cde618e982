package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"snapedit/internal/editor"
)

var (
	labelStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorLabelStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle      = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)
	bannerStyle      = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
)

// screenTarget draws editor frames on a tcell screen. The bottom row is
// reserved for the status line and the quit banner when the screen has more
// than one row.
type screenTarget struct {
	screen    tcell.Screen
	filename  string
	rowLabels bool
	statusBar bool
}

func newScreenTarget(screen tcell.Screen, filename string, cfg Config) *screenTarget {
	return &screenTarget{
		screen:    screen,
		filename:  filename,
		rowLabels: cfg.RowLabels,
		statusBar: cfg.StatusBar,
	}
}

// Draw renders one frame and shows it.
func (t *screenTarget) Draw(f editor.Frame) {
	if f.Clear {
		t.screen.Clear()
	}
	width, height := t.screen.Size()
	rows := rowsForHeight(height)

	gutter := t.gutterWidth(f)
	for y, line := range f.Lines {
		if y >= rows {
			break
		}
		if gutter > 0 {
			style := labelStyle
			if line.CursorRow {
				style = cursorLabelStyle
			}
			t.drawText(0, y, fmt.Sprintf("%*d ", gutter-1, line.Row), style)
		}
		t.drawText(gutter, y, line.Text, tcell.StyleDefault)
	}

	switch {
	case rows >= height:
		// no row left for the status line
	case f.Final:
		t.fillRow(height-1, bannerStyle)
		t.drawText(0, height-1, " "+f.Banner, bannerStyle)
	case t.statusBar:
		t.drawStatusBar(f)
	}

	// Show cursor if it's visible on screen
	x, y := t.cursorCell(f, gutter)
	if f.CursorVisible && !f.Final && y >= 0 && y < rows && x < width {
		t.screen.ShowCursor(x, y)
	} else {
		t.screen.HideCursor()
	}

	t.screen.Show()
}

// gutterWidth is the width of the row label column including its trailing
// space, sized for the largest visible label.
func (t *screenTarget) gutterWidth(f editor.Frame) int {
	if !t.rowLabels || len(f.Lines) == 0 {
		return 0
	}
	last := f.Lines[len(f.Lines)-1].Row
	return len(strconv.Itoa(last)) + 1
}

// cursorCell converts the frame's rune column into a screen cell.
func (t *screenTarget) cursorCell(f editor.Frame, gutter int) (x, y int) {
	y = f.Cursor.Row
	if y < 0 || y >= len(f.Lines) {
		return gutter, y
	}
	runes := []rune(f.Lines[y].Text)
	x = gutter
	for i := 0; i < f.Cursor.Col && i < len(runes); i++ {
		x += displayWidthRune(runes[i])
	}
	return x, y
}

func (t *screenTarget) drawStatusBar(f editor.Frame) {
	_, height := t.screen.Size()
	t.fillRow(height-1, statusStyle)

	name := "[No Name]"
	if t.filename != "" {
		name = filepath.Base(t.filename)
	}
	status := fmt.Sprintf(" %s | Ln %d/%d, Col %d | Undo: %d",
		name, f.BufferCursor.Row+1, f.LineCount, f.BufferCursor.Col+1, f.UndoDepth)
	t.drawText(0, height-1, status, statusStyle)
}

func (t *screenTarget) fillRow(y int, style tcell.Style) {
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawText draws text from column x, clipped at the screen edge.
func (t *screenTarget) drawText(x, y int, text string, style tcell.Style) {
	width, _ := t.screen.Size()
	col := x
	for _, r := range text {
		w := displayWidthRune(r)
		if col+w > width {
			break
		}
		if r < ' ' {
			r = ' '
		}
		t.screen.SetContent(col, y, r, nil, style)
		col += w
	}
}

// displayWidthRune returns the display width of a single rune. Control
// characters take one cell and are drawn as blanks.
func displayWidthRune(r rune) int {
	if r < ' ' {
		return 1
	}
	return runewidth.RuneWidth(r)
}
