package editor

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// TabWidth is the number of spaces a Tab inserts. Tab characters are never
// stored in the buffer.
const TabWidth = 4

// Buffer is an immutable sequence of lines. Every editing method returns a
// new Buffer and leaves the receiver untouched, so an older Buffer value is a
// complete snapshot of the text at that point.
//
// A Buffer always holds at least one line. Columns count runes.
type Buffer struct {
	lines []string
}

// NewBuffer returns a buffer holding a copy of lines. An empty input becomes
// a single empty line.
func NewBuffer(lines []string) Buffer {
	if len(lines) == 0 {
		return Buffer{lines: []string{""}}
	}
	return Buffer{lines: slices.Clone(lines)}
}

// LineCount returns the number of lines in the buffer.
func (b Buffer) LineCount() int {
	if len(b.lines) == 0 {
		return 1
	}
	return len(b.lines)
}

// LineLength returns the length of line row in runes.
func (b Buffer) LineLength(row int) int {
	return utf8.RuneCountInString(b.Line(row))
}

// Line returns the text of line row, or "" when row is out of range.
func (b Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// Lines returns a copy of all lines.
func (b Buffer) Lines() []string {
	if len(b.lines) == 0 {
		return []string{""}
	}
	return slices.Clone(b.lines)
}

// String joins the lines with newlines.
func (b Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Equal reports whether both buffers hold the same lines.
func (b Buffer) Equal(other Buffer) bool {
	return slices.Equal(b.Lines(), other.Lines())
}

// Insert splices ch into line row at col.
func (b Buffer) Insert(ch rune, row, col int) Buffer {
	return b.replaceLine(row, spliceAt(b.Line(row), col, string(ch)))
}

// Delete removes the rune at (row, col). Deleting at the end of a line
// removes nothing.
func (b Buffer) Delete(row, col int) Buffer {
	line := b.Line(row)
	i := byteOffset(line, col)
	if col < 0 || i >= len(line) {
		return b
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return b.replaceLine(row, line[:i]+line[i+size:])
}

// SplitLine cuts line row at col. The prefix stays on row and the suffix
// becomes a new line at row+1.
func (b Buffer) SplitLine(row, col int) Buffer {
	if row < 0 || row >= b.LineCount() {
		return b
	}
	line := b.Line(row)
	i := byteOffset(line, col)

	lines := b.Lines()
	lines[row] = line[:i]
	return Buffer{lines: slices.Insert(lines, row+1, line[i:])}
}

// ShiftLineUp appends line row onto line row-1 and removes line row.
// Row 0 has nothing above it and is returned unchanged.
func (b Buffer) ShiftLineUp(row int) Buffer {
	if row < 1 || row >= b.LineCount() {
		return b
	}
	lines := b.Lines()
	lines[row-1] += lines[row]
	return Buffer{lines: slices.Delete(lines, row, row+1)}
}

// InsertTabSpaces inserts TabWidth spaces at (row, col).
func (b Buffer) InsertTabSpaces(row, col int) Buffer {
	return b.replaceLine(row, spliceAt(b.Line(row), col, strings.Repeat(" ", TabWidth)))
}

func (b Buffer) replaceLine(row int, text string) Buffer {
	if row < 0 || row >= b.LineCount() {
		return b
	}
	lines := b.Lines()
	lines[row] = text
	return Buffer{lines: lines}
}

// byteOffset walks s to the start of rune col, stopping at len(s). A byte
// that is not valid UTF-8 counts as one rune and is kept as is, so edits
// never rewrite text they do not touch.
func byteOffset(s string, col int) int {
	i := 0
	for n := 0; n < col && i < len(s); n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

func spliceAt(s string, col int, text string) string {
	i := byteOffset(s, col)
	return s[:i] + text + s[i:]
}
