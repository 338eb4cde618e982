package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNewBufferEmptyInput(t *testing.T) {
	for _, lines := range [][]string{nil, {}} {
		b := NewBuffer(lines)
		assert.Equal(t, 1, b.LineCount())
		assert.Equal(t, []string{""}, b.Lines())
	}

	var zero Buffer
	assert.Equal(t, 1, zero.LineCount())
	assert.Equal(t, "", zero.Line(0))
}

func TestNewBufferCopiesInput(t *testing.T) {
	lines := []string{"one", "two"}
	b := NewBuffer(lines)
	lines[0] = "changed"
	assert.Equal(t, "one", b.Line(0))
}

func TestBufferEditsLeaveReceiverUntouched(t *testing.T) {
	orig := NewBuffer([]string{"hello", "world"})

	edits := map[string]Buffer{
		"insert": orig.Insert('X', 0, 2),
		"delete": orig.Delete(1, 0),
		"split":  orig.SplitLine(0, 3),
		"join":   orig.ShiftLineUp(1),
		"tab":    orig.InsertTabSpaces(1, 5),
	}
	for name, edited := range edits {
		assert.False(t, edited.Equal(orig), name)
	}
	assert.Equal(t, []string{"hello", "world"}, orig.Lines())
}

func TestBufferInsert(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		row   int
		col   int
		ch    rune
		want  []string
	}{
		{"start", []string{"abc"}, 0, 0, 'X', []string{"Xabc"}},
		{"middle", []string{"abc"}, 0, 1, 'X', []string{"aXbc"}},
		{"end", []string{"abc"}, 0, 3, 'X', []string{"abcX"}},
		{"empty line", []string{""}, 0, 0, 'X', []string{"X"}},
		{"second row", []string{"a", "b"}, 1, 1, '!', []string{"a", "b!"}},
		{"multibyte", []string{"héllo"}, 0, 2, 'ü', []string{"héüllo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBuffer(tt.lines).Insert(tt.ch, tt.row, tt.col)
			assert.Equal(t, tt.want, got.Lines())
		})
	}
}

func TestBufferDelete(t *testing.T) {
	b := NewBuffer([]string{"abc"})
	assert.Equal(t, []string{"bc"}, b.Delete(0, 0).Lines())
	assert.Equal(t, []string{"ac"}, b.Delete(0, 1).Lines())
	assert.Equal(t, []string{"ab"}, b.Delete(0, 2).Lines())

	// at end of line nothing is removed
	assert.Equal(t, []string{"abc"}, b.Delete(0, 3).Lines())
	assert.Equal(t, []string{""}, NewBuffer(nil).Delete(0, 0).Lines())
}

func TestBufferSplitLine(t *testing.T) {
	b := NewBuffer([]string{"ab", "cd"})

	assert.Equal(t, []string{"ab", "", "cd"}, b.SplitLine(0, 2).Lines())
	assert.Equal(t, []string{"", "ab", "cd"}, b.SplitLine(0, 0).Lines())
	assert.Equal(t, []string{"a", "b", "cd"}, b.SplitLine(0, 1).Lines())
	assert.Equal(t, []string{"ab", "c", "d"}, b.SplitLine(1, 1).Lines())
}

func TestBufferShiftLineUp(t *testing.T) {
	b := NewBuffer([]string{"ab", "cd", "ef"})

	assert.Equal(t, []string{"abcd", "ef"}, b.ShiftLineUp(1).Lines())
	assert.Equal(t, []string{"ab", "cdef"}, b.ShiftLineUp(2).Lines())
	assert.Equal(t, b.Lines(), b.ShiftLineUp(0).Lines(), "row 0 has nothing to join onto")
	assert.Equal(t, []string{""}, NewBuffer([]string{"", ""}).ShiftLineUp(1).Lines())
}

func TestBufferInsertTabSpaces(t *testing.T) {
	b := NewBuffer([]string{"ab"}).InsertTabSpaces(0, 1)
	assert.Equal(t, []string{"a    b"}, b.Lines())
	assert.Equal(t, 6, b.LineLength(0))
	assert.NotContains(t, b.String(), "\t")
}

func TestBufferLineLengthCountsRunes(t *testing.T) {
	b := NewBuffer([]string{"日本語", ""})
	assert.Equal(t, 3, b.LineLength(0))
	assert.Equal(t, 0, b.LineLength(1))
	assert.Equal(t, 0, b.LineLength(7))
}

func TestBufferKeepsInvalidUTF8(t *testing.T) {
	b := NewBuffer([]string{"caf\xe9"})
	assert.Equal(t, 4, b.LineLength(0))

	assert.Equal(t, []string{"caf\xe9"}, b.Insert('a', 0, 0).Delete(0, 0).Lines())
	assert.Equal(t, []string{"!caf\xe9"}, b.Insert('!', 0, 0).Lines())
	assert.Equal(t, []string{"caf"}, b.Delete(0, 3).Lines())
	assert.Equal(t, []string{"ca", "f\xe9"}, b.SplitLine(0, 2).Lines())
	assert.Equal(t, []string{"caf\xe9"}, b.SplitLine(0, 2).ShiftLineUp(1).Lines())
}

func TestByteOffset(t *testing.T) {
	assert.Equal(t, 0, byteOffset("héllo", 0))
	assert.Equal(t, 3, byteOffset("héllo", 2))
	assert.Equal(t, 6, byteOffset("héllo", 9))
	assert.Equal(t, 0, byteOffset("héllo", -1))
	assert.Equal(t, 2, byteOffset("\xff\xfeok", 2))
}

func linesGen() *rapid.Generator[[]string] {
	return rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9 ]{0,12}`), 1, 6)
}

// rawLinesGen mixes multibyte runes with bytes that are not valid UTF-8.
func rawLinesGen() *rapid.Generator[[]string] {
	piece := rapid.SampledFrom([]string{"a", "Z", " ", "é", "日", "\xe9", "\xff", "\x97", "\xe6\x97"})
	line := rapid.Custom(func(t *rapid.T) string {
		return strings.Join(rapid.SliceOfN(piece, 0, 10).Draw(t, "pieces"), "")
	})
	return rapid.SliceOfN(line, 1, 6)
}

func TestPropertySplitJoinRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(rawLinesGen().Draw(t, "lines"))
		row := rapid.IntRange(0, b.LineCount()-1).Draw(t, "row")
		col := rapid.IntRange(0, b.LineLength(row)).Draw(t, "col")

		split := b.SplitLine(row, col)
		if split.LineCount() != b.LineCount()+1 {
			t.Fatalf("split produced %d lines, want %d", split.LineCount(), b.LineCount()+1)
		}
		joined := split.ShiftLineUp(row + 1)
		if !joined.Equal(b) {
			t.Fatalf("round trip gave %q, want %q", joined.Lines(), b.Lines())
		}
	})
}

func TestPropertyInsertDeleteInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(rawLinesGen().Draw(t, "lines"))
		row := rapid.IntRange(0, b.LineCount()-1).Draw(t, "row")
		col := rapid.IntRange(0, b.LineLength(row)).Draw(t, "col")
		ch := rapid.RuneFrom([]rune("abcXYZ!é ")).Draw(t, "ch")

		got := b.Insert(ch, row, col).Delete(row, col)
		if !got.Equal(b) {
			t.Fatalf("insert/delete gave %q, want %q", got.Lines(), b.Lines())
		}
	})
}
