package editor

import "fmt"

// Kind identifies an editing command.
type Kind int

const (
	Quit Kind = iota
	Undo
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	ScrollUp
	ScrollDown
	Tab
	Enter
	Backspace
	InsertChar
)

var kindNames = [...]string{
	Quit:       "Quit",
	Undo:       "Undo",
	MoveLeft:   "MoveLeft",
	MoveRight:  "MoveRight",
	MoveUp:     "MoveUp",
	MoveDown:   "MoveDown",
	ScrollUp:   "ScrollUp",
	ScrollDown: "ScrollDown",
	Tab:        "Tab",
	Enter:      "Enter",
	Backspace:  "Backspace",
	InsertChar: "InsertChar",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Command is one decoded keystroke. Char is only meaningful for InsertChar.
type Command struct {
	Kind Kind
	Char rune
}

// Insert returns the command that types ch.
func Insert(ch rune) Command {
	return Command{Kind: InsertChar, Char: ch}
}

// Mutates reports whether the command changes the buffer and therefore
// records an undo snapshot first.
func (c Command) Mutates() bool {
	switch c.Kind {
	case Tab, Enter, Backspace, InsertChar:
		return true
	}
	return false
}

func (c Command) String() string {
	if c.Kind == InsertChar {
		return fmt.Sprintf("InsertChar(%q)", c.Char)
	}
	return c.Kind.String()
}
