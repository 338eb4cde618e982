package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"snapedit/internal/editor"
)

// decodeKey maps a key event to an editing command. ok is false for keys
// that have no binding.
func decodeKey(ev *tcell.EventKey) (cmd editor.Command, ok bool) {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return editor.Command{Kind: editor.Quit}, true
	case tcell.KeyCtrlZ:
		return editor.Command{Kind: editor.Undo}, true
	case tcell.KeyLeft:
		return editor.Command{Kind: editor.MoveLeft}, true
	case tcell.KeyRight:
		return editor.Command{Kind: editor.MoveRight}, true
	case tcell.KeyUp:
		return editor.Command{Kind: editor.MoveUp}, true
	case tcell.KeyDown:
		return editor.Command{Kind: editor.MoveDown}, true
	case tcell.KeyPgUp:
		return editor.Command{Kind: editor.ScrollUp}, true
	case tcell.KeyPgDn:
		return editor.Command{Kind: editor.ScrollDown}, true
	case tcell.KeyTab:
		return editor.Command{Kind: editor.Tab}, true
	case tcell.KeyEnter:
		return editor.Command{Kind: editor.Enter}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Command{Kind: editor.Backspace}, true
	case tcell.KeyRune:
		// Regular character input
		if r := ev.Rune(); r >= 32 {
			return editor.Insert(r), true
		}
	}
	return editor.Command{}, false
}

// textRows is the number of screen rows left for text once the bottom row is
// reserved for the status line.
func textRows(screen tcell.Screen) int {
	_, height := screen.Size()
	return rowsForHeight(height)
}

// rowsForHeight reserves the bottom row unless it is the only one.
func rowsForHeight(height int) int {
	if height > 1 {
		return height - 1
	}
	return 1
}

// run feeds screen events to ed until it quits or the screen is finalized.
func run(screen tcell.Screen, ed *editor.Editor, target *screenTarget) error {
	// Initial draw
	target.Draw(ed.Resize(textRows(screen)))

	for {
		ev := screen.PollEvent()

		switch ev := ev.(type) {
		case nil:
			// Fini was called
			return nil

		case *tcell.EventKey:
			cmd, ok := decodeKey(ev)
			if !ok {
				continue
			}
			frame := ed.Apply(cmd)
			target.Draw(frame)
			if frame.Final {
				return nil
			}

		case *tcell.EventResize:
			screen.Sync()
			log.Printf("resize: %d text rows", textRows(screen))
			target.Draw(ed.Resize(textRows(screen)))
		}
	}
}
