package editor

// Snapshot is the state captured before a mutating command.
type Snapshot struct {
	Buffer Buffer
	Cursor Cursor
}

// UndoStack holds snapshots, most recent last. It has no capacity limit.
type UndoStack struct {
	snapshots []Snapshot
}

// Push records a snapshot. Buffers are immutable, so the snapshot shares
// their line storage instead of copying it.
func (u *UndoStack) Push(b Buffer, c Cursor) {
	u.snapshots = append(u.snapshots, Snapshot{Buffer: b, Cursor: c})
}

// Pop removes and returns the most recent snapshot. ok is false when the
// stack is empty.
func (u *UndoStack) Pop() (s Snapshot, ok bool) {
	if len(u.snapshots) == 0 {
		return Snapshot{}, false
	}
	last := len(u.snapshots) - 1
	s = u.snapshots[last]
	u.snapshots[last] = Snapshot{}
	u.snapshots = u.snapshots[:last]
	return s, true
}

// Len returns the number of snapshots held.
func (u *UndoStack) Len() int {
	return len(u.snapshots)
}
