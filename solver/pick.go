package solver

import "github.com/cyberfrontiers/jump/board"

// PickDepthFirst removes the most recently added path from candidates and
// returns it with the remainder. Stack discipline: among equally new entries
// the newest wins. candidates must be non-empty.
func PickDepthFirst(candidates []board.Path) (board.Path, []board.Path) {
	last := len(candidates) - 1

	return candidates[last], candidates[:last]
}

// PickBreadthFirst removes the least recently added path from candidates and
// returns it with the remainder. Queue discipline. candidates must be
// non-empty.
func PickBreadthFirst(candidates []board.Path) (board.Path, []board.Path) {
	return candidates[0], candidates[1:]
}
