// Package board defines the core value types shared by the move generator
// and the search executive: State, Move, Step, and Path.
package board

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for board construction and lookup.
var (
	// ErrBadDimensions indicates a non-positive node or direction count.
	ErrBadDimensions = errors.New("board: node and direction counts must be positive")

	// ErrNodeOutOfRange indicates a transition destination outside [0, nodes).
	ErrNodeOutOfRange = errors.New("board: node index out of range")

	// ErrDirectionOutOfRange indicates a direction index outside [0, directions).
	ErrDirectionOutOfRange = errors.New("board: direction index out of range")

	// ErrInvalidTransition is returned by Transit when no edge exists for
	// the requested (node, direction) pair. Inside the solver this signals a
	// topology/search inconsistency rather than a recoverable condition.
	ErrInvalidTransition = errors.New("board: no transition for node/direction pair")
)

// State is the set of nodes currently occupied by a peg.
//
// State has value semantics: With, Without and Clone return fresh sets and
// never mutate the receiver. Search-tree branches therefore never share
// mutable storage.
type State map[int]struct{}

// NewState builds a State occupied at exactly the given nodes.
// Duplicates collapse; order is irrelevant.
func NewState(nodes ...int) State {
	s := make(State, len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}

	return s
}

// Contains reports whether node n holds a peg.
func (s State) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of pegs on the board.
func (s State) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s State) Clone() State {
	c := make(State, len(s))
	for n := range s {
		c[n] = struct{}{}
	}

	return c
}

// With returns a copy of s with the given nodes occupied.
func (s State) With(nodes ...int) State {
	c := s.Clone()
	for _, n := range nodes {
		c[n] = struct{}{}
	}

	return c
}

// Without returns a copy of s with the given nodes vacated.
func (s State) Without(nodes ...int) State {
	c := s.Clone()
	for _, n := range nodes {
		delete(c, n)
	}

	return c
}

// Equal reports set equality: same pegs, order-independent.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if _, ok := other[n]; !ok {
			return false
		}
	}

	return true
}

// Nodes returns the occupied nodes in ascending order.
// Sorted output keeps move generation and String deterministic.
func (s State) Nodes() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// String renders the state as a sorted node list, e.g. "{0 3 7}".
func (s State) String() string {
	nodes := s.Nodes()
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprintf("%d", n)
	}

	return "{" + strings.Join(parts, " ") + "}"
}

// Move identifies a single jump: the peg at Move leaps over the peg at Jump
// and lands on the empty node Land, removing Move and Jump and adding Land.
type Move struct {
	Move int // node the moving peg starts from
	Jump int // node of the peg being jumped (and removed)
	Land int // empty node the moving peg lands on
}

// String renders the move as "move>jump>land".
func (m Move) String() string {
	return fmt.Sprintf("%d>%d>%d", m.Move, m.Jump, m.Land)
}

// Step is one edge of the search tree: a Move together with the State it was
// made from and the State it produces. Both states are owned by the Step and
// must not be mutated.
type Step struct {
	Start State
	Move  Move
	Final State
}

// Valid reports whether the step obeys the jump invariant: move and jump
// occupied before, land vacant before; move and jump vacant after, land
// occupied after.
func (st Step) Valid() bool {
	startValid := st.Start.Contains(st.Move.Move) &&
		st.Start.Contains(st.Move.Jump) &&
		!st.Start.Contains(st.Move.Land)
	finalValid := !st.Final.Contains(st.Move.Move) &&
		!st.Final.Contains(st.Move.Jump) &&
		st.Final.Contains(st.Move.Land)

	return startValid && finalValid
}

// Path is an ordered sequence of Steps; each Step's Start equals the previous
// Step's Final. The empty Path conceptually sits at the configured start
// state. Paths are the unit of frontier management and of returned solutions.
type Path []Step

// Len returns the number of steps taken.
func (p Path) Len() int { return len(p) }

// Final returns the state reached by the last step, or nil for an empty path.
func (p Path) Final() State {
	if len(p) == 0 {
		return nil
	}

	return p[len(p)-1].Final
}

// Extend returns a new Path of p followed by step. The receiver is copied,
// never shared: sibling extensions of one parent must not alias.
func (p Path) Extend(step Step) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = step

	return next
}

// String renders the move sequence, e.g. "1>2>3, 0>3>2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, st := range p {
		parts[i] = st.Move.String()
	}

	return strings.Join(parts, ", ")
}
