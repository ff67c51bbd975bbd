// Package board models the substrate of a peg-jump puzzle: an immutable
// directed topology of node×direction transitions, the peg placement State,
// and the Step/Path values produced while searching for solutions.
//
// What:
//
//   - Board wraps a sparse transition table (node → direction → node) with
//     range validation and deterministic, direction-sorted adjacency views.
//   - State is a set of occupied nodes with value semantics: every
//     transformation returns a fresh State, so branches of a search tree
//     never alias one another.
//   - Moves(state) enumerates every legal single jump from a State, each as
//     a Step carrying its start and final State.
//   - Read/ReadFile build a Board from the CSV transition table format used
//     by puzzle definitions (one row per node, one column per direction).
//
// Why:
//
//   - Solitaire-style jump puzzles on arbitrary graphs reduce to exactly
//     this: a fixed topology plus a shrinking set of pegs.
//   - Keeping move generation relative to a concrete State avoids
//     precomputing the (exponential) global state space.
//
// Complexity:
//
//   - Transit, Direction: O(1) / O(d) with d = directions per node.
//   - Moves: O(|state| × d) time, O(moves) memory.
//
// Errors:
//
//   - ErrBadDimensions: non-positive node or direction count.
//   - ErrNodeOutOfRange: a transition references a node outside [0, nodes).
//   - ErrDirectionOutOfRange: a direction index outside [0, directions).
//   - ErrInvalidTransition: Transit queried for a (node, direction) pair
//     with no edge.
package board
