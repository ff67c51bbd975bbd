// Package solver implements the exhaustive tree search over peg-jump move
// sequences: a work-list executive with pluggable traversal order
// (depth-first or breadth-first), pluggable goal predicates (exact final
// layout or final peg count with deadlock), a sound pruning bound, and
// single- or multiple-solution scope.
//
// What:
//
//   - Solve(b, start, goal, opts...) explores the move tree rooted at start
//     and returns the solution Paths in discovery order.
//   - Goal is a two-case tagged union: Position(finish) matches an exact
//     final State; Count(n) matches a final peg count with no further legal
//     moves.
//   - PickDepthFirst / PickBreadthFirst are the two frontier selection
//     policies (LIFO stack and FIFO queue over the candidate list).
//
// Why:
//
//   - Peg count decreases by exactly one per step, so any partial path whose
//     peg count has fallen below the goal's cardinality can never recover:
//     pruning on min-pegs is exact, not heuristic.
//   - The executive is iterative (explicit work list), so deep boards never
//     exhaust the call stack.
//
// Complexity:
//
//   - Worst case the full move tree: O(branching^depth) time; the frontier
//     holds one Path per open branch.
//
// Options:
//
//   - WithContext(ctx)  cancels a long-running search between iterations.
//   - WithMethod(m)     DepthFirst (default) or BreadthFirst.
//   - WithScope(s)      Single (default: first solution) or Multiple (all).
//
// Errors:
//
//   - ErrBoardNil, ErrEmptyStart, ErrBadGoal for invalid input.
//   - ErrOptionViolation for invalid options.
//   - context.Canceled / context.DeadlineExceeded when cancelled.
package solver
