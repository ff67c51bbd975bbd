// Package config loads and validates a complete puzzle definition: the
// board topology and display layout (referenced as CSV files), the starting
// peg placement, the goal (an exact finish layout and/or a final peg count),
// and the search method and scope.
//
// Definitions are JSON or YAML (chosen by file extension). File references
// inside a definition resolve relative to the definition's own directory, so
// a puzzle and its board/layout tables can travel together.
//
// Every malformed input is rejected here, before a search runs: duplicate or
// out-of-range peg indices, an unknown method or scope, or a finish layout
// whose cardinality disagrees with the final count (ErrGoalMismatch). The
// solver itself assumes validated input.
//
// Defaulting rules follow the puzzle convention:
//
//   - method defaults to DEPTH_FIRST, scope to SINGLE.
//   - when neither finish nor final_count is given, the goal is implicitly
//     the set inversion of the start layout.
//   - when only finish is given, final_count becomes its cardinality.
package config
