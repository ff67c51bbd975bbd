// Package jump solves peg-jump board puzzles on arbitrary graph topologies —
// solitaire-style games where a peg leaps over a neighbor onto an empty node
// and the jumped peg leaves the board.
//
// 🧩 What is jump?
//
//	A small, focused solving engine built from four pieces:
//		• board/  — topology (node×direction transitions), peg states,
//		            moves, and the legal-jump generator
//		• solver/ — the exhaustive search executive: depth- or
//		            breadth-first frontier, exact-layout or peg-count
//		            goals, sound min-peg pruning, single/multiple scope
//		• config/ — JSON/YAML puzzle definitions with full validation
//		• layout/ — rendering geometry (minimum enclosing circle,
//		            unit-circle normalization); never consulted by the solver
//
// Quick start:
//
//	b, _ := board.New(3, 2, map[int]map[int]int{
//		0: {0: 1, 1: 2},
//		1: {0: 2, 1: 0},
//		2: {0: 0, 1: 1},
//	})
//	solutions, _ := solver.Solve(b, board.NewState(0, 1),
//		solver.Count(1), solver.WithScope(solver.Multiple))
//
// The cmd/jump binary wires the pieces together behind a --file flag naming
// a puzzle definition.
package jump
