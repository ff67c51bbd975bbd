package solver_test

import (
	"fmt"

	"github.com/cyberfrontiers/jump/board"
	"github.com/cyberfrontiers/jump/solver"
)

// ExampleSolve clears a 4-node ring from three pegs down to one, collecting
// every deadlocked single-peg sequence.
func ExampleSolve() {
	b, err := board.New(4, 2, map[int]map[int]int{
		0: {0: 1, 1: 3},
		1: {0: 2, 1: 0},
		2: {0: 3, 1: 1},
		3: {0: 0, 1: 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	solutions, err := solver.Solve(b, board.NewState(0, 1, 2), solver.Count(1),
		solver.WithMethod(solver.BreadthFirst),
		solver.WithScope(solver.Multiple))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range solutions {
		fmt.Printf("%s -> %s\n", s, s.Final())
	}
	// Output:
	// 1>2>3, 0>3>2 -> {2}
	// 1>2>3, 3>0>1 -> {1}
	// 1>0>3, 2>3>0 -> {0}
	// 1>0>3, 3>2>1 -> {1}
}
