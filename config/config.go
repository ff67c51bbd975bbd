package config

import (
	"errors"
	"fmt"

	"github.com/cyberfrontiers/jump/board"
	"github.com/cyberfrontiers/jump/layout"
	"github.com/cyberfrontiers/jump/solver"
)

// Sentinel errors for puzzle definition validation.
var (
	// ErrMissingField indicates a required definition field is absent.
	ErrMissingField = errors.New("config: required field missing")

	// ErrBadValue indicates a field holds an out-of-range or malformed value.
	ErrBadValue = errors.New("config: invalid field value")

	// ErrGoalMismatch indicates finish and final_count are both given but
	// their cardinalities disagree.
	ErrGoalMismatch = errors.New("config: finish layout and final count disagree")

	// ErrUnsupportedFormat indicates a definition file extension that is
	// neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported definition format")
)

// Config is a fully validated puzzle definition, ready to hand to the
// solver. Board and Layout are constructed; Start and Finish are in range
// and duplicate-free; FinalCount agrees with Finish when both were given.
type Config struct {
	// Description briefly names the puzzle.
	Description string

	// Board is the jump topology.
	Board *board.Board

	// Layout positions the nodes for rendering. Never consulted by the solver.
	Layout *layout.Layout

	// Start is the initial peg placement.
	Start board.State

	// Method is the frontier traversal order.
	Method solver.Method

	// Scope selects single- or multiple-solution search.
	Scope solver.Scope

	// Finish is the exact target layout, or nil when the puzzle is defined
	// by peg count alone.
	Finish board.State

	// FinalCount is the target peg count. Always set: it defaults to the
	// cardinality of Finish.
	FinalCount int
}

// Goal returns the solver goal this definition implies: an exact-position
// goal when a finish layout exists, otherwise a deadlocked peg-count goal.
func (c *Config) Goal() solver.Goal {
	if c.Finish != nil {
		return solver.Position(c.Finish)
	}

	return solver.Count(c.FinalCount)
}

// validateNodeList checks that values are unique and within [0, nodes).
func validateNodeList(field string, values []int, nodes int) (board.State, error) {
	seen := board.NewState()
	for _, v := range values {
		if v < 0 || v >= nodes {
			return nil, fmt.Errorf("%w: %s holds node %d outside [0, %d)", ErrBadValue, field, v, nodes)
		}
		if seen.Contains(v) {
			return nil, fmt.Errorf("%w: %s holds node %d more than once", ErrBadValue, field, v)
		}
		seen[v] = struct{}{}
	}

	return seen, nil
}

// complement returns the nodes of the board not present in s.
func complement(s board.State, nodes int) board.State {
	out := board.NewState()
	for n := 0; n < nodes; n++ {
		if !s.Contains(n) {
			out[n] = struct{}{}
		}
	}

	return out
}
