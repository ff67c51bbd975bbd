// Package solver defines the tunable options, strategy enumerations, goal
// predicates, and sentinel errors of the search executive.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cyberfrontiers/jump/board"
)

// Sentinel errors for solver execution.
var (
	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("solver: board is nil")

	// ErrEmptyStart is returned when the start state holds no pegs.
	ErrEmptyStart = errors.New("solver: start state is empty")

	// ErrBadGoal is returned for a malformed goal (e.g. negative count or
	// a zero-value Goal that names no target).
	ErrBadGoal = errors.New("solver: invalid goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Method selects the frontier traversal order.
type Method int

const (
	// DepthFirst picks the most recently added path (stack discipline).
	DepthFirst Method = iota
	// BreadthFirst picks the least recently added path (queue discipline).
	BreadthFirst
)

// String returns the method name used in configuration files.
func (m Method) String() string {
	if m == BreadthFirst {
		return "BREADTH_FIRST"
	}

	return "DEPTH_FIRST"
}

// ParseMethod maps a configuration string onto a Method. Matching is
// case-insensitive; the empty string yields the DepthFirst default.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(s) {
	case "", "DEPTH_FIRST":
		return DepthFirst, nil
	case "BREADTH_FIRST":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: method %q (want DEPTH_FIRST or BREADTH_FIRST)", ErrOptionViolation, s)
	}
}

// Scope selects how many solutions the search returns.
type Scope int

const (
	// Single halts at the first satisfying path.
	Single Scope = iota
	// Multiple exhausts the frontier and returns every satisfying path.
	Multiple
)

// String returns the scope name used in configuration files.
func (s Scope) String() string {
	if s == Multiple {
		return "MULTIPLE"
	}

	return "SINGLE"
}

// ParseScope maps a configuration string onto a Scope. Matching is
// case-insensitive; the empty string yields the Single default.
func ParseScope(s string) (Scope, error) {
	switch strings.ToUpper(s) {
	case "", "SINGLE":
		return Single, nil
	case "MULTIPLE":
		return Multiple, nil
	default:
		return 0, fmt.Errorf("%w: scope %q (want SINGLE or MULTIPLE)", ErrOptionViolation, s)
	}
}

// goalKind discriminates the Goal union.
type goalKind int

const (
	goalNone goalKind = iota
	goalPosition
	goalCount
)

// Goal is the target of a search: either an exact final peg layout or a
// final peg count that must be a deadlock (no further legal move).
// Construct with Position or Count; the zero Goal is invalid.
type Goal struct {
	kind   goalKind
	finish board.State
	count  int
}

// Position returns a Goal satisfied when a path's final state equals finish
// exactly (set equality).
func Position(finish board.State) Goal {
	return Goal{kind: goalPosition, finish: finish}
}

// Count returns a Goal satisfied when a path's final state holds exactly n
// pegs and no further legal move exists from it.
func Count(n int) Goal {
	return Goal{kind: goalCount, count: n}
}

// MinPegs returns the lower bound on peg count below which no descendant
// path can satisfy the goal. Peg count is monotonically decreasing along any
// path, so pruning on this bound is exact.
func (g Goal) MinPegs() int {
	if g.kind == goalPosition {
		return g.finish.Len()
	}

	return g.count
}

// Matches reports whether path p satisfies the goal on board b.
// Pure: identical arguments always yield identical results.
func (g Goal) Matches(b *board.Board, p board.Path) bool {
	final := p.Final()
	if final == nil {
		return false
	}
	switch g.kind {
	case goalPosition:
		return final.Equal(g.finish)
	case goalCount:
		return final.Len() == g.count && len(b.Moves(final)) == 0
	default:
		return false
	}
}

// validate rejects malformed goals before the search starts.
func (g Goal) validate() error {
	switch g.kind {
	case goalPosition:
		if g.finish == nil {
			return fmt.Errorf("%w: position goal with nil finish state", ErrBadGoal)
		}
	case goalCount:
		if g.count < 0 {
			return fmt.Errorf("%w: negative peg count %d", ErrBadGoal, g.count)
		}
	default:
		return fmt.Errorf("%w: goal names no target", ErrBadGoal)
	}

	return nil
}

// Option configures search behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Solve is invoked.
type Option func(*Options)

// Options holds the parameters of one search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per iteration.
	Ctx context.Context

	// Method selects depth-first or breadth-first frontier traversal.
	Method Method

	// Scope selects single- or multiple-solution mode.
	Scope Scope

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the defaults a bare configuration
// implies: Background context, DepthFirst, Single.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Method: DepthFirst,
		Scope:  Single,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMethod selects the traversal order.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != DepthFirst && m != BreadthFirst {
			o.err = fmt.Errorf("%w: unknown method %d", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithScope selects single- or multiple-solution mode.
func WithScope(s Scope) Option {
	return func(o *Options) {
		if s != Single && s != Multiple {
			o.err = fmt.Errorf("%w: unknown scope %d", ErrOptionViolation, s)
			return
		}
		o.Scope = s
	}
}
