package solver

import (
	"github.com/cyberfrontiers/jump/board"
)

// searcher encapsulates the mutable state of one search run.
type searcher struct {
	board     *board.Board
	goal      Goal
	opts      Options
	minPegs   int
	frontier  []board.Path
	solutions []board.Path
}

// Solve explores the move tree of b rooted at start and returns every path
// satisfying goal, in discovery order under the selected traversal method.
// Under Scope Single the search halts at the first solution; under Multiple
// it exhausts the frontier. An empty result means no solution exists for
// this start and goal.
//
// The frontier is seeded with the one-step extensions of start; the start
// state itself is never goal-tested.
func Solve(b *board.Board, start board.State, goal Goal, opts ...Option) ([]board.Path, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	if start.Len() == 0 {
		return nil, ErrEmptyStart
	}
	if err := goal.validate(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	steps := b.Moves(start)
	s := &searcher{
		board:    b,
		goal:     goal,
		opts:     o,
		minPegs:  goal.MinPegs(),
		frontier: make([]board.Path, 0, len(steps)),
	}
	for _, step := range steps {
		s.frontier = append(s.frontier, board.Path{step})
	}

	if err := s.loop(); err != nil {
		return s.solutions, err
	}

	return s.solutions, nil
}

// loop drains the frontier: pick, prune, goal-test, expand.
// Terminal when the frontier empties or a Single-scope solution is found.
func (s *searcher) loop() error {
	for len(s.frontier) > 0 {
		// cancellation check (once per iteration)
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		var path board.Path
		if s.opts.Method == BreadthFirst {
			path, s.frontier = PickBreadthFirst(s.frontier)
		} else {
			path, s.frontier = PickDepthFirst(s.frontier)
		}

		final := path.Final()

		// Prune: peg count only ever decreases, so a path already below the
		// goal's cardinality can never reach it.
		if final.Len() < s.minPegs {
			continue
		}

		if s.goal.Matches(s.board, path) {
			s.solutions = append(s.solutions, path)
			if s.opts.Scope == Single {
				return nil
			}
			continue
		}

		// Expand: wrap each legal next step into a copy of the current path.
		for _, step := range s.board.Moves(final) {
			s.frontier = append(s.frontier, path.Extend(step))
		}
	}

	return nil
}
