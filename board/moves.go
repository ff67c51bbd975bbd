package board

// Moves enumerates every legal single jump available from state s.
//
// For each occupied node m and each outgoing arc (d, jump) of m, the jump is
// legal when jump is occupied, the landing node Transit(jump, d) exists, and
// the landing node is vacant. Each legal jump is emitted as a Step whose
// Final state is s − {m, jump} ∪ {land}.
//
// Distinct (move, jump) choices reaching the same final state are distinct
// Steps and all are retained: they represent different move sequences.
// Iteration is deterministic (ascending nodes, ascending directions), so the
// result order is a pure function of (board, state).
//
// An empty state, or one with no eligible jump, yields an empty slice —
// terminal for the count-based goal checker.
// Complexity: O(|s| × directions) time.
func (b *Board) Moves(s State) []Step {
	var steps []Step
	for _, m := range s.Nodes() {
		for _, arc := range b.outgoing[m] {
			jump := arc.To
			if !s.Contains(jump) {
				continue
			}
			land, ok := b.transitions[jump][arc.Dir]
			if !ok {
				continue
			}
			if s.Contains(land) {
				continue
			}
			steps = append(steps, Step{
				Start: s,
				Move:  Move{Move: m, Jump: jump, Land: land},
				Final: s.Without(m, jump).With(land),
			})
		}
	}

	return steps
}
