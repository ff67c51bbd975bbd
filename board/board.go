package board

import (
	"fmt"
	"sort"
)

// Arc is one outgoing edge of a node: following direction Dir arrives at To.
type Arc struct {
	Dir int
	To  int
}

// Board is the immutable adjacency model of a jump puzzle: a sparse mapping
// (node, direction) → node. Absence of a pair means "no edge in that
// direction from that node". Build once, share freely; Board is safe for
// concurrent readers.
type Board struct {
	transitions map[int]map[int]int
	outgoing    map[int][]Arc // per node, sorted by direction
	nodes       int
	directions  int
	edges       int
}

// New constructs a Board from a sparse transition table.
// It deep-copies the input to ensure immutability and precomputes a
// direction-sorted adjacency view per node for deterministic traversal.
//
// Returns ErrBadDimensions for non-positive counts, ErrNodeOutOfRange when a
// source or destination node lies outside [0, nodes), and
// ErrDirectionOutOfRange when a direction index lies outside [0, directions).
// Complexity: O(E log d) time, O(E) memory.
func New(nodes, directions int, transitions map[int]map[int]int) (*Board, error) {
	if nodes <= 0 || directions <= 0 {
		return nil, fmt.Errorf("%w: nodes=%d directions=%d", ErrBadDimensions, nodes, directions)
	}

	copied := make(map[int]map[int]int, len(transitions))
	outgoing := make(map[int][]Arc, len(transitions))
	edges := 0
	for node, row := range transitions {
		if node < 0 || node >= nodes {
			return nil, fmt.Errorf("%w: source node %d with %d nodes", ErrNodeOutOfRange, node, nodes)
		}
		if len(row) == 0 {
			continue
		}
		dst := make(map[int]int, len(row))
		arcs := make([]Arc, 0, len(row))
		for dir, to := range row {
			if dir < 0 || dir >= directions {
				return nil, fmt.Errorf("%w: direction %d at node %d with %d directions",
					ErrDirectionOutOfRange, dir, node, directions)
			}
			if to < 0 || to >= nodes {
				return nil, fmt.Errorf("%w: destination %d from node %d with %d nodes",
					ErrNodeOutOfRange, to, node, nodes)
			}
			dst[dir] = to
			arcs = append(arcs, Arc{Dir: dir, To: to})
		}
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].Dir < arcs[j].Dir })
		copied[node] = dst
		outgoing[node] = arcs
		edges += len(dst)
	}

	return &Board{
		transitions: copied,
		outgoing:    outgoing,
		nodes:       nodes,
		directions:  directions,
		edges:       edges,
	}, nil
}

// Nodes returns the number of nodes on the board.
func (b *Board) Nodes() int { return b.nodes }

// Directions returns the number of direction labels (max index + 1).
func (b *Board) Directions() int { return b.directions }

// Edges returns the count of populated (node, direction) pairs.
// Purely diagnostic; the solver never consults it.
func (b *Board) Edges() int { return b.edges }

// Transit follows the edge from node in the given direction.
// Returns ErrInvalidTransition when no such edge exists.
func (b *Board) Transit(node, direction int) (int, error) {
	if row, ok := b.transitions[node]; ok {
		if to, ok := row[direction]; ok {
			return to, nil
		}
	}

	return 0, fmt.Errorf("%w: node=%d direction=%d", ErrInvalidTransition, node, direction)
}

// Direction returns the unique direction d with Transit(a, d) == b, and true.
// When no direction connects a to b, or when more than one does (the jump
// would be underspecified), it returns false.
func (bd *Board) Direction(a, b int) (int, bool) {
	found := -1
	for _, arc := range bd.outgoing[a] {
		if arc.To != b {
			continue
		}
		if found >= 0 {
			// ambiguous: two directions reach the same intermediate node
			return 0, false
		}
		found = arc.Dir
	}
	if found < 0 {
		return 0, false
	}

	return found, true
}

// Outgoing returns the arcs leaving node, sorted by direction.
// The returned slice is shared and must be treated as read-only.
func (b *Board) Outgoing(node int) []Arc {
	return b.outgoing[node]
}
