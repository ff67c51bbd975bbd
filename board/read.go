package board

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read builds a Board from CSV transition data: one row per node, one column
// per direction, each cell holding the destination node for that
// (node, direction) pair. Blank cells mean "no edge". Destinations outside
// [0, nodes) are dropped, mirroring how sparse puzzle tables are authored
// (filler values mark unused directions).
//
// The node count is the number of rows; the direction count is the widest
// row. Rows may be ragged.
func Read(r io.Reader) (*Board, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("board: reading transitions: %w", err)
	}

	nodes := len(records)
	directions := 0
	for _, row := range records {
		if len(row) > directions {
			directions = len(row)
		}
	}
	if nodes == 0 || directions == 0 {
		return nil, fmt.Errorf("%w: empty transition table", ErrBadDimensions)
	}

	transitions := make(map[int]map[int]int, nodes)
	for node, row := range records {
		dst := make(map[int]int, len(row))
		for dir, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			to, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("board: row %d column %d: %w", node, dir, err)
			}
			if to < 0 || to >= nodes {
				continue // out-of-range marks an unused direction
			}
			dst[dir] = to
		}
		if len(dst) > 0 {
			transitions[node] = dst
		}
	}

	return New(nodes, directions, transitions)
}

// ReadFile reads a CSV transition table from the named file. See Read.
func ReadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	defer f.Close()

	return Read(f)
}
