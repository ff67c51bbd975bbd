package board_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cyberfrontiers/jump/board"
)

// TestRead parses a 3-node table with blank and out-of-range cells.
func TestRead(t *testing.T) {
	// node 0: dir0→1, dir1→2; node 1: dir0→2 only (blank dir1);
	// node 2: dir0 marked unused with an out-of-range filler.
	csv := "1,2\n2,\n9,1\n"
	b, err := board.Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if b.Nodes() != 3 || b.Directions() != 2 {
		t.Fatalf("dimensions = %d nodes, %d directions; want 3, 2", b.Nodes(), b.Directions())
	}
	if b.Edges() != 4 {
		t.Errorf("Edges() = %d; want 4 (blank and filler cells dropped)", b.Edges())
	}

	if to, err := b.Transit(1, 0); err != nil || to != 2 {
		t.Errorf("Transit(1,0) = %d, %v; want 2, nil", to, err)
	}
	if _, err := b.Transit(1, 1); !errors.Is(err, board.ErrInvalidTransition) {
		t.Errorf("blank cell created an edge: %v", err)
	}
	if _, err := b.Transit(2, 0); !errors.Is(err, board.ErrInvalidTransition) {
		t.Errorf("out-of-range filler created an edge: %v", err)
	}
	if to, err := b.Transit(2, 1); err != nil || to != 1 {
		t.Errorf("Transit(2,1) = %d, %v; want 1, nil", to, err)
	}
}

// TestRead_Errors covers empty and non-numeric input.
func TestRead_Errors(t *testing.T) {
	if _, err := board.Read(strings.NewReader("")); !errors.Is(err, board.ErrBadDimensions) {
		t.Errorf("empty input error = %v; want ErrBadDimensions", err)
	}
	if _, err := board.Read(strings.NewReader("1,x\n0,1\n")); err == nil {
		t.Error("non-numeric cell accepted")
	}
}

// TestReadFile_Missing reports the underlying open failure.
func TestReadFile_Missing(t *testing.T) {
	if _, err := board.ReadFile("no/such/board.csv"); err == nil {
		t.Error("missing file accepted")
	}
}
