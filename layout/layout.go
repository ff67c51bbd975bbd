package layout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadCoordinates indicates a CSV row without two numeric fields.
var ErrBadCoordinates = errors.New("layout: each row must hold two numeric coordinates")

// Layout positions every board node in the plane for rendering, normalized
// so the whole board fits inside the unit circle: each raw point p becomes
// (p − center) / radius of the minimum enclosing circle.
// Points[i] is the location of node i.
type Layout struct {
	Points []Point
}

// Bounds returns the axis-aligned bounding box of the layout as its
// minimum and maximum corners. An empty layout yields two zero points.
func (l *Layout) Bounds() (min, max Point) {
	if len(l.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = l.Points[0], l.Points[0]
	for _, p := range l.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	return min, max
}

// Read parses CSV rows of "x,y" node coordinates (row i = node i) and
// returns the layout normalized to the unit circle.
func Read(r io.Reader) (*Layout, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("layout: reading coordinates: %w", err)
	}

	points := make([]Point, 0, len(records))
	for i, row := range records {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrBadCoordinates, i, len(row))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadCoordinates, i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadCoordinates, i, err)
		}
		points = append(points, Point{X: x, Y: y})
	}

	mec := MinEnclosingCircle(points)
	if mec.Radius > 0 {
		for i, p := range points {
			points[i] = p.Sub(mec.Center).Div(mec.Radius)
		}
	}

	return &Layout{Points: points}, nil
}

// ReadFile reads node coordinates from the named CSV file. See Read.
func ReadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	defer f.Close()

	return Read(f)
}
