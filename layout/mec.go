package layout

import "math/rand"

// MinEnclosingCircle returns the smallest circle containing every point in
// points, using Welzl's randomized algorithm (expected O(n)).
// An empty input yields the degenerate circle at the origin with radius 0.
// The input slice is not modified.
func MinEnclosingCircle(points []Point) Circle {
	shuffled := make([]Point, len(points))
	copy(shuffled, points)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return welzl(shuffled, nil, len(shuffled))
}

// welzl computes the MEC of the first n unprocessed points of p, given the
// boundary points collected so far in r (at most 3).
func welzl(p []Point, r []Point, n int) Circle {
	if n == 0 || len(r) == 3 {
		return trivialCircle(r)
	}

	idx := rand.Intn(n)
	pt := p[idx]
	// move the picked point out of the active prefix
	p[idx], p[n-1] = p[n-1], p[idx]

	c := welzl(p, append([]Point(nil), r...), n-1)
	if c.Contains(pt) {
		return c
	}

	// pt must lie on the boundary of the MEC
	return welzl(p, append(append([]Point(nil), r...), pt), n-1)
}

// trivialCircle returns the MEC of at most three points.
func trivialCircle(r []Point) Circle {
	switch len(r) {
	case 0:
		return Circle{}
	case 1:
		return Circle{Center: r[0]}
	case 2:
		return circleFrom2(r[0], r[1])
	}

	// a pair may already enclose the third point
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if c := circleFrom2(r[i], r[j]); containsAll(c, r) {
				return c
			}
		}
	}

	return circleFrom3(r[0], r[1], r[2])
}

// circleFrom2 returns the circle with the segment pq as diameter.
func circleFrom2(p, q Point) Circle {
	return Circle{Center: MidPoint(p, q), Radius: p.Sub(q).Mag() / 2}
}

// circleFrom3 returns the circumscribed circle of the triangle abc.
func circleFrom3(a, b, c Point) Circle {
	center := circleCenter(b.Sub(a), c.Sub(a)).Add(a)

	return Circle{Center: center, Radius: Dist(center, a)}
}

// circleCenter finds the circumcenter of a triangle with one vertex at the
// origin and the other two at b and c.
func circleCenter(b, c Point) Point {
	bb := Dot(b, b)
	cc := Dot(c, c)
	d := Det(b, c)

	return Point{
		X: (c.Y*bb - b.Y*cc) / (2 * d),
		Y: (b.X*cc - c.X*bb) / (2 * d),
	}
}

// containsAll reports whether c contains every point in pts.
func containsAll(c Circle, pts []Point) bool {
	for _, p := range pts {
		if !c.Contains(p) {
			return false
		}
	}

	return true
}
