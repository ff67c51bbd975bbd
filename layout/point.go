package layout

import "math"

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector difference p − q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Div returns p scaled by 1/k.
func (p Point) Div(k float64) Point { return Point{X: p.X / k, Y: p.Y / k} }

// MagSquared returns the squared distance from p to the origin.
func (p Point) MagSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Mag returns the distance from p to the origin.
func (p Point) Mag() float64 { return math.Sqrt(p.MagSquared()) }

// Dot returns the dot product of p and q.
func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Det returns the 2D cross product (determinant) of p and q.
func Det(p, q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Dist returns the distance between p and q.
func Dist(p, q Point) float64 { return p.Sub(q).Mag() }

// DistSquared returns the squared distance between p and q.
func DistSquared(p, q Point) float64 { return p.Sub(q).MagSquared() }

// MidPoint returns the midpoint of the segment pq.
func MidPoint(p, q Point) Point { return p.Add(q).Div(2) }

// Circle is a circle of a given radius centered at a point.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether point p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return p.Sub(c.Center).MagSquared() <= c.RadiusSquared()+epsilon
}

// RadiusSquared returns the square of the radius.
func (c Circle) RadiusSquared() float64 { return c.Radius * c.Radius }

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 { return 2 * c.Radius }

// Circumference returns the perimeter length of the circle.
func (c Circle) Circumference() float64 { return c.Diameter() * math.Pi }

// Area returns the area of the circle.
func (c Circle) Area() float64 { return c.RadiusSquared() * math.Pi }

// epsilon absorbs floating-point noise in containment checks; without it the
// boundary points Welzl builds a circle from may test as outside it.
const epsilon = 1e-9
