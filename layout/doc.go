// Package layout holds the rendering geometry of a puzzle board: plane
// points, circles, Welzl's minimum-enclosing-circle algorithm, and the
// normalized node layout read from CSV coordinate files.
//
// The solver never consults this package; it exists so front ends can draw
// any board inside the unit circle regardless of the coordinate scale the
// puzzle author used.
//
// Complexity: MinEnclosingCircle runs in expected O(n) over n points.
package layout
