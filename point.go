package main

import "fmt"

// Point is a 2D coordinate. Values are treated as immutable: Add returns a
// new Point rather than mutating its receiver.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
