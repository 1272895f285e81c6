package geometry

import "fmt"

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Path is an ordered visitation sequence of points.
// No closing leg back to Path[0] is implied.
type Path []Point
