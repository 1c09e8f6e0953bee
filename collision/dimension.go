package collision

import (
	"fmt"
)

// Dimension selects whether a query runs in the plane or in space.
type Dimension int

const (
	// Dim2 queries work in the XY plane. Shapes must be flat in Z, poses may only translate in XY and rotate about Z,
	// and velocities must have no Z component.
	Dim2 Dimension = 2
	// Dim3 queries are unrestricted.
	Dim3 Dimension = 3
)

func (d Dimension) String() string {
	switch d {
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

func (d Dimension) valid() bool {
	return d == Dim2 || d == Dim3
}
