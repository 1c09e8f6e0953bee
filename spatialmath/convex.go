package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"
)

// Convex is the convex hull of a set of local points. Only the support mapping of the hull is used, so the points need
// not all be hull vertices.
type Convex struct {
	points []r3.Vector
}

// NewConvex creates a convex shape from a set of points. Duplicate points are dropped, keeping the first occurrence.
func NewConvex(points []r3.Vector) (*Convex, error) {
	if len(points) == 0 {
		return nil, newEmptyConvexError()
	}
	for _, pt := range points {
		if !vectorIsFinite(pt) {
			return nil, newBadShapeDimensionsError(&Convex{})
		}
	}
	return &Convex{points: lo.Uniq(points)}, nil
}

// Kind returns KindConvex.
func (c *Convex) Kind() ShapeKind {
	return KindConvex
}

// String returns a human readable string that represents the convex shape.
func (c *Convex) String() string {
	return fmt.Sprintf("Type: Convex, Points: %d", len(c.points))
}

// Points returns a copy of the deduplicated points.
func (c *Convex) Points() []r3.Vector {
	return append([]r3.Vector(nil), c.points...)
}

// LocalSupportPoint returns the point with the greatest dot product with dir. Ties keep the earlier point.
func (c *Convex) LocalSupportPoint(dir r3.Vector) r3.Vector {
	return c.points[supportIndex(c.points, dir)]
}
