package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Segment is the line segment between two local points.
type Segment struct {
	a, b r3.Vector
}

// NewSegment creates a segment. A zero length segment is a point.
func NewSegment(a, b r3.Vector) (*Segment, error) {
	if !vectorIsFinite(a) || !vectorIsFinite(b) {
		return nil, newBadShapeDimensionsError(&Segment{})
	}
	return &Segment{a: a, b: b}, nil
}

// Kind returns KindSegment.
func (s *Segment) Kind() ShapeKind {
	return KindSegment
}

// String returns a human readable string that represents the segment.
func (s *Segment) String() string {
	return fmt.Sprintf("Type: Segment, A: %v, B: %v", s.a, s.b)
}

// Endpoints returns the two endpoints of the segment.
func (s *Segment) Endpoints() (r3.Vector, r3.Vector) {
	return s.a, s.b
}

// LocalSupportPoint returns the endpoint with the larger dot product with dir; ties return A.
func (s *Segment) LocalSupportPoint(dir r3.Vector) r3.Vector {
	if s.b.Dot(dir) > s.a.Dot(dir) {
		return s.b
	}
	return s.a
}

// ClosestPoint returns the point on the segment closest to pt.
func (s *Segment) ClosestPoint(pt r3.Vector) r3.Vector {
	return ClosestPointSegmentPoint(s.a, s.b, pt)
}
