package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ShapeKind tags the concrete variant of a Shape so that pairwise routines can be chosen without type switches.
type ShapeKind int

// The supported shape variants.
const (
	KindBall ShapeKind = iota
	KindCuboid
	KindTriangle
	KindSegment
	KindCapsule
	KindConvex
)

func (k ShapeKind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindCuboid:
		return "cuboid"
	case KindTriangle:
		return "triangle"
	case KindSegment:
		return "segment"
	case KindCapsule:
		return "capsule"
	case KindConvex:
		return "convex"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// SupportMap is implemented by any convex set that can report its extreme point in a given direction.
type SupportMap interface {
	// LocalSupportPoint returns the point of the set maximizing the dot product with dir, in the set's local frame.
	// dir need not be normalized. A zero dir yields a fixed point of the set.
	LocalSupportPoint(dir r3.Vector) r3.Vector
}

// Shape is a convex shape described in its own local frame. Shapes carry no pose.
type Shape interface {
	SupportMap
	fmt.Stringer
	Kind() ShapeKind
}

// Rounded is a shape which is the Minkowski sum of a core support map and a ball of some radius.
type Rounded interface {
	Shape
	Core() SupportMap
	Radius() float64
}

// pointSupport is the support map of a single point.
type pointSupport r3.Vector

func (p pointSupport) LocalSupportPoint(r3.Vector) r3.Vector {
	return r3.Vector(p)
}

func newBadShapeDimensionsError(s Shape) error {
	return errors.Errorf("invalid dimension(s) for shape type %s", s.Kind())
}

func newBadCapsuleRadiusError(radius float64) error {
	return errors.Errorf("capsule radius %f must be finite and non-negative", radius)
}

func newEmptyConvexError() error {
	return errors.New("convex shape requires at least one point")
}
