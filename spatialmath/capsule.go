package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/narrowphase/utils"
)

// Capsule is the set of points within radius of a line segment.
//
// ....___________________
// .../                   \
// .x|  |-------O-------|  |x
// ...\___________________/
//
// Length is the distance between the x's, or internal segment length + 2*radius.
type Capsule struct {
	segment Segment
	radius  float64
}

// NewCapsule instantiates a capsule around the segment from a to b.
func NewCapsule(a, b r3.Vector, radius float64) (*Capsule, error) {
	if radius < 0 || !utils.IsFinite(radius) {
		return nil, newBadCapsuleRadiusError(radius)
	}
	seg, err := NewSegment(a, b)
	if err != nil {
		return nil, err
	}
	return &Capsule{segment: *seg, radius: radius}, nil
}

// NewCapsuleFromLength instantiates a capsule centered at the local origin and aligned with the Z axis, with the given
// tip to tip length.
func NewCapsuleFromLength(radius, length float64) (*Capsule, error) {
	if radius <= 0 || length <= 0 {
		return nil, newBadShapeDimensionsError(&Capsule{})
	}
	if length < radius*2 {
		return nil, newBadCapsuleLengthError(length, radius)
	}
	half := length/2 - radius
	return NewCapsule(r3.Vector{Z: -half}, r3.Vector{Z: half}, radius)
}

// Kind returns KindCapsule.
func (c *Capsule) Kind() ShapeKind {
	return KindCapsule
}

// String returns a human readable string that represents the capsule.
func (c *Capsule) String() string {
	return fmt.Sprintf("Type: Capsule, Radius: %.3f, Length: %.3f", c.radius, c.Length())
}

// Radius returns the radius of the capsule.
func (c *Capsule) Radius() float64 {
	return c.radius
}

// Core returns the internal segment of the capsule.
func (c *Capsule) Core() SupportMap {
	return &c.segment
}

// Length returns the tip to tip length of the capsule.
func (c *Capsule) Length() float64 {
	return c.segment.b.Sub(c.segment.a).Norm() + 2*c.radius
}

// LocalSupportPoint returns the segment support point pushed out by the radius along dir.
func (c *Capsule) LocalSupportPoint(dir r3.Vector) r3.Vector {
	pt := c.segment.LocalSupportPoint(dir)
	if norm := dir.Norm(); norm > 0 {
		pt = pt.Add(dir.Mul(c.radius / norm))
	}
	return pt
}

func newBadCapsuleLengthError(length, radius float64) error {
	return errors.Errorf("capsule dimensions invalid: length %f must be at least twice the radius %f", length, radius)
}
