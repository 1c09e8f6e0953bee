package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Cuboid is a rectangular prism centered at its local origin with its faces aligned to the local axes.
// A cuboid with a zero Z half extent is a rectangle and is how 2D boxes are represented.
type Cuboid struct {
	halfSize [3]float64
}

// NewCuboid instantiates a new Cuboid from its half extents along each local axis.
// Negative dimensions are not allowed. Zero dimensions are allowed for flat boxes.
func NewCuboid(halfExtents r3.Vector) (*Cuboid, error) {
	if halfExtents.X < 0 || halfExtents.Y < 0 || halfExtents.Z < 0 || !vectorIsFinite(halfExtents) {
		return nil, newBadShapeDimensionsError(&Cuboid{})
	}
	return &Cuboid{halfSize: [3]float64{halfExtents.X, halfExtents.Y, halfExtents.Z}}, nil
}

// NewRectangle instantiates a 2D cuboid lying in the XY plane.
func NewRectangle(halfX, halfY float64) (*Cuboid, error) {
	return NewCuboid(r3.Vector{X: halfX, Y: halfY})
}

// Kind returns KindCuboid.
func (c *Cuboid) Kind() ShapeKind {
	return KindCuboid
}

// String returns a human readable string that represents the cuboid.
func (c *Cuboid) String() string {
	return fmt.Sprintf("Type: Cuboid, Half Extents: X:%.3f, Y:%.3f, Z:%.3f", c.halfSize[0], c.halfSize[1], c.halfSize[2])
}

// HalfExtents returns the half extents of the cuboid as a vector.
func (c *Cuboid) HalfExtents() r3.Vector {
	return r3.Vector{X: c.halfSize[0], Y: c.halfSize[1], Z: c.halfSize[2]}
}

// HalfSize returns the half extent along local axis i.
func (c *Cuboid) HalfSize(i int) float64 {
	return c.halfSize[i]
}

// LocalSupportPoint returns the vertex of the cuboid furthest along dir. A zero component picks the positive side.
func (c *Cuboid) LocalSupportPoint(dir r3.Vector) r3.Vector {
	return r3.Vector{
		X: copySignNonNeg(c.halfSize[0], dir.X),
		Y: copySignNonNeg(c.halfSize[1], dir.Y),
		Z: copySignNonNeg(c.halfSize[2], dir.Z),
	}
}

// ClosestPoint returns the point of the cuboid closest to pt, both in the cuboid's local frame.
// Points inside the cuboid are returned unchanged.
func (c *Cuboid) ClosestPoint(pt r3.Vector) r3.Vector {
	return r3.Vector{
		X: clamp(pt.X, c.halfSize[0]),
		Y: clamp(pt.Y, c.halfSize[1]),
		Z: clamp(pt.Z, c.halfSize[2]),
	}
}

func copySignNonNeg(h, d float64) float64 {
	if d >= 0 {
		return h
	}
	return -h
}

func clamp(v, h float64) float64 {
	if v > h {
		return h
	} else if v < -h {
		return -h
	}
	return v
}
