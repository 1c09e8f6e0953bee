package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/utils"
)

// Ball is a sphere (a disc in 2D) of some radius centered at its local origin.
type Ball struct {
	radius float64
}

// NewBall instantiates a new Ball. A zero radius ball is a point.
func NewBall(radius float64) (*Ball, error) {
	if radius < 0 || !utils.IsFinite(radius) {
		return nil, newBadShapeDimensionsError(&Ball{})
	}
	return &Ball{radius: radius}, nil
}

// Kind returns KindBall.
func (b *Ball) Kind() ShapeKind {
	return KindBall
}

// String returns a human readable string that represents the ball.
func (b *Ball) String() string {
	return fmt.Sprintf("Type: Ball, Radius: %.3f", b.radius)
}

// Radius returns the radius of the ball.
func (b *Ball) Radius() float64 {
	return b.radius
}

// Core returns the center point of the ball.
func (b *Ball) Core() SupportMap {
	return pointSupport{}
}

// LocalSupportPoint returns the point on the ball's surface in the direction of dir.
func (b *Ball) LocalSupportPoint(dir r3.Vector) r3.Vector {
	norm := dir.Norm()
	if norm == 0 {
		return r3.Vector{}
	}
	return dir.Mul(b.radius / norm)
}
