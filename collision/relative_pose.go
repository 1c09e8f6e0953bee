package collision

import (
	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/spatialmath"
)

// relativePose is the pose of the second shape in the first shape's frame, cached as a rotation matrix and a translation
// so that the hot loops avoid quaternion products.
type relativePose struct {
	rot   *spatialmath.RotationMatrix
	trans r3.Vector
}

func newRelativePose(pos12 spatialmath.Pose) relativePose {
	return relativePose{rot: pos12.Orientation().RotationMatrix(), trans: pos12.Point()}
}

// transformPoint maps a point local to shape 2 into shape 1's frame.
func (p relativePose) transformPoint(pt r3.Vector) r3.Vector {
	return p.rot.Mul(pt).Add(p.trans)
}

// rotate maps a direction local to shape 2 into shape 1's frame.
func (p relativePose) rotate(v r3.Vector) r3.Vector {
	return p.rot.Mul(v)
}

// inverseRotate maps a direction in shape 1's frame into shape 2's frame.
func (p relativePose) inverseRotate(v r3.Vector) r3.Vector {
	return p.rot.MulT(v)
}

// inverse returns the pose of shape 1 in shape 2's frame.
func (p relativePose) inverse() relativePose {
	rotT := p.rot.Transpose()
	return relativePose{rot: rotT, trans: rotT.Mul(p.trans).Mul(-1)}
}

// translated returns the pose moved by d, expressed in shape 1's frame.
func (p relativePose) translated(d r3.Vector) relativePose {
	return relativePose{rot: p.rot, trans: p.trans.Add(d)}
}
