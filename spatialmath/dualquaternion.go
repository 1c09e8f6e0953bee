// Package spatialmath defines spatial mathematical operations: poses, orientations and the convex
// shapes whose support mappings the collision package searches over.
package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/narrowphase/utils"
)

// Pose represents a rigid transform: a translation and an orientation.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// dualQuaternion is a unit dual quaternion. The dual part is half the translation multiplied by the rotation.
type dualQuaternion dualquat.Number

// NewZeroPose returns a pose at (0,0,0) with same orientation as whatever frame it is placed in.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	q := newDualQuaternionFromRotation(o)
	q.setTranslation(p)
	return q
}

// NewPoseFromOrientation returns a pose at the origin with the given orientation.
func NewPoseFromOrientation(o Orientation) Pose {
	return newDualQuaternionFromRotation(o)
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in.
func NewPoseFromPoint(point r3.Vector) Pose {
	q := newDualQuaternion()
	q.setTranslation(point)
	return q
}

// NewPose2D returns a planar pose: a translation in the XY plane and a rotation of theta radians about Z.
func NewPose2D(x, y, theta float64) Pose {
	return NewPose(r3.Vector{X: x, Y: y}, NewPlanarOrientation(theta))
}

// Compose takes in two poses and returns a new pose that is the result of applying b after a.
func Compose(a, b Pose) Pose {
	return new(dualQuaternion).compose(a, b)
}

// PoseBetween returns the difference between two poses, i.e. the pose of b expressed in a's frame.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseInverse will return the inverse of a pose. So if a given pose p is the pose of A relative to B, PoseInverse(p) will give
// the pose of B relative to A.
func PoseInverse(p Pose) Pose {
	q := dualQuaternionFromPose(p)
	return &dualQuaternion{Real: quat.Conj(q.Real), Dual: quat.Conj(q.Dual)}
}

// PoseAlmostCoincident will return a bool describing whether 2 poses approximately are at the same 3D coordinate location.
// This uses the same epsilon as the default value for the Viam IK solver.
func PoseAlmostCoincident(a, b Pose) bool {
	return PoseAlmostCoincidentEps(a, b, 1e-8)
}

// PoseAlmostCoincidentEps will return a bool describing whether 2 poses approximately are at the same 3D coordinate location.
func PoseAlmostCoincidentEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon)
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, 1e-8)
}

// PoseAlmostEqualEps will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return PoseAlmostCoincidentEps(a, b, epsilon) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// TransformPoint returns pt, given in p's frame, expressed in the parent frame.
func TransformPoint(p Pose, pt r3.Vector) r3.Vector {
	return p.Point().Add(p.Orientation().RotationMatrix().Mul(pt))
}

func newDualQuaternion() *dualQuaternion {
	return &dualQuaternion{Real: quat.Number{Real: 1}}
}

func newDualQuaternionFromRotation(o Orientation) *dualQuaternion {
	return &dualQuaternion{Real: Normalize(o.Quaternion())}
}

func dualQuaternionFromPose(p Pose) *dualQuaternion {
	if q, ok := p.(*dualQuaternion); ok {
		return q
	}
	q := newDualQuaternionFromRotation(p.Orientation())
	q.setTranslation(p.Point())
	return q
}

// Point multiplies the dual quaternion by its own conjugate to give a dq where the real is the identity quat,
// and the dual is half the translation.
func (q *dualQuaternion) Point() r3.Vector {
	tQuat := quat.Scale(2, quat.Mul(q.Dual, quat.Conj(q.Real)))
	return r3.Vector{X: tQuat.Imag, Y: tQuat.Jmag, Z: tQuat.Kmag}
}

// Orientation returns the rotation quaternion as an Orientation.
func (q *dualQuaternion) Orientation() Orientation {
	o := quaternion(q.Real)
	return &o
}

// String returns a human readable representation of the pose.
func (q *dualQuaternion) String() string {
	pt := q.Point()
	aa := QuatToR4AA(q.Real)
	return fmt.Sprintf("{X:%.6f Y:%.6f Z:%.6f OX:%.4f OY:%.4f OZ:%.4f Theta:%.4f}", pt.X, pt.Y, pt.Z, aa.RX, aa.RY, aa.RZ, aa.Theta)
}

// setTranslation correctly sets the translation quaternion against the rotation.
func (q *dualQuaternion) setTranslation(pt r3.Vector) {
	q.Dual = quat.Mul(quat.Number{Imag: pt.X / 2, Jmag: pt.Y / 2, Kmag: pt.Z / 2}, q.Real)
}

// compose multiplies a by b and stores the result in q.
func (q *dualQuaternion) compose(a, b Pose) *dualQuaternion {
	q1 := dualQuaternionFromPose(a)
	q2 := dualQuaternionFromPose(b)
	result := dualquat.Mul(dualquat.Number(*q1), dualquat.Number(*q2))
	// keep the rotation unit length so error does not accumulate across chained compositions
	if norm := quat.Abs(result.Real); norm != 1 && norm != 0 {
		result.Real = quat.Scale(1/norm, result.Real)
		result.Dual = quat.Scale(1/norm, result.Dual)
	}
	*q = dualQuaternion(result)
	return q
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return utils.Float64AlmostEqual(a.X, b.X, epsilon) &&
		utils.Float64AlmostEqual(a.Y, b.Y, epsilon) &&
		utils.Float64AlmostEqual(a.Z, b.Z, epsilon)
}
