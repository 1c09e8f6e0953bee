package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestBasicPoseConstruction(t *testing.T) {
	p := NewZeroPose()
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, OrientationAlmostEqual(p.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)

	pt := r3.Vector{X: 1, Y: -2, Z: 3}
	p = NewPoseFromPoint(pt)
	test.That(t, R3VectorAlmostEqual(p.Point(), pt, 1e-12), test.ShouldBeTrue)

	o := &EulerAngles{Roll: 0.1, Pitch: 0.2, Yaw: 0.3}
	p = NewPose(pt, o)
	test.That(t, R3VectorAlmostEqual(p.Point(), pt, 1e-12), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(p.Orientation(), o), test.ShouldBeTrue)

	p = NewPoseFromOrientation(o)
	test.That(t, R3VectorAlmostEqual(p.Point(), r3.Vector{}, 1e-12), test.ShouldBeTrue)

	test.That(t, PoseAlmostEqual(NewPose(pt, nil), NewPoseFromPoint(pt)), test.ShouldBeTrue)
}

func TestPose2D(t *testing.T) {
	p := NewPose2D(1, 2, math.Pi/2)
	test.That(t, R3VectorAlmostEqual(p.Point(), r3.Vector{X: 1, Y: 2}, 1e-12), test.ShouldBeTrue)
	test.That(t, p.Point().Z, test.ShouldEqual, 0.)
	test.That(t, R3VectorAlmostEqual(TransformPoint(p, r3.Vector{X: 1}), r3.Vector{X: 1, Y: 3}, 1e-12), test.ShouldBeTrue)

	q := p.Orientation().Quaternion()
	test.That(t, q.Imag, test.ShouldEqual, 0.)
	test.That(t, q.Jmag, test.ShouldEqual, 0.)
}

func TestPoseComposition(t *testing.T) {
	p1 := NewPose2D(1, 2, math.Pi/2)
	p2 := NewPoseFromPoint(r3.Vector{X: 1})

	composed := Compose(p1, p2)
	test.That(t, R3VectorAlmostEqual(composed.Point(), r3.Vector{X: 1, Y: 3}, 1e-12), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(composed.Orientation(), p1.Orientation()), test.ShouldBeTrue)

	t.Run("inverse", func(t *testing.T) {
		askew := NewPose(r3.Vector{X: 3, Y: -1, Z: 2}, &R4AA{Theta: 1.2, RX: 1, RY: 1, RZ: -1})
		test.That(t, PoseAlmostEqual(Compose(askew, PoseInverse(askew)), NewZeroPose()), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqual(Compose(PoseInverse(askew), askew), NewZeroPose()), test.ShouldBeTrue)
	})

	t.Run("between", func(t *testing.T) {
		a := NewPose2D(1, 0, math.Pi/2)
		b := NewPoseFromPoint(r3.Vector{X: 1, Y: 1})
		ab := PoseBetween(a, b)
		test.That(t, R3VectorAlmostEqual(ab.Point(), r3.Vector{X: 1}, 1e-12), test.ShouldBeTrue)
		test.That(t, OrientationAlmostEqual(ab.Orientation(), NewPlanarOrientation(-math.Pi/2)), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqual(Compose(a, ab), b), test.ShouldBeTrue)
	})

	t.Run("coincident", func(t *testing.T) {
		a := NewPose2D(1, 0, 0)
		b := NewPose2D(1, 0, math.Pi)
		test.That(t, PoseAlmostCoincident(a, b), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqual(a, b), test.ShouldBeFalse)
		test.That(t, PoseAlmostCoincidentEps(a, NewPose2D(1.01, 0, 0), 0.1), test.ShouldBeTrue)
	})
}
