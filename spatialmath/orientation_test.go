package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/narrowphase/utils"
)

var (
	// 90 degrees about Z.
	quatZ90 = quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)}
	// a rotation off every axis.
	quatAskew = Normalize(quat.Number{Real: 0.7, Imag: 0.2, Jmag: -0.4, Kmag: 0.3})
)

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, zero.AxisAngles().Theta, test.ShouldEqual, 0.)
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
	test.That(t, zero.RotationMatrix(), test.ShouldResemble, NewIdentityRotationMatrix())
}

func TestQuaternionConversions(t *testing.T) {
	t.Run("axis angle", func(t *testing.T) {
		aa := QuatToR4AA(quatZ90)
		test.That(t, aa.Theta, test.ShouldAlmostEqual, math.Pi/2)
		test.That(t, aa.RZ, test.ShouldAlmostEqual, 1.)
		test.That(t, QuaternionAlmostEqual(aa.ToQuat(), quatZ90, 1e-9), test.ShouldBeTrue)
		test.That(t, QuaternionAlmostEqual(QuatToR4AA(quatAskew).Quaternion(), quatAskew, 1e-9), test.ShouldBeTrue)
	})

	t.Run("euler angles", func(t *testing.T) {
		ea := QuatToEulerAngles(quatZ90)
		test.That(t, ea.Roll, test.ShouldAlmostEqual, 0.)
		test.That(t, ea.Pitch, test.ShouldAlmostEqual, 0.)
		test.That(t, ea.Yaw, test.ShouldAlmostEqual, math.Pi/2)

		ea = &EulerAngles{Roll: utils.DegToRad(10), Pitch: utils.DegToRad(-20), Yaw: utils.DegToRad(30)}
		back := QuatToEulerAngles(ea.Quaternion())
		test.That(t, back.Roll, test.ShouldAlmostEqual, ea.Roll)
		test.That(t, back.Pitch, test.ShouldAlmostEqual, ea.Pitch)
		test.That(t, back.Yaw, test.ShouldAlmostEqual, ea.Yaw)
	})

	t.Run("rotation matrix", func(t *testing.T) {
		rm := QuatToRotationMatrix(quatZ90)
		test.That(t, R3VectorAlmostEqual(rm.Mul(r3.Vector{X: 1}), r3.Vector{Y: 1}, 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(rm.MulT(r3.Vector{Y: 1}), r3.Vector{X: 1}, 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(rm.Col(0), r3.Vector{Y: 1}, 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(rm.Row(0), r3.Vector{Y: -1}, 1e-9), test.ShouldBeTrue)
		test.That(t, rm.At(1, 0), test.ShouldAlmostEqual, 1.)
		test.That(t, rm.Transpose().At(0, 1), test.ShouldAlmostEqual, 1.)

		for _, q := range []quat.Number{quatZ90, quatAskew, {Imag: 1}, {Jmag: 1}, {Kmag: 1}} {
			back := QuatToRotationMatrix(q).Quaternion()
			test.That(t, QuaternionAlmostEqual(back, q, 1e-9), test.ShouldBeTrue)
		}
	})

	t.Run("rotation matrix constructor", func(t *testing.T) {
		_, err := NewRotationMatrix([]float64{1, 0, 0})
		test.That(t, err, test.ShouldNotBeNil)
		rm, err := NewRotationMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, rm, test.ShouldResemble, NewIdentityRotationMatrix())
	})
}

func TestAxisAngle(t *testing.T) {
	// a zero axis is not a rotation
	aa := &R4AA{Theta: 1}
	test.That(t, QuaternionAlmostEqual(aa.ToQuat(), quat.Number{Real: math.Cos(0.5), Kmag: math.Sin(0.5)}, 1e-12), test.ShouldBeTrue)
	aa.Normalize()
	test.That(t, aa.RZ, test.ShouldEqual, 1.)

	aa = &R4AA{Theta: math.Pi, RX: 2}
	aa.Normalize()
	test.That(t, aa.RX, test.ShouldEqual, 1.)
	test.That(t, R3VectorAlmostEqual(aa.ToR3(), r3.Vector{X: math.Pi}, 1e-12), test.ShouldBeTrue)
	test.That(t, R3ToR4(aa.ToR3()), test.ShouldResemble, aa)
	test.That(t, R3ToR4(r3.Vector{}), test.ShouldResemble, NewR4AA())
}

func TestOrientationBetween(t *testing.T) {
	o1 := NewPlanarOrientation(math.Pi / 6)
	o2 := NewPlanarOrientation(math.Pi / 2)
	between := OrientationBetween(o1, o2)
	test.That(t, OrientationAlmostEqual(between, NewPlanarOrientation(math.Pi/3)), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(OrientationBetween(o1, o1), NewZeroOrientation()), test.ShouldBeTrue)

	inv := OrientationInverse(o2)
	test.That(t, OrientationAlmostEqual(inv, NewPlanarOrientation(-math.Pi/2)), test.ShouldBeTrue)

	// double cover
	q := quatAskew
	test.That(t, OrientationAlmostEqual(NewQuaternion(q.Real, q.Imag, q.Jmag, q.Kmag),
		NewQuaternion(-q.Real, -q.Imag, -q.Jmag, -q.Kmag)), test.ShouldBeTrue)
}

func TestNormalize(t *testing.T) {
	test.That(t, Normalize(quat.Number{}), test.ShouldResemble, quat.Number{Real: 1})
	n := Normalize(quat.Number{Real: 2, Kmag: 2})
	test.That(t, quat.Abs(n), test.ShouldAlmostEqual, 1.)
	test.That(t, NewQuaternion(0, 0, 0, 3).Quaternion(), test.ShouldResemble, quat.Number{Kmag: 1})
}
