package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestBall(t *testing.T) {
	_, err := NewBall(-1)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewBall(math.Inf(1))
	test.That(t, err, test.ShouldNotBeNil)

	b, err := NewBall(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.Kind(), test.ShouldEqual, KindBall)
	test.That(t, b.Radius(), test.ShouldEqual, 2.)
	test.That(t, R3VectorAlmostEqual(b.LocalSupportPoint(r3.Vector{X: 3, Y: 4}), r3.Vector{X: 1.2, Y: 1.6}, 1e-12), test.ShouldBeTrue)
	test.That(t, b.LocalSupportPoint(r3.Vector{}), test.ShouldResemble, r3.Vector{})
	test.That(t, b.Core().LocalSupportPoint(r3.Vector{X: 1}), test.ShouldResemble, r3.Vector{})

	var _ Rounded = b
}

func TestCuboid(t *testing.T) {
	_, err := NewCuboid(r3.Vector{X: -1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cuboid")
	_, err = NewCuboid(r3.Vector{X: math.NaN(), Y: 1, Z: 1})
	test.That(t, err, test.ShouldNotBeNil)

	c, err := NewCuboid(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Kind(), test.ShouldEqual, KindCuboid)
	test.That(t, c.HalfExtents(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, c.HalfSize(1), test.ShouldEqual, 2.)

	t.Run("support", func(t *testing.T) {
		test.That(t, c.LocalSupportPoint(r3.Vector{X: 1, Y: -1}), test.ShouldResemble, r3.Vector{X: 1, Y: -2, Z: 3})
		test.That(t, c.LocalSupportPoint(r3.Vector{}), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
		test.That(t, c.LocalSupportPoint(r3.Vector{X: -1, Y: -1, Z: -1}), test.ShouldResemble, r3.Vector{X: -1, Y: -2, Z: -3})
	})

	t.Run("closest point", func(t *testing.T) {
		test.That(t, c.ClosestPoint(r3.Vector{X: 5, Y: -5}), test.ShouldResemble, r3.Vector{X: 1, Y: -2})
		test.That(t, c.ClosestPoint(r3.Vector{X: 0.5}), test.ShouldResemble, r3.Vector{X: 0.5})
	})

	t.Run("rectangle", func(t *testing.T) {
		r, err := NewRectangle(1, 1.5)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, r.HalfExtents(), test.ShouldResemble, r3.Vector{X: 1, Y: 1.5})
		test.That(t, r.LocalSupportPoint(r3.Vector{X: -1, Y: 1}), test.ShouldResemble, r3.Vector{X: -1, Y: 1.5})
	})
}

func TestTriangle(t *testing.T) {
	a, b, c := r3.Vector{}, r3.Vector{X: 3}, r3.Vector{Y: 3}
	tri := NewTriangle(a, b, c)
	test.That(t, tri.Kind(), test.ShouldEqual, KindTriangle)
	test.That(t, tri.Points(), test.ShouldResemble, []r3.Vector{a, b, c})
	test.That(t, R3VectorAlmostEqual(tri.Normal(), r3.Vector{Z: 1}, 1e-12), test.ShouldBeTrue)
	test.That(t, tri.Edges(), test.ShouldResemble, [3]r3.Vector{{X: 3}, {X: -3, Y: 3}, {Y: -3}})

	t.Run("support", func(t *testing.T) {
		test.That(t, tri.LocalSupportPoint(r3.Vector{X: 1}), test.ShouldResemble, b)
		test.That(t, tri.LocalSupportPoint(r3.Vector{Y: 1}), test.ShouldResemble, c)
		// every vertex ties, the first wins
		test.That(t, tri.LocalSupportPoint(r3.Vector{Z: 1}), test.ShouldResemble, a)
		test.That(t, tri.LocalSupportPoint(r3.Vector{X: 1, Y: 1}), test.ShouldResemble, b)
	})

	t.Run("edge normals", func(t *testing.T) {
		expected := []r3.Vector{{Y: -1}, {X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, {X: -1}}
		for i, exp := range expected {
			n, ok := tri.EdgeNormal2D(i)
			test.That(t, ok, test.ShouldBeTrue)
			test.That(t, R3VectorAlmostEqual(n, exp, 1e-12), test.ShouldBeTrue)
		}

		// the opposite winding gives the same set of outward normals
		cw := NewTriangle(a, c, b)
		cwExpected := []r3.Vector{{X: -1}, {X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, {Y: -1}}
		for i, exp := range cwExpected {
			n, ok := cw.EdgeNormal2D(i)
			test.That(t, ok, test.ShouldBeTrue)
			test.That(t, R3VectorAlmostEqual(n, exp, 1e-12), test.ShouldBeTrue)
		}

		degenerate := NewTriangle(a, a, b)
		_, ok := degenerate.EdgeNormal2D(0)
		test.That(t, ok, test.ShouldBeFalse)
		_, ok = degenerate.EdgeNormal2D(1)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, degenerate.Normal(), test.ShouldResemble, r3.Vector{})
	})

	t.Run("closest point", func(t *testing.T) {
		closest, inside := tri.ClosestInsidePoint(r3.Vector{X: 1, Y: 1, Z: 1})
		test.That(t, inside, test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(closest, r3.Vector{X: 1, Y: 1}, 1e-12), test.ShouldBeTrue)

		_, inside = tri.ClosestInsidePoint(r3.Vector{X: -1, Y: -1})
		test.That(t, inside, test.ShouldBeFalse)

		test.That(t, R3VectorAlmostEqual(tri.ClosestPointToPoint(r3.Vector{X: 4, Y: -1}), b, 1e-12), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(tri.ClosestPointToPoint(r3.Vector{X: 2, Y: 2, Z: 5}), r3.Vector{X: 1.5, Y: 1.5}, 1e-12),
			test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(tri.ClosestPointToPoint(r3.Vector{X: 1, Y: -2}), r3.Vector{X: 1}, 1e-12), test.ShouldBeTrue)

		_, inside = NewTriangle(a, b, b).ClosestInsidePoint(r3.Vector{X: 1})
		test.That(t, inside, test.ShouldBeFalse)
	})
}

func TestSegmentAndCapsule(t *testing.T) {
	seg, err := NewSegment(r3.Vector{X: -1}, r3.Vector{X: 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, seg.Kind(), test.ShouldEqual, KindSegment)
	test.That(t, seg.LocalSupportPoint(r3.Vector{X: 1}), test.ShouldResemble, r3.Vector{X: 1})
	test.That(t, seg.LocalSupportPoint(r3.Vector{Y: 1}), test.ShouldResemble, r3.Vector{X: -1})
	test.That(t, seg.ClosestPoint(r3.Vector{X: 5, Y: 1}), test.ShouldResemble, r3.Vector{X: 1})
	_, err = NewSegment(r3.Vector{X: math.Inf(1)}, r3.Vector{})
	test.That(t, err, test.ShouldNotBeNil)

	t.Run("capsule", func(t *testing.T) {
		c, err := NewCapsuleFromLength(1, 6)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, c.Kind(), test.ShouldEqual, KindCapsule)
		test.That(t, c.Length(), test.ShouldAlmostEqual, 6.)
		test.That(t, c.Radius(), test.ShouldEqual, 1.)
		test.That(t, c.LocalSupportPoint(r3.Vector{Z: 2}), test.ShouldResemble, r3.Vector{Z: 3})
		test.That(t, c.LocalSupportPoint(r3.Vector{X: 1}), test.ShouldResemble, r3.Vector{X: 1, Z: -2})
		test.That(t, c.LocalSupportPoint(r3.Vector{}), test.ShouldResemble, r3.Vector{Z: -2})
		test.That(t, c.Core().LocalSupportPoint(r3.Vector{Z: 1}), test.ShouldResemble, r3.Vector{Z: 2})

		_, err = NewCapsuleFromLength(2, 3)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "twice the radius")
		_, err = NewCapsuleFromLength(0, 3)
		test.That(t, err, test.ShouldNotBeNil)
		_, err = NewCapsule(r3.Vector{}, r3.Vector{X: 1}, -1)
		test.That(t, err, test.ShouldNotBeNil)

		var _ Rounded = c
	})
}

func TestConvex(t *testing.T) {
	_, err := NewConvex(nil)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewConvex([]r3.Vector{{X: math.NaN()}})
	test.That(t, err, test.ShouldNotBeNil)

	pts := []r3.Vector{{X: 1}, {Y: 1}, {X: 1}, {X: -1, Y: -1}, {Y: 1}}
	c, err := NewConvex(pts)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Kind(), test.ShouldEqual, KindConvex)
	test.That(t, c.Points(), test.ShouldResemble, []r3.Vector{{X: 1}, {Y: 1}, {X: -1, Y: -1}})
	test.That(t, c.LocalSupportPoint(r3.Vector{X: 1, Y: 1}), test.ShouldResemble, r3.Vector{X: 1})
	test.That(t, c.LocalSupportPoint(r3.Vector{X: -1}), test.ShouldResemble, r3.Vector{X: -1, Y: -1})
	test.That(t, c.LocalSupportPoint(r3.Vector{}), test.ShouldResemble, r3.Vector{X: 1})
}

func TestShapeKindString(t *testing.T) {
	test.That(t, KindCapsule.String(), test.ShouldEqual, "capsule")
	test.That(t, ShapeKind(42).String(), test.ShouldEqual, "ShapeKind(42)")
}
