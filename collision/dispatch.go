package collision

import (
	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/spatialmath"
)

// separatingAxisFunc searches a set of candidate axes for a pair of shapes, with pos the pose of s2 in s1's frame.
// It returns an invalid result if none of its axes were usable.
type separatingAxisFunc func(s1, s2 spatialmath.Shape, pos relativePose, dim Dimension) SeparationResult

type pairKey struct {
	dim          Dimension
	kind1, kind2 spatialmath.ShapeKind
}

// separatingAxisFuncs holds the axis search used for each ordered pair of shape kinds. Pairs without an entry fall back
// to supportMapSeparatingAxis. It is only written during init.
var separatingAxisFuncs = map[pairKey]separatingAxisFunc{}

// kinds which have no axes of their own; they are searched by the closest points refinement only.
var roundedOrGenericKinds = []spatialmath.ShapeKind{
	spatialmath.KindBall,
	spatialmath.KindSegment,
	spatialmath.KindCapsule,
	spatialmath.KindConvex,
}

func init() {
	for _, dim := range []Dimension{Dim2, Dim3} {
		for _, kind := range roundedOrGenericKinds {
			registerPair(dim, spatialmath.KindCuboid, kind, cuboidOneWay)
			registerPair(dim, spatialmath.KindTriangle, kind, triangleOneWay)
		}
		registerPair(dim, spatialmath.KindTriangle, spatialmath.KindTriangle, twoWay(triangleOneWay, triangleOneWay))
	}

	registerPair(Dim2, spatialmath.KindCuboid, spatialmath.KindCuboid, twoWay(cuboidOneWay, cuboidOneWay))
	registerPair(Dim2, spatialmath.KindTriangle, spatialmath.KindCuboid, twoWay(triangleOneWay, cuboidOneWay))

	registerPair(Dim3, spatialmath.KindCuboid, spatialmath.KindCuboid,
		combine(twoWay(cuboidOneWay, cuboidOneWay), cuboidCuboidEdges))
	registerPair(Dim3, spatialmath.KindTriangle, spatialmath.KindCuboid,
		combine(twoWay(triangleOneWay, cuboidOneWay), swapped(cuboidTriangleEdges)))
}

// registerPair adds f for (kind1, kind2) and its mirror for (kind2, kind1).
func registerPair(dim Dimension, kind1, kind2 spatialmath.ShapeKind, f separatingAxisFunc) {
	separatingAxisFuncs[pairKey{dim, kind1, kind2}] = f
	if kind1 != kind2 {
		separatingAxisFuncs[pairKey{dim, kind2, kind1}] = swapped(f)
	}
}

// FindLocalSeparatingAxis returns the best separating axis between s1 and s2, with pos12 the pose of s2 in s1's frame.
// The candidate axes depend on the pair of shape kinds and the dimension; every pair additionally tries the direction
// between the closest points of the two shapes. For disjoint shapes the returned distance is the Euclidean distance up
// to solver tolerance, and it is never positive for overlapping shapes.
func FindLocalSeparatingAxis(s1, s2 spatialmath.Shape, pos12 spatialmath.Pose, dim Dimension) (SeparationResult, error) {
	if err := validatePair(s1, s2, dim); err != nil {
		return noSeparation(), err
	}
	return findLocalSeparatingAxis(s1, s2, newRelativePose(pos12), dim)
}

func findLocalSeparatingAxis(s1, s2 spatialmath.Shape, pos relativePose, dim Dimension) (SeparationResult, error) {
	f, ok := separatingAxisFuncs[pairKey{dim, s1.Kind(), s2.Kind()}]
	if !ok {
		f = supportMapSeparatingAxis
	}
	res := refineWithClosestPoints(s1, s2, pos, f(s1, s2, pos, dim))
	if !res.valid() {
		return res, newNoSeparatingAxisError(s1, s2)
	}
	return res, nil
}

func validatePair(s1, s2 spatialmath.Shape, dim Dimension) error {
	if s1 == nil || s2 == nil {
		return newInvalidInputError("shapes must not be nil")
	}
	if !dim.valid() {
		return newInvalidInputError("unsupported dimension %v", dim)
	}
	return nil
}

// supportMapSeparatingAxis has no axes of its own.
func supportMapSeparatingAxis(spatialmath.Shape, spatialmath.Shape, relativePose, Dimension) SeparationResult {
	return noSeparation()
}

// swapped runs f with the shapes exchanged and maps its result back into s1's frame.
func swapped(f separatingAxisFunc) separatingAxisFunc {
	return func(s1, s2 spatialmath.Shape, pos relativePose, dim Dimension) SeparationResult {
		res := f(s2, s1, pos.inverse(), dim)
		if !res.valid() {
			return res
		}
		return SeparationResult{Distance: res.Distance, Axis: pos.rotate(res.Axis).Mul(-1), Source: res.Source.swap()}
	}
}

// combine runs each search in order and keeps the strictly greatest result.
func combine(fs ...separatingAxisFunc) separatingAxisFunc {
	return func(s1, s2 spatialmath.Shape, pos relativePose, dim Dimension) SeparationResult {
		best := noSeparation()
		for _, f := range fs {
			best = better(best, f(s1, s2, pos, dim))
		}
		return best
	}
}

// twoWay runs oneWay1 on the pair and then oneWay2 on the exchanged pair. Ties keep the first shape's axis.
func twoWay(oneWay1, oneWay2 separatingAxisFunc) separatingAxisFunc {
	return combine(oneWay1, swapped(oneWay2))
}

// The one-way searches below return no result for a shape whose Kind does not match its concrete type.

func cuboidOneWay(s1, s2 spatialmath.Shape, pos relativePose, dim Dimension) SeparationResult {
	cube, ok := s1.(*spatialmath.Cuboid)
	if !ok {
		return noSeparation()
	}
	return cuboidSupportMapSeparatingNormal(cube, s2, pos, dim)
}

func triangleOneWay(s1, s2 spatialmath.Shape, pos relativePose, dim Dimension) SeparationResult {
	tri, ok := s1.(*spatialmath.Triangle)
	if !ok {
		return noSeparation()
	}
	if dim == Dim2 {
		return triangleSupportMapSeparatingNormal2D(tri, s2, pos)
	}
	return pointSupportMapSeparatingNormal(tri.Points()[0], tri.Normal(), s2, pos)
}

func cuboidCuboidEdges(s1, s2 spatialmath.Shape, pos relativePose, _ Dimension) SeparationResult {
	cube1, ok1 := s1.(*spatialmath.Cuboid)
	cube2, ok2 := s2.(*spatialmath.Cuboid)
	if !ok1 || !ok2 {
		return noSeparation()
	}
	return cuboidCuboidSeparatingEdge(cube1, cube2, pos)
}

func cuboidTriangleEdges(s1, s2 spatialmath.Shape, pos relativePose, _ Dimension) SeparationResult {
	cube, ok1 := s1.(*spatialmath.Cuboid)
	tri, ok2 := s2.(*spatialmath.Triangle)
	if !ok1 || !ok2 {
		return noSeparation()
	}
	return cuboidTriangleSeparatingEdge(cube, tri, pos)
}

// witnesses returns the support points and normals of both shapes along the unit axis n, each in its own local frame.
func witnesses(s1, s2 spatialmath.Shape, pos relativePose, n r3.Vector) (w1, w2, n1, n2 r3.Vector) {
	n2 = pos.inverseRotate(n.Mul(-1))
	return s1.LocalSupportPoint(n), s2.LocalSupportPoint(n2), n, n2
}
