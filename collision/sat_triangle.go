package collision

import (
	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/spatialmath"
)

// FindCuboidTriangleSeparatingEdge tests the cross products of cube1's axes with each edge of tri2 (ab, bc then ca),
// 9 axes in all, each tried in both directions.
func FindCuboidTriangleSeparatingEdge(
	cube1 *spatialmath.Cuboid,
	tri2 *spatialmath.Triangle,
	pos12 spatialmath.Pose,
) (SeparationResult, error) {
	res := cuboidTriangleSeparatingEdge(cube1, tri2, newRelativePose(pos12))
	if !res.valid() {
		return res, newNoSeparatingAxisError(cube1, tri2)
	}
	return res, nil
}

func cuboidTriangleSeparatingEdge(cube1 *spatialmath.Cuboid, tri2 *spatialmath.Triangle, pos relativePose) SeparationResult {
	var axes axisSet
	for _, edge := range tri2.Edges() {
		e := pos.rotate(edge)
		// x, y and z crossed with the edge
		axes.add(r3.Vector{X: 0, Y: -e.Z, Z: e.Y}, EdgeCross, true)
		axes.add(r3.Vector{X: e.Z, Y: 0, Z: -e.X}, EdgeCross, true)
		axes.add(r3.Vector{X: -e.Y, Y: e.X, Z: 0}, EdgeCross, true)
	}
	return maxSeparation(cube1, tri2, pos, axes.slice())
}

// FindTriangleSupportMapSeparatingNormal2D tests the outward edge normals of tri1 against any support mapped shape.
// Zero length edges contribute no axis; if all three are degenerate ErrNoSeparatingAxis is returned.
func FindTriangleSupportMapSeparatingNormal2D(
	tri1 *spatialmath.Triangle,
	shape2 spatialmath.SupportMap,
	pos12 spatialmath.Pose,
) (SeparationResult, error) {
	res := triangleSupportMapSeparatingNormal2D(tri1, shape2, newRelativePose(pos12))
	if !res.valid() {
		return res, ErrNoSeparatingAxis
	}
	return res, nil
}

func triangleSupportMapSeparatingNormal2D(tri1 *spatialmath.Triangle, shape2 spatialmath.SupportMap, pos relativePose) SeparationResult {
	var axes axisSet
	for i := 0; i < 3; i++ {
		if n, ok := tri1.EdgeNormal2D(i); ok {
			axes.add(n, FaceShape1, false)
		}
	}
	return maxSeparation(tri1, shape2, pos, axes.slice())
}

// FindTriangleCuboidSeparatingNormal2D tests the edge normals of tri1 against cube2.
func FindTriangleCuboidSeparatingNormal2D(
	tri1 *spatialmath.Triangle,
	cube2 *spatialmath.Cuboid,
	pos12 spatialmath.Pose,
) (SeparationResult, error) {
	return FindTriangleSupportMapSeparatingNormal2D(tri1, cube2, pos12)
}

// FindTriangleCuboidSeparatingNormal3D tests the face normal of tri1 against cube2. The triangle has no thickness, so the
// normal is tried on both sides.
func FindTriangleCuboidSeparatingNormal3D(
	tri1 *spatialmath.Triangle,
	cube2 *spatialmath.Cuboid,
	pos12 spatialmath.Pose,
) (SeparationResult, error) {
	return FindPointCuboidSeparatingNormal(tri1.Points()[0], tri1.Normal(), cube2, pos12)
}

// FindPointCuboidSeparatingNormal tests the plane through pt1 with normal normal1, on both sides, against cube2.
// A zero normal yields ErrNoSeparatingAxis.
func FindPointCuboidSeparatingNormal(
	pt1, normal1 r3.Vector,
	cube2 *spatialmath.Cuboid,
	pos12 spatialmath.Pose,
) (SeparationResult, error) {
	res := pointSupportMapSeparatingNormal(pt1, normal1, cube2, newRelativePose(pos12))
	if !res.valid() {
		return res, ErrNoSeparatingAxis
	}
	return res, nil
}

func pointSupportMapSeparatingNormal(pt1, normal1 r3.Vector, shape2 spatialmath.SupportMap, pos relativePose) SeparationResult {
	best := noSeparation()
	n, ok := unitAxis(normal1)
	if !ok {
		return best
	}
	for _, axis1 := range [2]r3.Vector{n, n.Mul(-1)} {
		pt2 := pos.transformPoint(shape2.LocalSupportPoint(pos.inverseRotate(axis1.Mul(-1))))
		best = better(best, SeparationResult{Distance: pt2.Sub(pt1).Dot(axis1), Axis: axis1, Source: FaceShape1})
	}
	return best
}

// FindTriangleCuboidSeparatingNormalTwoWay tests the normals of both tri1 and cube2: the triangle's edge normals (2D) or
// face normal (3D), then the cuboid's face normals. Ties keep the triangle's axis.
func FindTriangleCuboidSeparatingNormalTwoWay(
	tri1 *spatialmath.Triangle,
	cube2 *spatialmath.Cuboid,
	pos12 spatialmath.Pose,
	dim Dimension,
) (SeparationResult, error) {
	if !dim.valid() {
		return noSeparation(), newInvalidInputError("unsupported dimension %v", dim)
	}
	res := twoWay(triangleOneWay, cuboidOneWay)(tri1, cube2, newRelativePose(pos12), dim)
	if !res.valid() {
		return res, newNoSeparatingAxisError(tri1, cube2)
	}
	return res, nil
}
