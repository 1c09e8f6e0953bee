package collision

import (
	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/spatialmath"
)

// unit vectors of a cuboid's local axes.
var cuboidAxes = [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}

// FindCuboidSupportMapSeparatingNormal tests the face normals of cube1 (both signs of each local axis; X and Y only in
// 2D) against any support mapped shape placed at pos12 in the cube's frame.
func FindCuboidSupportMapSeparatingNormal(
	cube1 *spatialmath.Cuboid,
	shape2 spatialmath.SupportMap,
	pos12 spatialmath.Pose,
	dim Dimension,
) (SeparationResult, error) {
	if !dim.valid() {
		return noSeparation(), newInvalidInputError("unsupported dimension %v", dim)
	}
	return cuboidSupportMapSeparatingNormal(cube1, shape2, newRelativePose(pos12), dim), nil
}

func cuboidSupportMapSeparatingNormal(
	cube1 *spatialmath.Cuboid,
	shape2 spatialmath.SupportMap,
	pos relativePose,
	dim Dimension,
) SeparationResult {
	best := noSeparation()
	for i := 0; i < int(dim); i++ {
		for _, sign := range [2]float64{-1, 1} {
			axis1 := cuboidAxes[i].Mul(sign)
			pt2 := pos.transformPoint(shape2.LocalSupportPoint(pos.inverseRotate(axis1.Mul(-1))))
			sep := component(pt2, i)*sign - cube1.HalfSize(i)
			best = better(best, SeparationResult{Distance: sep, Axis: axis1, Source: FaceShape1})
		}
	}
	return best
}

// FindCuboidCuboidSeparatingEdge tests the 9 cross products of cube1's axes with cube2's axes. Each axis is tried in
// both directions. Parallel axis pairs are skipped.
func FindCuboidCuboidSeparatingEdge(cube1, cube2 *spatialmath.Cuboid, pos12 spatialmath.Pose) (SeparationResult, error) {
	res := cuboidCuboidSeparatingEdge(cube1, cube2, newRelativePose(pos12))
	if !res.valid() {
		return res, newNoSeparatingAxisError(cube1, cube2)
	}
	return res, nil
}

func cuboidCuboidSeparatingEdge(cube1, cube2 *spatialmath.Cuboid, pos relativePose) SeparationResult {
	var axes axisSet
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axes.add(cuboidAxes[i].Cross(pos.rot.Col(j)), EdgeCross, true)
		}
	}
	return maxSeparation(cube1, cube2, pos, axes.slice())
}

func component(v r3.Vector, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
