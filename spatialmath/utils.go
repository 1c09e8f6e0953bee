package spatialmath

import (
	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/utils"
)

// floatEpsilon is the tolerance used when deciding that a length or area has collapsed to zero.
const floatEpsilon = 1e-12

// PlaneNormal returns the normal to the plane defined by three points, following the right hand rule.
// The normal is of unit length unless the points are collinear, in which case it is zero.
func PlaneNormal(p0, p1, p2 r3.Vector) r3.Vector {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if norm := n.Norm(); norm > floatEpsilon {
		return n.Mul(1 / norm)
	}
	return r3.Vector{}
}

// ClosestPointSegmentPoint takes a line segment and a point, and returns the point on the segment closest to the point.
func ClosestPointSegmentPoint(segA, segB, pt r3.Vector) r3.Vector {
	ab := segB.Sub(segA)
	denom := ab.Norm2()
	if denom < floatEpsilon {
		return segA
	}
	t := pt.Sub(segA).Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return segA.Add(ab.Mul(t))
}

// vectorIsFinite reports whether every component of v is finite.
func vectorIsFinite(v r3.Vector) bool {
	return utils.IsFinite(v.X, v.Y, v.Z)
}

// supportIndex returns the index of the point with the greatest dot product with dir. Ties keep the first point.
func supportIndex(pts []r3.Vector, dir r3.Vector) int {
	best := 0
	bestDot := pts[0].Dot(dir)
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Dot(dir); d > bestDot {
			best, bestDot = i, d
		}
	}
	return best
}
