// Package collision implements narrow-phase queries between pairs of convex shapes: a separating axis search over the
// shapes' support mappings, and a time of impact solver for shapes in linear motion built on top of it.
package collision

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/spatialmath"
)

// SupportMapSeparation returns the signed separation of s1 and s2 along the unit axis, given in s1's frame and pointing
// toward s2. pos12 is the pose of s2 in s1's frame. A positive value means a gap of at least that size exists.
func SupportMapSeparation(s1, s2 spatialmath.SupportMap, pos12 spatialmath.Pose, axis r3.Vector) float64 {
	return supportMapSeparation(s1, s2, newRelativePose(pos12), axis)
}

func supportMapSeparation(s1, s2 spatialmath.SupportMap, pos relativePose, n r3.Vector) float64 {
	pt1 := s1.LocalSupportPoint(n)
	pt2 := pos.transformPoint(s2.LocalSupportPoint(pos.inverseRotate(n.Mul(-1))))
	return pt2.Sub(pt1).Dot(n)
}

// bidirectionalSeparation evaluates both n and -n and keeps the larger; ties keep -n.
func bidirectionalSeparation(s1, s2 spatialmath.SupportMap, pos relativePose, n r3.Vector) (float64, r3.Vector) {
	sep1 := supportMapSeparation(s1, s2, pos, n)
	neg := n.Mul(-1)
	sep2 := supportMapSeparation(s1, s2, pos, neg)
	if sep1 > sep2 {
		return sep1, n
	}
	return sep2, neg
}

// MaxSeparation evaluates every candidate axis and returns the greatest separation found. Every axis is tried; there is
// no early exit once a separating axis is seen. Near-zero axes are skipped, and if no axis is usable ErrNoSeparatingAxis
// is returned. When two axes give the same separation the earlier one wins.
func MaxSeparation(s1, s2 spatialmath.SupportMap, pos12 spatialmath.Pose, axes []CandidateAxis) (SeparationResult, error) {
	res := maxSeparation(s1, s2, newRelativePose(pos12), axes)
	if !res.valid() {
		return res, ErrNoSeparatingAxis
	}
	return res, nil
}

func maxSeparation(s1, s2 spatialmath.SupportMap, pos relativePose, axes []CandidateAxis) SeparationResult {
	best := noSeparation()
	for _, axis := range axes {
		n, ok := unitAxis(axis.Dir)
		if !ok {
			continue
		}
		var sep float64
		if axis.Bidirectional {
			sep, n = bidirectionalSeparation(s1, s2, pos, n)
		} else {
			sep = supportMapSeparation(s1, s2, pos, n)
		}
		best = better(best, SeparationResult{Distance: sep, Axis: n, Source: axis.Source})
	}
	return best
}

// unitAxis normalizes dir, reporting false for directions too short (or not finite) to be trusted.
func unitAxis(dir r3.Vector) (r3.Vector, bool) {
	norm := dir.Norm()
	if norm < axisEpsilon || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return r3.Vector{}, false
	}
	return dir.Mul(1 / norm), true
}
