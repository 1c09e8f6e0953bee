package collision

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/narrowphase/spatialmath"
	"go.viam.com/narrowphase/utils"
)

const (
	gjkMaxIterations = 64
	gjkEpsilon       = 1e-10
	// squared length below which the closest point is taken to be the origin.
	gjkIntersectEpsilon = 1e-20
	gjkFlatEpsilon      = 1e-18
	// squared length or area below which a simplex feature is treated as degenerate.
	gjkDegenerateEpsilon = 1e-30
)

// gjkMinkowskiSupport returns support_2(d) - support_1(-d), a support point of the Minkowski difference B - A in
// direction d, where B is s2 placed by pos and everything is in s1's frame.
func gjkMinkowskiSupport(s1, s2 spatialmath.SupportMap, pos relativePose, d r3.Vector) r3.Vector {
	pt2 := pos.transformPoint(s2.LocalSupportPoint(pos.inverseRotate(d)))
	return pt2.Sub(s1.LocalSupportPoint(d.Mul(-1)))
}

// gjkClosestDirection runs GJK on the difference of the two support maps, starting from seed. It returns the vector
// between the closest points (pointing from s1 toward s2) and true when the shapes are disjoint. When they overlap the
// last non-zero search vector is returned with false; if there was none, +X is returned.
func gjkClosestDirection(s1, s2 spatialmath.SupportMap, pos relativePose, seed r3.Vector) (r3.Vector, bool) {
	d := seed
	if d.Norm2() < utils.Square(axisEpsilon) {
		d = r3.Vector{X: 1}
	}

	var s simplex
	v := gjkMinkowskiSupport(s1, s2, pos, d)
	s.push(v)
	last := r3.Vector{X: 1}

	for iter := 0; iter < gjkMaxIterations; iter++ {
		vv := v.Norm2()
		if vv < gjkIntersectEpsilon {
			return last, false
		}
		last = v

		w := gjkMinkowskiSupport(s1, s2, pos, v.Mul(-1))
		if vv-v.Dot(w) <= gjkEpsilon*vv {
			break
		}
		s.push(w)
		v = s.reduce()
	}
	return v, true
}

// simplex holds up to four points of the Minkowski difference.
type simplex struct {
	pts [4]r3.Vector
	n   int
}

func (s *simplex) push(p r3.Vector) {
	s.pts[s.n] = p
	s.n++
}

func (s *simplex) set(pts ...r3.Vector) {
	s.n = copy(s.pts[:], pts)
}

// reduce shrinks the simplex to the feature nearest the origin and returns the nearest point on it.
// A tetrahedron enclosing the origin is kept whole and the zero vector returned.
func (s *simplex) reduce() r3.Vector {
	a, b, c, d := s.pts[0], s.pts[1], s.pts[2], s.pts[3]
	switch s.n {
	case 1:
		return a
	case 2:
		return s.reduceSegment(a, b)
	case 3:
		return s.reduceTriangle(a, b, c)
	default:
		return s.reduceTetrahedron(a, b, c, d)
	}
}

func (s *simplex) reduceSegment(a, b r3.Vector) r3.Vector {
	ab := b.Sub(a)
	t := 0.
	if l2 := ab.Norm2(); l2 > gjkDegenerateEpsilon {
		t = -a.Dot(ab) / l2
	}
	switch {
	case t <= 0:
		s.set(a)
		return a
	case t >= 1:
		s.set(b)
		return b
	}
	s.set(a, b)
	return a.Add(ab.Mul(t))
}

// reduceTriangle projects the origin onto the triangle's plane. A projection outside the triangle (or a triangle with
// no area) means the nearest point is on an edge.
func (s *simplex) reduceTriangle(a, b, c r3.Vector) r3.Vector {
	n := b.Sub(a).Cross(c.Sub(a))
	if nn := n.Norm2(); nn > gjkDegenerateEpsilon {
		// barycentric weights of a, b and c
		u := b.Cross(c).Dot(n) / nn
		v := c.Cross(a).Dot(n) / nn
		w := 1 - u - v
		if u >= 0 && v >= 0 && w >= 0 {
			s.set(a, b, c)
			return a.Mul(u).Add(b.Mul(v)).Add(c.Mul(w))
		}
	}
	edges := [3][2]r3.Vector{{a, b}, {b, c}, {c, a}}
	best := math.Inf(1)
	var bestPt r3.Vector
	var bestS simplex
	for _, e := range edges {
		var sub simplex
		pt := sub.reduceSegment(e[0], e[1])
		if dist := pt.Norm2(); dist < best {
			best, bestPt, bestS = dist, pt, sub
		}
	}
	*s = bestS
	return bestPt
}

// reduceTetrahedron compares the signed volume of the tetrahedron with the volumes obtained by swapping each vertex
// for the origin; all of the same sign means the origin is enclosed. Otherwise the nearest face wins.
func (s *simplex) reduceTetrahedron(a, b, c, d r3.Vector) r3.Vector {
	vol := b.Sub(a).Dot(c.Sub(a).Cross(d.Sub(a)))
	if math.Abs(vol) > gjkFlatEpsilon {
		enclosed := true
		for _, sub := range [4]float64{
			b.Dot(c.Cross(d)),
			a.Mul(-1).Dot(c.Sub(a).Cross(d.Sub(a))),
			b.Sub(a).Dot(a.Mul(-1).Cross(d.Sub(a))),
			b.Sub(a).Dot(c.Sub(a).Cross(a.Mul(-1))),
		} {
			if sub*vol < 0 {
				enclosed = false
				break
			}
		}
		if enclosed {
			return r3.Vector{}
		}
	}
	faces := [4][3]r3.Vector{{a, b, c}, {a, b, d}, {a, c, d}, {b, c, d}}
	best := math.Inf(1)
	var bestPt r3.Vector
	var bestS simplex
	for _, f := range faces {
		var sub simplex
		pt := sub.reduceTriangle(f[0], f[1], f[2])
		if dist := pt.Norm2(); dist < best {
			best, bestPt, bestS = dist, pt, sub
		}
	}
	*s = bestS
	return bestPt
}

// core returns the support map GJK should run on: the inner shape of a rounded shape, or the shape itself.
func core(s spatialmath.Shape) spatialmath.SupportMap {
	if r, ok := s.(spatialmath.Rounded); ok {
		return r.Core()
	}
	return s
}

// refineWithClosestPoints adds the direction between the closest points of the shapes' cores to the search. A ball
// against a cuboid, triangle, segment, capsule or ball has a closed form; other pairs run GJK seeded with the best
// result so far. For disjoint shapes the added axis makes the separation equal to the Euclidean distance.
func refineWithClosestPoints(s1, s2 spatialmath.Shape, pos relativePose, best SeparationResult) SeparationResult {
	dir, ok := closestPointsDirection(s1, s2, pos)
	if !ok {
		seed := pos.trans.Mul(-1)
		if best.valid() {
			seed = best.Axis.Mul(-1)
		}
		dir, _ = gjkClosestDirection(core(s1), core(s2), pos, seed)
	}
	var axes axisSet
	axes.add(dir, ClosestPoints, false)
	return better(best, maxSeparation(s1, s2, pos, axes.slice()))
}

// closestPointsDirection returns the vector from s1's core to s2's core, in s1's frame, when one of the shapes is a
// ball and the other core has a closed form closest point. Cores which touch report false.
func closestPointsDirection(s1, s2 spatialmath.Shape, pos relativePose) (r3.Vector, bool) {
	if s2.Kind() == spatialmath.KindBall {
		center := pos.trans
		if q, ok := closestPointOnCore(s1, center); ok {
			return separatedDirection(center.Sub(q))
		}
	}
	if s1.Kind() == spatialmath.KindBall {
		center := pos.inverse().trans
		if q, ok := closestPointOnCore(s2, center); ok {
			return separatedDirection(pos.rotate(q.Sub(center)))
		}
	}
	return r3.Vector{}, false
}

// closestPointOnCore returns the point of s's core nearest pt, both in s's frame.
func closestPointOnCore(s spatialmath.Shape, pt r3.Vector) (r3.Vector, bool) {
	switch c := core(s).(type) {
	case *spatialmath.Cuboid:
		return c.ClosestPoint(pt), true
	case *spatialmath.Triangle:
		return c.ClosestPointToPoint(pt), true
	case *spatialmath.Segment:
		return c.ClosestPoint(pt), true
	}
	if s.Kind() == spatialmath.KindBall {
		return r3.Vector{}, true
	}
	return r3.Vector{}, false
}

func separatedDirection(d r3.Vector) (r3.Vector, bool) {
	if d.Norm2() < utils.Square(axisEpsilon) {
		return r3.Vector{}, false
	}
	return d, true
}
