package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Triangle is a flat convex shape defined by three points in its local frame. In 2D the points lie in the XY plane.
type Triangle struct {
	p0 r3.Vector
	p1 r3.Vector
	p2 r3.Vector

	normal r3.Vector
}

// NewTriangle creates a triangle. Degenerate triangles are allowed; their normal is zero.
func NewTriangle(p0, p1, p2 r3.Vector) *Triangle {
	return &Triangle{
		p0:     p0,
		p1:     p1,
		p2:     p2,
		normal: PlaneNormal(p0, p1, p2),
	}
}

// Kind returns KindTriangle.
func (t *Triangle) Kind() ShapeKind {
	return KindTriangle
}

// String returns a human readable string that represents the triangle.
func (t *Triangle) String() string {
	return fmt.Sprintf("Type: Triangle, Points: %v %v %v", t.p0, t.p1, t.p2)
}

// Points returns the three vertices a, b and c.
func (t *Triangle) Points() []r3.Vector {
	return []r3.Vector{t.p0, t.p1, t.p2}
}

// Normal returns the unit face normal following the right hand rule over (a, b, c).
func (t *Triangle) Normal() r3.Vector {
	return t.normal
}

// Edges returns the edge vectors b-a, c-b and a-c.
func (t *Triangle) Edges() [3]r3.Vector {
	return [3]r3.Vector{t.p1.Sub(t.p0), t.p2.Sub(t.p1), t.p0.Sub(t.p2)}
}

// LocalSupportPoint returns the vertex with the greatest dot product with dir. Ties keep the earlier vertex.
func (t *Triangle) LocalSupportPoint(dir r3.Vector) r3.Vector {
	best := t.p0
	bestDot := t.p0.Dot(dir)
	if d := t.p1.Dot(dir); d > bestDot {
		best, bestDot = t.p1, d
	}
	if d := t.p2.Dot(dir); d > bestDot {
		best = t.p2
	}
	return best
}

// EdgeNormal2D returns the unit outward normal, in the XY plane, of edge i (0: ab, 1: bc, 2: ca).
// Outward is decided from the signed area so either winding gives the same normals.
// The second return value is false for an edge of zero length.
func (t *Triangle) EdgeNormal2D(i int) (r3.Vector, bool) {
	e := t.Edges()[i]
	e.Z = 0
	length := e.Norm()
	if length < floatEpsilon {
		return r3.Vector{}, false
	}
	n := r3.Vector{X: e.Y / length, Y: -e.X / length}
	if t.signedArea2D() < 0 {
		n = n.Mul(-1)
	}
	return n, true
}

// signedArea2D returns twice the signed area of the triangle projected onto the XY plane; positive when counterclockwise.
func (t *Triangle) signedArea2D() float64 {
	ab := t.p1.Sub(t.p0)
	ac := t.p2.Sub(t.p0)
	return ab.X*ac.Y - ab.Y*ac.X
}

// ClosestPointToPoint takes a point, and returns the closest point on the triangle to the given point.
func (t *Triangle) ClosestPointToPoint(point r3.Vector) r3.Vector {
	closestPtInside, inside := t.ClosestInsidePoint(point)
	if inside {
		return closestPtInside
	}

	// If the closest point is outside the triangle, it must be on an edge, so we
	// check each triangle edge for a closest point to the point pt.
	closestPt := ClosestPointSegmentPoint(t.p0, t.p1, point)
	bestDist := point.Sub(closestPt).Norm2()

	newPt := ClosestPointSegmentPoint(t.p1, t.p2, point)
	if newDist := point.Sub(newPt).Norm2(); newDist < bestDist {
		closestPt = newPt
		bestDist = newDist
	}

	newPt = ClosestPointSegmentPoint(t.p2, t.p0, point)
	if newDist := point.Sub(newPt).Norm2(); newDist < bestDist {
		return newPt
	}
	return closestPt
}

// ClosestInsidePoint returns the projection of point onto the triangle's plane, and whether that projection lies
// within the triangle. A degenerate triangle never reports an inside point.
func (t *Triangle) ClosestInsidePoint(point r3.Vector) (r3.Vector, bool) {
	eps := 1e-6

	// Parametrize the triangle s.t. a point inside the triangle is
	// Q = p0 + u * e0 + v * e1, when 0 <= u <= 1, 0 <= v <= 1, and
	// 0 <= u + v <= 1. Let e0 = (p1 - p0) and e1 = (p2 - p0).
	e0 := t.p1.Sub(t.p0)
	e1 := t.p2.Sub(t.p0)
	a := e0.Norm2()
	b := e0.Dot(e1)
	c := e1.Norm2()
	d := point.Sub(t.p0)
	det := a*c - b*b
	if det < floatEpsilon {
		return point, false
	}
	u := (c*e0.Dot(d) - b*e1.Dot(d)) / det
	v := (-b*e0.Dot(d) + a*e1.Dot(d)) / det
	inside := (0 <= u+eps) && (u <= 1+eps) && (0 <= v+eps) && (v <= 1+eps) && (u+v <= 1+eps)
	return t.p0.Add(e0.Mul(u)).Add(e1.Mul(v)), inside
}
