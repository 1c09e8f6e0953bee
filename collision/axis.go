package collision

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Candidate axes shorter than this are considered degenerate and are skipped.
const axisEpsilon = 1e-9

// The largest candidate set any pair builds: 9 edge cross products plus the closest points direction, with headroom.
const maxCandidateAxes = 16

// AxisSource records which feature a candidate axis was derived from.
type AxisSource int

const (
	// AxisSourceNone marks a result which has no axis.
	AxisSourceNone AxisSource = iota
	// FaceShape1 is a face (2D: edge) normal of the first shape.
	FaceShape1
	// FaceShape2 is a face (2D: edge) normal of the second shape.
	FaceShape2
	// EdgeCross is the cross product of an edge of each shape.
	EdgeCross
	// ClosestPoints is the direction between the closest points of the shapes' cores.
	ClosestPoints
)

func (s AxisSource) String() string {
	switch s {
	case AxisSourceNone:
		return "none"
	case FaceShape1:
		return "face1"
	case FaceShape2:
		return "face2"
	case EdgeCross:
		return "edge_cross"
	case ClosestPoints:
		return "closest_points"
	default:
		return fmt.Sprintf("AxisSource(%d)", int(s))
	}
}

// swap returns the source as seen with the two shapes exchanged.
func (s AxisSource) swap() AxisSource {
	switch s {
	case FaceShape1:
		return FaceShape2
	case FaceShape2:
		return FaceShape1
	case AxisSourceNone, EdgeCross, ClosestPoints:
		return s
	default:
		return s
	}
}

// CandidateAxis is a direction, in the first shape's frame, along which the shapes may be separated.
// Dir need not be normalized. A Bidirectional axis is tried both ways and the better sign kept.
type CandidateAxis struct {
	Dir           r3.Vector
	Source        AxisSource
	Bidirectional bool
}

// SeparationResult is the best signed separation found over a set of candidate axes.
// Axis is a unit vector in the first shape's frame pointing from the first shape toward the second.
// A negative Distance is a penetration depth along Axis.
type SeparationResult struct {
	Distance float64
	Axis     r3.Vector
	Source   AxisSource
}

func noSeparation() SeparationResult {
	return SeparationResult{Distance: math.Inf(-1)}
}

// valid reports whether the result came from at least one candidate axis.
func (r SeparationResult) valid() bool {
	return r.Source != AxisSourceNone
}

// better returns the candidate if it is strictly greater than the current best; ties keep the current best.
func better(best, candidate SeparationResult) SeparationResult {
	if candidate.valid() && candidate.Distance > best.Distance {
		return candidate
	}
	return best
}

// axisSet is a fixed capacity list of candidate axes, kept on the stack.
type axisSet struct {
	axes [maxCandidateAxes]CandidateAxis
	n    int
}

func (s *axisSet) add(dir r3.Vector, source AxisSource, bidirectional bool) {
	if s.n == len(s.axes) {
		panic("collision: candidate axis set overflow")
	}
	s.axes[s.n] = CandidateAxis{Dir: dir, Source: source, Bidirectional: bidirectional}
	s.n++
}

func (s *axisSet) slice() []CandidateAxis {
	return s.axes[:s.n]
}
