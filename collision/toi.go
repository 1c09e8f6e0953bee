package collision

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"

	"go.viam.com/narrowphase/spatialmath"
	"go.viam.com/narrowphase/utils"
)

// TOIStatus describes how a time of impact query ended.
type TOIStatus int

const (
	// TOIConverged means the shapes were brought within tolerance of the target distance.
	TOIConverged TOIStatus = iota
	// TOIAlreadyPenetrating means the shapes were already within the target distance at time 0.
	TOIAlreadyPenetrating
	// TOINoContact means the shapes do not come within the target distance before the time horizon.
	TOINoContact
	// TOIOutOfIterations means the iteration budget ran out. The reported time is a safe lower bound on contact.
	TOIOutOfIterations
)

func (s TOIStatus) String() string {
	switch s {
	case TOIConverged:
		return "converged"
	case TOIAlreadyPenetrating:
		return "already_penetrating"
	case TOINoContact:
		return "no_contact"
	case TOIOutOfIterations:
		return "out_of_iterations"
	default:
		return fmt.Sprintf("TOIStatus(%d)", int(s))
	}
}

// TOI describes the first contact between two moving shapes.
type TOI struct {
	// Time of contact, in the same units as the velocities.
	Time float64
	// Witness1 is the contact point on shape 1 in shape 1's local frame.
	Witness1 r3.Vector
	// Witness2 is the contact point on shape 2 in shape 2's local frame.
	Witness2 r3.Vector
	// Normal1 is the contact normal in shape 1's local frame, pointing toward shape 2.
	Normal1 r3.Vector
	// Normal2 is the contact normal in shape 2's local frame, pointing toward shape 1.
	Normal2 r3.Vector
	Status  TOIStatus
}

// TimeOfImpact computes when two shapes, each moving at a constant linear velocity from its starting pose with a fixed
// orientation, first come within targetDistance of each other, up to maxTime (which may be +Inf). Velocities are in the
// world frame. A nil TOI with a nil error means the shapes do not come that close before maxTime.
// opts may be nil to use the defaults.
func TimeOfImpact(
	pose1 spatialmath.Pose,
	vel1 r3.Vector,
	shape1 spatialmath.Shape,
	pose2 spatialmath.Pose,
	vel2 r3.Vector,
	shape2 spatialmath.Shape,
	maxTime, targetDistance float64,
	opts *TOIOptions,
) (*TOI, error) {
	if opts == nil {
		opts = NewBasicTOIOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := validateTOIInputs(pose1, vel1, shape1, pose2, vel2, shape2, maxTime, targetDistance, opts.Dimension); err != nil {
		return nil, err
	}

	pos12 := newRelativePose(spatialmath.PoseBetween(pose1, pose2))
	vrel := pose1.Orientation().RotationMatrix().MulT(vel2.Sub(vel1))

	toi, err := conservativeAdvancement(shape1, shape2, pos12, vrel, maxTime, targetDistance, opts)
	if err != nil {
		return nil, err
	}
	if toi.Status == TOINoContact {
		return nil, nil //nolint:nilnil
	}
	return toi, nil
}

// conservativeAdvancement steps time forward by the current separation divided by the closing speed along the current
// axis. Under pure translation the separation along a fixed axis is linear in time and never exceeds the true
// distance, so a step never passes the first contact.
func conservativeAdvancement(
	s1, s2 spatialmath.Shape,
	pos12 relativePose,
	vrel r3.Vector,
	maxTime, target float64,
	opts *TOIOptions,
) (*TOI, error) {
	t := 0.
	var res SeparationResult
	var pos relativePose
	for iter := 0; iter < opts.MaxIterations; iter++ {
		pos = pos12.translated(vrel.Mul(t))
		var err error
		res, err = findLocalSeparatingAxis(s1, s2, pos, opts.Dimension)
		if err != nil {
			return nil, err
		}

		if iter == 0 && res.Distance <= target {
			return newTOI(s1, s2, pos, res.Axis, 0, TOIAlreadyPenetrating), nil
		}
		if iter > 0 && res.Distance-target <= opts.Tolerance {
			return newTOI(s1, s2, pos, res.Axis, t, TOIConverged), nil
		}

		closing := -vrel.Dot(res.Axis)
		if closing <= 0 {
			// the axis separates the shapes and they are not approaching along it
			return &TOI{Status: TOINoContact}, nil
		}
		t += (res.Distance - target) / closing
		if t > maxTime {
			return &TOI{Status: TOINoContact}, nil
		}
	}

	// measure again at the reported time
	pos = pos12.translated(vrel.Mul(t))
	res, err := findLocalSeparatingAxis(s1, s2, pos, opts.Dimension)
	if err != nil {
		return nil, err
	}
	opts.logger().Debugw("time of impact did not converge",
		"iterations", opts.MaxIterations, "time", t, "separation", res.Distance, "target", target)
	return newTOI(s1, s2, pos, res.Axis, t, TOIOutOfIterations), nil
}

func newTOI(s1, s2 spatialmath.Shape, pos relativePose, n r3.Vector, t float64, status TOIStatus) *TOI {
	w1, w2, n1, n2 := witnesses(s1, s2, pos, n)
	return &TOI{Time: t, Witness1: w1, Witness2: w2, Normal1: n1, Normal2: n2, Status: status}
}

func validateTOIInputs(
	pose1 spatialmath.Pose,
	vel1 r3.Vector,
	shape1 spatialmath.Shape,
	pose2 spatialmath.Pose,
	vel2 r3.Vector,
	shape2 spatialmath.Shape,
	maxTime, targetDistance float64,
	dim Dimension,
) error {
	var err error
	if shape1 == nil || shape2 == nil {
		err = multierr.Append(err, newInvalidInputError("shapes must not be nil"))
	}
	if math.IsNaN(maxTime) || maxTime < 0 {
		err = multierr.Append(err, newInvalidInputError("max time must be non-negative, got %v", maxTime))
	}
	if !utils.IsFinite(targetDistance) || targetDistance < 0 {
		err = multierr.Append(err, newInvalidInputError("target distance must be finite and non-negative, got %v", targetDistance))
	}
	err = multierr.Append(err, validateMotion("shape 1", pose1, vel1, dim))
	err = multierr.Append(err, validateMotion("shape 2", pose2, vel2, dim))
	return err
}

// validateMotion checks that a pose and velocity are finite and, in 2D, confined to the XY plane.
func validateMotion(name string, pose spatialmath.Pose, vel r3.Vector, dim Dimension) error {
	if pose == nil {
		return newInvalidInputError("%s pose must not be nil", name)
	}
	var err error
	pt := pose.Point()
	q := pose.Orientation().Quaternion()
	if !utils.IsFinite(pt.X, pt.Y, pt.Z, q.Real, q.Imag, q.Jmag, q.Kmag) {
		err = multierr.Append(err, newInvalidInputError("%s pose must be finite", name))
	}
	if !utils.IsFinite(vel.X, vel.Y, vel.Z) {
		err = multierr.Append(err, newInvalidInputError("%s velocity must be finite", name))
	}
	if dim == Dim2 {
		if !utils.Float64AlmostEqual(pt.Z, 0, planarEpsilon) || !utils.Float64AlmostEqual(vel.Z, 0, planarEpsilon) {
			err = multierr.Append(err, newInvalidInputError("%s must stay in the XY plane in 2D", name))
		}
		if !utils.Float64AlmostEqual(q.Imag, 0, planarEpsilon) || !utils.Float64AlmostEqual(q.Jmag, 0, planarEpsilon) {
			err = multierr.Append(err, newInvalidInputError("%s may only rotate about Z in 2D", name))
		}
	}
	return err
}

// Out of plane components below this are treated as zero in 2D.
const planarEpsilon = 1e-9
