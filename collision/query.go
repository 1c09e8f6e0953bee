package collision

import (
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"

	"go.viam.com/narrowphase/spatialmath"
)

// Separation returns the best separating axis between two shapes placed at world poses. The axis is expressed in
// shape 1's frame.
func Separation(
	pose1 spatialmath.Pose,
	s1 spatialmath.Shape,
	pose2 spatialmath.Pose,
	s2 spatialmath.Shape,
	dim Dimension,
) (SeparationResult, error) {
	err := multierr.Combine(
		validatePair(s1, s2, dim),
		validateStatic("shape 1", pose1, dim),
		validateStatic("shape 2", pose2, dim),
	)
	if err != nil {
		return noSeparation(), err
	}
	return findLocalSeparatingAxis(s1, s2, newRelativePose(spatialmath.PoseBetween(pose1, pose2)), dim)
}

// CollidesWith checks if the two shapes come within collisionBuffer of each other and returns true if they do.
// The separation is returned either way; a negative number is a penetration depth.
func CollidesWith(
	pose1 spatialmath.Pose,
	s1 spatialmath.Shape,
	pose2 spatialmath.Pose,
	s2 spatialmath.Shape,
	collisionBuffer float64,
	dim Dimension,
) (bool, float64, error) {
	if collisionBuffer < 0 {
		return false, 0, newInvalidInputError("collision buffer must be non-negative, got %v", collisionBuffer)
	}
	res, err := Separation(pose1, s1, pose2, s2, dim)
	if err != nil {
		return false, 0, err
	}
	return res.Distance <= collisionBuffer, res.Distance, nil
}

func validateStatic(name string, pose spatialmath.Pose, dim Dimension) error {
	return validateMotion(name, pose, r3.Vector{}, dim)
}
