package collision

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned, possibly wrapped, when a query is given non-finite, negative or otherwise unusable input.
	ErrInvalidInput = errors.New("invalid collision query input")

	// ErrNoSeparatingAxis is returned when every candidate axis of a search was degenerate.
	// It is distinct from the shapes being in contact.
	ErrNoSeparatingAxis = errors.New("no valid separating axis")
)

func newInvalidInputError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

func newNoSeparatingAxisError(s1, s2 fmt.Stringer) error {
	return errors.Wrapf(ErrNoSeparatingAxis, "%s vs %s", s1, s2)
}
