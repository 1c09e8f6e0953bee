package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldEqual, math.Pi)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.1, 1e-8), test.ShouldBeFalse)
	test.That(t, Square(-3), test.ShouldEqual, 9.)
}

func TestIsFinite(t *testing.T) {
	test.That(t, IsFinite(), test.ShouldBeTrue)
	test.That(t, IsFinite(1, -2, 0), test.ShouldBeTrue)
	test.That(t, IsFinite(1, math.NaN()), test.ShouldBeFalse)
	test.That(t, IsFinite(math.Inf(-1)), test.ShouldBeFalse)
}
