package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestParallelFactor(t *testing.T) {
	test.That(t, ParallelFactor, test.ShouldBeGreaterThanOrEqualTo, 1)

	for _, tc := range []struct {
		procs, override, expected int
	}{
		{4, 0, 4},
		{0, 0, 1},
		{-2, 0, 1},
		{32, 0, 32},
		{64, 0, 16},
		{64, 3, 3},
		{2, -1, 2},
	} {
		test.That(t, parallelFactor(tc.procs, tc.override), test.ShouldEqual, tc.expected)
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("NARROWPHASE_TEST_INT", "12")
	test.That(t, GetenvInt("NARROWPHASE_TEST_INT", 3), test.ShouldEqual, 12)

	t.Setenv("NARROWPHASE_TEST_INT", "twelve")
	test.That(t, GetenvInt("NARROWPHASE_TEST_INT", 3), test.ShouldEqual, 3)

	test.That(t, GetenvInt("NARROWPHASE_TEST_UNSET", 5), test.ShouldEqual, 5)
}
