package utils

import (
	"os"
	"strconv"
)

// ParallelFactorEnvVar is the environment variable that can be set to override ParallelFactor.
const ParallelFactorEnvVar = "NARROWPHASE_PARALLEL_FACTOR"

// GetenvInt returns the integer value of the environment variable v, or def if it is unset or not an integer.
func GetenvInt(v string, def int) int {
	x, err := strconv.Atoi(os.Getenv(v))
	if err != nil {
		return def
	}
	return x
}
