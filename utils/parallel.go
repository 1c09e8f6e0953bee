package utils

import "runtime"

// ParallelFactor controls the max level of parallelization of batch queries. This might be useful
// to set in tests where too much parallelism actually slows tests down in aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	ParallelFactor = parallelFactor(ParallelFactor, GetenvInt(ParallelFactorEnvVar, 0))
}

// parallelFactor picks the worker count from the number of procs, unless override is positive.
func parallelFactor(procs, override int) int {
	if override > 0 {
		return override
	}
	if procs <= 0 {
		return 1
	}
	if quarterProcs := procs / 4; quarterProcs > 8 {
		return quarterProcs
	}
	return procs
}
