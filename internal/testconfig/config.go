package testconfig

import (
	"os"
	"strconv"
	"testing"
)

const (
	PARALLEL_TESTS_ENV_VAR = "LDSC_PARALLEL_TESTS"
)

var (
	//set from the LDSC_PARALLEL_TESTS environment variable.
	PARALLELIZE_SAME_PKG_TESTS = false
)

func init() {
	if value, ok := os.LookupEnv(PARALLEL_TESTS_ENV_VAR); ok {
		PARALLELIZE_SAME_PKG_TESTS, _ = strconv.ParseBool(value)
	}
}

func AllowParallelization(t *testing.T) {
	if PARALLELIZE_SAME_PKG_TESTS {
		t.Parallel()
	}
}
