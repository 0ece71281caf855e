package utils

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	defaultPreSleepDuration = 20 * time.Millisecond
)

type AssertNoMemoryLeakOptions struct {
	// duration of sleep before collection of memory stats,
	// defaults to defaultPreSleepDuration.
	PreSleepDurationMillis uint8
}

// ReadMemStats runs the garbage collector and returns the current memory stats,
// the result is meant to be passed to AssertNoMemoryLeak.
func ReadMemStats() *runtime.MemStats {
	runtime.GC()
	stats := new(runtime.MemStats)
	runtime.ReadMemStats(stats)
	return stats
}

// AssertNoMemoryLeak checks that at most maxAllocDelta bytes have been allocated since the passed
// memory stats have been collected. This function should be called at the end of a test case,
// after the values allocated by the test case have become unreachable.
func AssertNoMemoryLeak(t *testing.T, startStats *runtime.MemStats, maxAllocDelta uint64, opts ...AssertNoMemoryLeakOptions) bool {
	runtime.GC()

	sleepDuration := defaultPreSleepDuration
	if len(opts) > 0 && opts[0].PreSleepDurationMillis > 0 {
		sleepDuration = time.Duration(opts[0].PreSleepDurationMillis) * time.Millisecond
	}
	time.Sleep(sleepDuration)

	memStats := ReadMemStats()

	if startStats.HeapAlloc > memStats.HeapAlloc {
		return true
	}

	delta := memStats.HeapAlloc - startStats.HeapAlloc
	if delta <= maxAllocDelta {
		return true
	}

	failureMsg := "memory leak"
	switch {
	case delta > 1_000_000:
		return assert.Failf(t, failureMsg, "%d MB", delta/uint64(1_000_000))
	case delta > 1_000:
		return assert.Failf(t, failureMsg, "%d kB", delta/uint64(1_000))
	default:
		return assert.Failf(t, failureMsg, "%d B", delta)
	}
}
