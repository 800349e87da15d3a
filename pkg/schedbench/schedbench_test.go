package schedbench

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osterhed/thread-priority/pkg/threadprio"
)

func TestRunAggregatesRounds(t *testing.T) {
	latencies := []float64{100, 200, 300}
	calls := 0
	b := &Bench{measure: func(_ threadprio.Priority, _ threadprio.Policy, iterations int) (float64, error) {
		assert.Equal(t, 1000, iterations)
		lat := latencies[calls]
		calls++
		return lat, nil
	}}

	var progress []int
	res, err := b.Run(threadprio.Min(), threadprio.PolicyOther, 3, 1000, func(round, total int) {
		assert.Equal(t, 3, total)
		progress = append(progress, round)
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2, 3}, progress)
	assert.Equal(t, "other", res.Policy)
	assert.Equal(t, "min", res.Priority)
	assert.Equal(t, 3, res.Rounds)
	assert.Equal(t, 1000, res.Iterations)
	assert.InDelta(t, 200, res.AvgNS, 0.001)
	assert.InDelta(t, 81.6497, res.StdDevNS, 0.001)
	assert.Equal(t, 100.0, res.MinNS)
	assert.Equal(t, 300.0, res.MaxNS)
}

func TestRunSingleRoundHasZeroStdDev(t *testing.T) {
	b := &Bench{measure: func(threadprio.Priority, threadprio.Policy, int) (float64, error) {
		return 150, nil
	}}

	res, err := b.Run(threadprio.Max(), threadprio.PolicyFifo, 1, 10, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, res.StdDevNS)
	assert.Equal(t, 150.0, res.AvgNS)
	assert.Equal(t, 150.0, res.MinNS)
	assert.Equal(t, 150.0, res.MaxNS)
}

func TestRunPropagatesMeasurementError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	b := &Bench{measure: func(threadprio.Priority, threadprio.Policy, int) (float64, error) {
		calls++
		if calls == 2 {
			return 0, boom
		}
		return 100, nil
	}}

	_, err := b.Run(threadprio.Min(), threadprio.PolicyOther, 5, 10, nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "round 2")
	assert.Equal(t, 2, calls)
}

func TestRunRejectsBadParameters(t *testing.T) {
	b := New()
	_, err := b.Run(threadprio.Min(), threadprio.PolicyOther, 0, 10, nil)
	assert.Error(t, err)
	_, err = b.Run(threadprio.Min(), threadprio.PolicyOther, 1, 0, nil)
	assert.Error(t, err)
}

// A short real measurement at the thread's current scheduling state. Needs
// no privileges; skipped on platforms without a backend.
func TestMeasureWakeupReal(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skip("no thread priority backend on " + runtime.GOOS)
	}

	thread := threadprio.Current()
	policy, params, err := thread.ScheduleParams()
	thread.Release()
	assert.NoError(t, err)

	res, err := New().Run(threadprio.OSValue(params.SchedPriority), policy, 2, 200, nil)
	assert.NoError(t, err)
	assert.Greater(t, res.AvgNS, 0.0)
	assert.GreaterOrEqual(t, res.MaxNS, res.MinNS)
}
