// Package schedbench measures scheduler wakeup latency for threads running
// at a given priority and scheduling policy. Two OS threads bounce a token
// over unbuffered channels; the average one-way handoff time is a direct
// measure of how quickly the scheduler wakes a thread at that priority.
package schedbench

import (
	"fmt"
	"math"
	"time"

	"github.com/osterhed/thread-priority/pkg/threadprio"
)

// Result aggregates the measured one-way wakeup latency over all rounds.
type Result struct {
	Policy     string  `json:"policy"`
	Priority   string  `json:"priority"`
	Rounds     int     `json:"rounds"`
	Iterations int     `json:"iterations"`
	AvgNS      float64 `json:"avg_ns"`
	StdDevNS   float64 `json:"std_dev_ns"`
	MinNS      float64 `json:"min_ns"`
	MaxNS      float64 `json:"max_ns"`
}

// measurer runs one measurement pass and returns the average one-way wakeup
// latency in nanoseconds.
type measurer func(priority threadprio.Priority, policy threadprio.Policy, iterations int) (float64, error)

// Bench runs wakeup latency measurements.
type Bench struct {
	measure measurer
}

// New returns a Bench using the channel ping-pong measurement.
func New() *Bench {
	return &Bench{measure: measureWakeup}
}

// Run performs rounds measurement passes of iterations handoffs each.
// onProgress, when non-nil, is invoked before each round with (round, total).
func (b *Bench) Run(priority threadprio.Priority, policy threadprio.Policy, rounds, iterations int, onProgress func(round, total int)) (*Result, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("rounds must be greater than 0, got %d", rounds)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be greater than 0, got %d", iterations)
	}

	var sum, sqSum float64
	min := math.MaxFloat64
	max := 0.0

	for r := 0; r < rounds; r++ {
		if onProgress != nil {
			onProgress(r+1, rounds)
		}
		lat, err := b.measure(priority, policy, iterations)
		if err != nil {
			return nil, fmt.Errorf("measurement round %d failed: %w", r+1, err)
		}
		sum += lat
		sqSum += lat * lat
		if lat < min {
			min = lat
		}
		if lat > max {
			max = lat
		}
	}

	avg := sum / float64(rounds)
	variance := sqSum/float64(rounds) - avg*avg
	if variance < 0 {
		variance = 0
	}

	return &Result{
		Policy:     policy.String(),
		Priority:   priority.String(),
		Rounds:     rounds,
		Iterations: iterations,
		AvgNS:      avg,
		StdDevNS:   math.Sqrt(variance),
		MinNS:      min,
		MaxNS:      max,
	}, nil
}

// measureWakeup bounces a token between the calling thread and an echo
// thread, both set to the requested priority and policy, and reports the
// average one-way wakeup latency in nanoseconds.
func measureWakeup(priority threadprio.Priority, policy threadprio.Policy, iterations int) (float64, error) {
	ping := make(chan struct{})
	pong := make(chan struct{})
	done := make(chan struct{})
	echoErr := make(chan error, 1)

	go func() {
		echoErr <- threadprio.Run(priority, policy, func() {
			for i := 0; i < iterations; i++ {
				select {
				case <-ping:
				case <-done:
					return
				}
				select {
				case pong <- struct{}{}:
				case <-done:
					return
				}
			}
		})
	}()

	var elapsed time.Duration
	var echoFailed error
	err := threadprio.Run(priority, policy, func() {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			select {
			case ping <- struct{}{}:
			case e := <-echoErr:
				echoFailed = echoExit(e)
				return
			}
			select {
			case <-pong:
			case e := <-echoErr:
				echoFailed = echoExit(e)
				return
			}
		}
		elapsed = time.Since(start)
	})
	close(done)
	if err != nil {
		return 0, err
	}
	if echoFailed != nil {
		return 0, echoFailed
	}
	if e := <-echoErr; e != nil {
		return 0, fmt.Errorf("echo thread: %w", e)
	}
	return float64(elapsed.Nanoseconds()) / float64(2*iterations), nil
}

func echoExit(err error) error {
	if err != nil {
		return fmt.Errorf("echo thread: %w", err)
	}
	return fmt.Errorf("echo thread exited early")
}
