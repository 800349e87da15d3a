//go:build !linux && !windows

package threadprio

import "errors"

// ThreadID is a stub type for platforms without a backend.
type ThreadID = int

var errUnsupportedPlatform = errors.New("thread priority control is only supported on linux and windows")

// CurrentThreadID is not supported on this platform and returns 0.
func CurrentThreadID() ThreadID { return 0 }

// MinPriorityForPolicy returns 0 on platforms without a backend.
func MinPriorityForPolicy(Policy) int { return 0 }

// MaxPriorityForPolicy returns 0 on platforms without a backend.
func MaxPriorityForPolicy(Policy) int { return 0 }

func (p Priority) toNative(Policy) (int, error) {
	return 0, errUnsupportedPlatform
}

func fromNative(Policy, ScheduleParams) Priority {
	return Min()
}

// SetThreadPriorityAndPolicy is not supported on this platform.
func SetThreadPriorityAndPolicy(ThreadID, Priority, Policy) error {
	return errUnsupportedPlatform
}

// SchedulePolicyParam is not supported on this platform.
func SchedulePolicyParam(ThreadID) (Policy, ScheduleParams, error) {
	return 0, ScheduleParams{}, errUnsupportedPlatform
}
