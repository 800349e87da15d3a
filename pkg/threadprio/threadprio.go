package threadprio

// CurrentThreadID, SetThreadPriorityAndPolicy, SchedulePolicyParam and the
// priority conversions are defined per platform in native_linux.go,
// native_windows.go and native_other.go.

// SetCurrentThreadPriority sets the calling thread's priority, keeping its
// current scheduling policy.
func SetCurrentThreadPriority(priority Priority) error {
	id := CurrentThreadID()
	policy, err := ThreadSchedulePolicy(id)
	if err != nil {
		return err
	}
	return SetThreadPriorityAndPolicy(id, priority, policy)
}

// GetThreadPriority reads the thread's native priority and converts it to
// the normalized scale.
func GetThreadPriority(id ThreadID) (Priority, error) {
	policy, params, err := SchedulePolicyParam(id)
	if err != nil {
		return Priority{}, err
	}
	return fromNative(policy, params), nil
}

// GetCurrentThreadPriority reads the calling thread's priority.
func GetCurrentThreadPriority() (Priority, error) {
	return GetThreadPriority(CurrentThreadID())
}

// ThreadSchedulePolicy reports the scheduling policy the thread runs under.
func ThreadSchedulePolicy(id ThreadID) (Policy, error) {
	policy, _, err := SchedulePolicyParam(id)
	return policy, err
}
