package threadprio

import "runtime"

// Thread is a handle for the OS thread of the goroutine that created it.
//
// Current pins the goroutine to its OS thread, so the captured id stays
// valid until Release is called. All methods operate on that thread only;
// use the free functions for arbitrary thread ids.
type Thread struct {
	id ThreadID
}

// Current locks the calling goroutine to its OS thread and returns a handle
// for it. Callers must Release the handle when they no longer depend on the
// thread identity.
func Current() *Thread {
	runtime.LockOSThread()
	return &Thread{id: CurrentThreadID()}
}

// Release unlocks the goroutine from its OS thread. The handle must not be
// used afterwards.
func (t *Thread) Release() {
	runtime.UnlockOSThread()
}

// ID returns the native thread id.
func (t *Thread) ID() ThreadID { return t.id }

// Priority reads the thread's priority on the normalized scale.
func (t *Thread) Priority() (Priority, error) {
	return GetThreadPriority(t.id)
}

// SetPriority sets the thread's priority, keeping its current policy.
func (t *Thread) SetPriority(priority Priority) error {
	policy, err := ThreadSchedulePolicy(t.id)
	if err != nil {
		return err
	}
	return SetThreadPriorityAndPolicy(t.id, priority, policy)
}

// SchedulePolicy reports the thread's scheduling policy.
func (t *Thread) SchedulePolicy() (Policy, error) {
	return ThreadSchedulePolicy(t.id)
}

// ScheduleParams reports the thread's policy together with the raw native
// priority value.
func (t *Thread) ScheduleParams() (Policy, ScheduleParams, error) {
	return SchedulePolicyParam(t.id)
}

// SetPriorityAndPolicy sets both the thread's policy and priority.
func (t *Thread) SetPriorityAndPolicy(priority Priority, policy Policy) error {
	return SetThreadPriorityAndPolicy(t.id, priority, policy)
}

// Run executes fn on the calling goroutine's OS thread at the requested
// priority and policy, then restores the previous scheduling state. The
// restore is best effort: dropping a realtime priority back down can fail
// without privileges.
func Run(priority Priority, policy Policy, fn func()) error {
	t := Current()
	defer t.Release()

	prevPolicy, prevParams, err := t.ScheduleParams()
	if err != nil {
		return err
	}
	if err := t.SetPriorityAndPolicy(priority, policy); err != nil {
		return err
	}
	defer func() {
		_ = SetThreadPriorityAndPolicy(t.id, OSValue(prevParams.SchedPriority), prevPolicy)
	}()

	fn()
	return nil
}
