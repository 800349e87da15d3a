//go:build linux

package threadprio

import "golang.org/x/sys/unix"

// ThreadID is the Linux kernel thread id, as returned by gettid(2).
type ThreadID = int

// Native priority bounds. For the normal policy the adjustable value is the
// nice level, which grows downward: 19 is the weakest, -20 the strongest.
// Realtime policies use the static priority range 1-99.
const (
	niceMinPriority = 19
	niceMaxPriority = -20
	rtMinPriority   = 1
	rtMaxPriority   = 99
)

// CurrentThreadID returns the calling thread's kernel thread id. The call
// cannot fail. The result is only stable while the calling goroutine is
// locked to its OS thread.
func CurrentThreadID() ThreadID {
	return unix.Gettid()
}

// MinPriorityForPolicy returns the weakest native value for the policy.
func MinPriorityForPolicy(policy Policy) int {
	if policy.Realtime() {
		return rtMinPriority
	}
	return niceMinPriority
}

// MaxPriorityForPolicy returns the strongest native value for the policy.
func MaxPriorityForPolicy(policy Policy) int {
	if policy.Realtime() {
		return rtMaxPriority
	}
	return niceMaxPriority
}

// toNative converts the portable priority to the native scale for the
// policy, validating the result before any syscall is issued.
func (p Priority) toNative(policy Policy) (int, error) {
	min := MinPriorityForPolicy(policy)
	max := MaxPriorityForPolicy(policy)
	switch p.kind {
	case kindMin:
		return min, nil
	case kindMax:
		return max, nil
	case kindCrossplatform:
		return allowedNative(rescaleToNative(p.value, min, max), min, max)
	default:
		return allowedNative(p.value, min, max)
	}
}

// fromNative converts a native priority back to the normalized scale.
func fromNative(policy Policy, params ScheduleParams) Priority {
	min := MinPriorityForPolicy(policy)
	max := MaxPriorityForPolicy(policy)
	return MustCrossplatform(rescaleFromNative(params.SchedPriority, min, max))
}

func (p Policy) toNative() uint32 {
	switch p {
	case PolicyFifo:
		return unix.SCHED_FIFO
	case PolicyRoundRobin:
		return unix.SCHED_RR
	default:
		return unix.SCHED_NORMAL
	}
}

// policyFromNative maps a native policy code back to the portable form.
// Codes without a portable counterpart (batch, idle, deadline) fall back to
// the normal policy.
func policyFromNative(code uint32) Policy {
	switch code {
	case unix.SCHED_FIFO:
		return PolicyFifo
	case unix.SCHED_RR:
		return PolicyRoundRobin
	default:
		return PolicyOther
	}
}

// SetThreadPriorityAndPolicy sets the thread's scheduling policy and
// priority through sched_setattr(2).
func SetThreadPriorityAndPolicy(id ThreadID, priority Priority, policy Policy) error {
	native, err := priority.toNative(policy)
	if err != nil {
		return err
	}
	attr := &unix.SchedAttr{
		Size:   unix.SizeofSchedAttr,
		Policy: policy.toNative(),
	}
	if policy.Realtime() {
		attr.Priority = uint32(native)
	} else {
		attr.Nice = int32(native)
	}
	if err := unix.SchedSetAttr(id, attr, 0); err != nil {
		return newOSError("sched_setattr", err)
	}
	return nil
}

// SchedulePolicyParam reads the thread's scheduling policy and native
// priority through sched_getattr(2).
func SchedulePolicyParam(id ThreadID) (Policy, ScheduleParams, error) {
	attr, err := unix.SchedGetAttr(id, 0)
	if err != nil {
		return 0, ScheduleParams{}, newOSError("sched_getattr", err)
	}
	policy := policyFromNative(attr.Policy)
	params := ScheduleParams{SchedPriority: int(attr.Priority)}
	if !policy.Realtime() {
		params.SchedPriority = int(attr.Nice)
	}
	return policy, params, nil
}
