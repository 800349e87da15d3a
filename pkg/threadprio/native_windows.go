//go:build windows

package threadprio

import "golang.org/x/sys/windows"

// ThreadID is the Windows thread identifier, as returned by
// GetCurrentThreadId.
type ThreadID = uint32

// Thread priority levels from processthreadsapi.h. Windows threads run on a
// fixed set of levels rather than a continuous scale; normalized values are
// bucketed onto them.
// https://learn.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-setthreadpriority
const (
	threadPriorityIdle         = -15
	threadPriorityLowest       = -2
	threadPriorityBelowNormal  = -1
	threadPriorityNormal       = 0
	threadPriorityAboveNormal  = 1
	threadPriorityHighest      = 2
	threadPriorityTimeCritical = 15

	threadPriorityErrorReturn = 0x7fffffff
)

// Thread access rights from winnt.h.
// https://learn.microsoft.com/en-us/windows/win32/procthread/thread-security-and-access-rights
const (
	threadQueryInformation = 0x0040
	threadSetInformation   = 0x0020
)

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetThreadPriority = modkernel32.NewProc("GetThreadPriority")
	procSetThreadPriority = modkernel32.NewProc("SetThreadPriority")
)

// CurrentThreadID returns the calling thread's identifier. The call cannot
// fail. The result is only stable while the calling goroutine is locked to
// its OS thread.
func CurrentThreadID() ThreadID {
	return windows.GetCurrentThreadId()
}

// MinPriorityForPolicy returns the weakest native priority level.
func MinPriorityForPolicy(Policy) int { return threadPriorityIdle }

// MaxPriorityForPolicy returns the strongest native priority level.
func MaxPriorityForPolicy(Policy) int { return threadPriorityTimeCritical }

// toNative buckets the portable priority onto the Windows priority levels.
// Raw native values must be one of the documented levels.
func (p Priority) toNative(policy Policy) (int, error) {
	if policy.Realtime() {
		return 0, ErrUnsupportedPolicy
	}
	switch p.kind {
	case kindMin:
		return threadPriorityIdle, nil
	case kindMax:
		return threadPriorityTimeCritical, nil
	case kindCrossplatform:
		switch {
		case p.value == CrossplatformMin:
			return threadPriorityIdle, nil
		case p.value <= 19:
			return threadPriorityLowest, nil
		case p.value <= 39:
			return threadPriorityBelowNormal, nil
		case p.value <= 59:
			return threadPriorityNormal, nil
		case p.value <= 79:
			return threadPriorityAboveNormal, nil
		case p.value < CrossplatformMax:
			return threadPriorityHighest, nil
		default:
			return threadPriorityTimeCritical, nil
		}
	default:
		switch p.value {
		case threadPriorityIdle, threadPriorityLowest, threadPriorityBelowNormal,
			threadPriorityNormal, threadPriorityAboveNormal, threadPriorityHighest,
			threadPriorityTimeCritical:
			return p.value, nil
		}
		return 0, &RangeError{Value: p.value, Min: threadPriorityIdle, Max: threadPriorityTimeCritical}
	}
}

// fromNative maps a native priority level back to a representative value on
// the normalized scale. Levels outside the documented set (for example when
// the process runs in background mode) are reported as raw OS values.
func fromNative(_ Policy, params ScheduleParams) Priority {
	switch params.SchedPriority {
	case threadPriorityIdle:
		return MustCrossplatform(0)
	case threadPriorityLowest:
		return MustCrossplatform(10)
	case threadPriorityBelowNormal:
		return MustCrossplatform(30)
	case threadPriorityNormal:
		return MustCrossplatform(50)
	case threadPriorityAboveNormal:
		return MustCrossplatform(70)
	case threadPriorityHighest:
		return MustCrossplatform(90)
	case threadPriorityTimeCritical:
		return MustCrossplatform(99)
	default:
		return OSValue(params.SchedPriority)
	}
}

func openThread(id ThreadID, access uint32) (windows.Handle, error) {
	h, err := windows.OpenThread(access, false, id)
	if err != nil {
		return 0, newOSError("OpenThread", err)
	}
	return h, nil
}

// SetThreadPriorityAndPolicy sets the thread's priority level. Only the
// normal policy exists on Windows; realtime policies are rejected before
// any call is made.
func SetThreadPriorityAndPolicy(id ThreadID, priority Priority, policy Policy) error {
	native, err := priority.toNative(policy)
	if err != nil {
		return err
	}
	h, err := openThread(id, threadSetInformation)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	r1, _, callErr := procSetThreadPriority.Call(uintptr(h), uintptr(native))
	if r1 == 0 {
		return newOSError("SetThreadPriority", callErr)
	}
	return nil
}

// SchedulePolicyParam reads the thread's priority level. The reported policy
// is always the normal one.
func SchedulePolicyParam(id ThreadID) (Policy, ScheduleParams, error) {
	h, err := openThread(id, threadQueryInformation)
	if err != nil {
		return 0, ScheduleParams{}, err
	}
	defer windows.CloseHandle(h)

	r1, _, callErr := procGetThreadPriority.Call(uintptr(h))
	if int32(r1) == threadPriorityErrorReturn {
		return 0, ScheduleParams{}, newOSError("GetThreadPriority", callErr)
	}
	return PolicyOther, ScheduleParams{SchedPriority: int(int32(r1))}, nil
}
