package threadprio

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrUnsupportedPolicy is returned when the platform has no native
// counterpart for the requested scheduling policy.
var ErrUnsupportedPolicy = errors.New("scheduling policy is not supported on this platform")

// RangeError reports a priority value outside the allowed range.
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("priority %d outside allowed range [%d, %d]", e.Value, e.Min, e.Max)
}

// OSError reports a failed native call together with the OS error code.
type OSError struct {
	Op    string
	Errno syscall.Errno
}

func (e *OSError) Error() string {
	return fmt.Sprintf("%s: %v (code %d)", e.Op, error(e.Errno), int(e.Errno))
}

func (e *OSError) Unwrap() error { return e.Errno }

// newOSError wraps an error coming back from a syscall. Anything that is not
// an errno is wrapped with the operation name only.
func newOSError(op string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &OSError{Op: op, Errno: errno}
	}
	return fmt.Errorf("%s: %w", op, err)
}
