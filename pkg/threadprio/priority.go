// Package threadprio controls the scheduling priority and policy of
// operating-system threads.
//
// Priorities are expressed on a normalized 0-99 scale shared by every
// platform backend. Each backend translates that scale into the native one
// (Linux nice levels and realtime priorities, Windows thread priority
// levels) and back. The backends are independent shims: nothing beyond
// value translation is guaranteed to be portable.
package threadprio

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds of the normalized priority scale.
const (
	CrossplatformMin = 0
	CrossplatformMax = 99
)

type priorityKind int

const (
	kindMin priorityKind = iota
	kindMax
	kindCrossplatform
	kindOS
)

// Priority is a portable thread priority request. The zero value is Min.
type Priority struct {
	kind  priorityKind
	value int
}

// Min returns the weakest priority the platform supports for a policy.
func Min() Priority { return Priority{kind: kindMin} }

// Max returns the strongest priority the platform supports for a policy.
func Max() Priority { return Priority{kind: kindMax} }

// Crossplatform returns a priority on the normalized 0-99 scale.
// Values outside the scale fail with a RangeError.
func Crossplatform(v int) (Priority, error) {
	if v < CrossplatformMin || v > CrossplatformMax {
		return Priority{}, &RangeError{Value: v, Min: CrossplatformMin, Max: CrossplatformMax}
	}
	return Priority{kind: kindCrossplatform, value: v}, nil
}

// MustCrossplatform is like Crossplatform but panics on out-of-range values.
func MustCrossplatform(v int) Priority {
	p, err := Crossplatform(v)
	if err != nil {
		panic(err)
	}
	return p
}

// OSValue wraps a raw native priority value. It is validated against the
// platform bounds when used, not at construction.
func OSValue(v int) Priority { return Priority{kind: kindOS, value: v} }

// Value returns the carried crossplatform or native value. Min and Max carry
// no explicit value and report false.
func (p Priority) Value() (int, bool) {
	switch p.kind {
	case kindCrossplatform, kindOS:
		return p.value, true
	default:
		return 0, false
	}
}

func (p Priority) String() string {
	switch p.kind {
	case kindMin:
		return "min"
	case kindMax:
		return "max"
	case kindOS:
		return fmt.Sprintf("os:%d", p.value)
	default:
		return strconv.Itoa(p.value)
	}
}

// ParsePriority parses a priority spec: "min", "max", a 0-99 value, or
// "os:<n>" for a raw native value.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(s) {
	case "min":
		return Min(), nil
	case "max":
		return Max(), nil
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "os:"); ok {
		v, err := strconv.Atoi(rest)
		if err != nil {
			return Priority{}, fmt.Errorf("invalid native priority %q", s)
		}
		return OSValue(v), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Priority{}, fmt.Errorf("invalid priority %q: expected min, max, os:<n> or a value between %d and %d", s, CrossplatformMin, CrossplatformMax)
	}
	return Crossplatform(v)
}

// ScheduleParams carries the native priority value between a native "get"
// call and conversion into the portable form. For the Linux normal policy
// the value is the nice level.
type ScheduleParams struct {
	SchedPriority int
}
