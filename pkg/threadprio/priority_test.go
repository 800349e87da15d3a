package threadprio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossplatformRange(t *testing.T) {
	tests := []struct {
		value       int
		expectError bool
	}{
		{0, false},
		{1, false},
		{50, false},
		{99, false},
		{-1, true},
		{100, true},
		{1000, true},
	}

	for _, tt := range tests {
		p, err := Crossplatform(tt.value)
		if tt.expectError {
			assert.Error(t, err, "value %d should be rejected", tt.value)
			var rangeErr *RangeError
			assert.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.value, rangeErr.Value)
			assert.Equal(t, CrossplatformMin, rangeErr.Min)
			assert.Equal(t, CrossplatformMax, rangeErr.Max)
		} else {
			assert.NoError(t, err)
			v, ok := p.Value()
			assert.True(t, ok)
			assert.Equal(t, tt.value, v)
		}
	}
}

func TestMustCrossplatformPanics(t *testing.T) {
	assert.NotPanics(t, func() { MustCrossplatform(99) })
	assert.Panics(t, func() { MustCrossplatform(100) })
}

func TestPriorityValue(t *testing.T) {
	_, ok := Min().Value()
	assert.False(t, ok, "Min carries no explicit value")
	_, ok = Max().Value()
	assert.False(t, ok, "Max carries no explicit value")

	v, ok := OSValue(-20).Value()
	assert.True(t, ok)
	assert.Equal(t, -20, v)
}

func TestPriorityString(t *testing.T) {
	assert.Equal(t, "min", Min().String())
	assert.Equal(t, "max", Max().String())
	assert.Equal(t, "42", MustCrossplatform(42).String())
	assert.Equal(t, "os:-5", OSValue(-5).String())
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input       string
		expected    Priority
		expectError bool
	}{
		{input: "min", expected: Min()},
		{input: "MAX", expected: Max()},
		{input: "0", expected: MustCrossplatform(0)},
		{input: "99", expected: MustCrossplatform(99)},
		{input: "os:-20", expected: OSValue(-20)},
		{input: "OS:7", expected: OSValue(7)},
		{input: "100", expectError: true},
		{input: "-1", expectError: true},
		{input: "high", expectError: true},
		{input: "os:x", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePriority(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestRescaleRoundTrip(t *testing.T) {
	// Round-tripping through any native range must stay within +-1 on the
	// normalized scale. The inverted range mirrors Linux nice levels.
	ranges := []struct {
		name     string
		min, max int
	}{
		{"upward", 1, 99},
		{"wide", 0, 120},
		{"inverted", 19, -20},
	}

	for _, r := range ranges {
		t.Run(r.name, func(t *testing.T) {
			for p := 0; p <= 99; p++ {
				native := rescaleToNative(p, r.min, r.max)
				_, err := allowedNative(native, r.min, r.max)
				assert.NoError(t, err, "p=%d native=%d", p, native)

				back := rescaleFromNative(native, r.min, r.max)
				assert.InDelta(t, p, back, 1, "p=%d native=%d back=%d", p, native, back)
			}
		})
	}
}

func TestRescaleBounds(t *testing.T) {
	assert.Equal(t, 0, rescaleToNative(0, 0, 120))
	assert.Equal(t, 120, rescaleToNative(99, 0, 120))
	assert.Equal(t, 19, rescaleToNative(0, 19, -20))
	assert.Equal(t, -20, rescaleToNative(99, 19, -20))

	// Clamped to 99 to absorb rounding on values past the native maximum.
	assert.Equal(t, 99, rescaleFromNative(121, 0, 120))
	assert.Equal(t, 0, rescaleFromNative(-1, 0, 120))
}

func TestAllowedNative(t *testing.T) {
	v, err := allowedNative(50, 1, 99)
	assert.NoError(t, err)
	assert.Equal(t, 50, v)

	_, err = allowedNative(0, 1, 99)
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 1, rangeErr.Min)
	assert.Equal(t, 99, rangeErr.Max)

	// Inverted range is normalized in the error.
	_, err = allowedNative(20, 19, -20)
	assert.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, -20, rangeErr.Min)
	assert.Equal(t, 19, rangeErr.Max)
}
