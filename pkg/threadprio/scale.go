package threadprio

// rescaleToNative maps a 0-99 value onto [min, max]. The native range may
// run in either direction: Linux nice levels grow downward, so min is
// numerically larger than max there. Rounding to nearest keeps the round
// trip through narrow native ranges within one step on the normalized scale.
func rescaleToNative(p, min, max int) int {
	return min + roundNearest(p*(max-min), CrossplatformMax)
}

// rescaleFromNative is the inverse of rescaleToNative, clamped to the 0-99
// scale to absorb integer rounding.
func rescaleFromNative(v, min, max int) int {
	span := max - min
	if span == 0 {
		return CrossplatformMin
	}
	p := roundNearest((v-min)*CrossplatformMax, span)
	if p < CrossplatformMin {
		return CrossplatformMin
	}
	if p > CrossplatformMax {
		return CrossplatformMax
	}
	return p
}

// roundNearest divides a by b rounding half away from zero. b may be
// negative.
func roundNearest(a, b int) int {
	if b < 0 {
		a, b = -a, -b
	}
	if a >= 0 {
		return (a + b/2) / b
	}
	return -((-a + b/2) / b)
}

// allowedNative validates a native value against [min, max], tolerating
// ranges that run downward.
func allowedNative(v, min, max int) (int, error) {
	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo || v > hi {
		return 0, &RangeError{Value: v, Min: lo, Max: hi}
	}
	return v, nil
}
