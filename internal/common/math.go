package common

// Abs returns the absolute value of x
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi int) int {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

// Percent returns part as a whole-number percentage of whole, rounding down.
// A non-positive whole yields 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return part * 100 / whole
}
