package combat

// Roller is the randomness source for combat. *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
	Float64() float64
}

// uniform draws an integer in [lo, hi]
func uniform(r Roller, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
