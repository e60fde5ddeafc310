package testutil

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// ScriptedRoller replays fixed dice. Intn returns the next scripted int
// clamped to [0, n); Float64 returns the next scripted float. Once a script
// runs out, Intn yields 0 and Float64 yields 0.99.
type ScriptedRoller struct {
	Ints   []int
	Floats []float64
}

// NewScriptedRoller creates a roller with the given float and int scripts
func NewScriptedRoller(floats []float64, ints []int) *ScriptedRoller {
	return &ScriptedRoller{Ints: ints, Floats: floats}
}

func (r *ScriptedRoller) Intn(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (r *ScriptedRoller) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0.99
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}
