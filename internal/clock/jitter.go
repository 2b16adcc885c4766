package clock

import (
	"math/rand"
	"time"
)

// Range is a closed interval of durations used for randomized delays.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Pick returns a uniformly random duration in [Min, Max].
func (r Range) Pick() time.Duration {
	delta := r.Max - r.Min
	if delta <= 0 {
		return r.Min
	}
	return r.Min + time.Duration(rand.Int63n(int64(delta)+1))
}

// Valid reports whether the range is usable as a delay.
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}
