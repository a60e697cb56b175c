package timespan

import (
	"time"

	"github.com/iamcalledrob/timespan/internal/overflow"
)

// FromStd converts a time.Duration. Always succeeds: every time.Duration
// value (an int64 nanosecond count) is representable.
func FromStd(sd time.Duration) Duration {
	return FromNanoseconds(int64(sd))
}

// Std converts to a time.Duration, reporting ok == false when the value
// lies outside time.Duration's range (roughly ±292 years).
func (d Duration) Std() (time.Duration, bool) {
	v, ok := overflow.Mul64(d.seconds, nanosPerSecond)
	if ok {
		v, ok = overflow.Add64(v, int64(d.nanoseconds))
	}
	if !ok {
		return 0, false
	}
	return time.Duration(v), true
}

// CmpStd compares against a time.Duration, returning -1, 0 or +1.
func (d Duration) CmpStd(rhs time.Duration) int {
	return d.Cmp(FromStd(rhs))
}

// AddStd returns d+rhs, panicking on overflow.
func (d Duration) AddStd(rhs time.Duration) Duration {
	return d.Add(FromStd(rhs))
}

// SubStd returns d-rhs, panicking on overflow.
func (d Duration) SubStd(rhs time.Duration) Duration {
	return d.Sub(FromStd(rhs))
}

// DivStd returns the ratio d/rhs as a float64.
func (d Duration) DivStd(rhs time.Duration) float64 {
	return d.DivDuration(FromStd(rhs))
}

// Since returns the time elapsed since start, measured on the monotonic
// clock when start carries a monotonic reading.
func Since(start time.Time) Duration {
	return FromStd(time.Since(start))
}

// Measure runs fn and returns its result together with how long it took.
func Measure[T any](fn func() T) (T, Duration) {
	start := time.Now()
	v := fn()
	return v, Since(start)
}
