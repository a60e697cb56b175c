// Package timespan implements a signed, nanosecond-precision duration type
// with a wider range than time.Duration (int64 seconds rather than int64
// nanoseconds), three parallel arithmetic families (panicking, checked and
// saturating), and lossless interop with time.Duration wherever values fit.
package timespan

import (
	"math"
	"strconv"

	"github.com/iamcalledrob/timespan/internal/overflow"
)

const nanosPerSecond = 1_000_000_000

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

// Duration is a signed span of time with nanosecond precision.
//
// Internally it holds whole seconds (int64) and a sub-second nanosecond
// remainder (int32, magnitude < 1e9). Every publicly observable value is
// canonical: the nanosecond field is zero or shares the sign of the seconds
// field, so the overall sign of a value is never ambiguous.
//
// The zero value equals Zero. Values are immutable, comparable with ==,
// and usable as map keys. Ordering is lexicographic on (seconds,
// nanoseconds), which matches numeric order for canonical values.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

var (
	Zero        = Duration{}
	Nanosecond  = Duration{nanoseconds: 1}
	Microsecond = Duration{nanoseconds: 1_000}
	Millisecond = Duration{nanoseconds: 1_000_000}
	Second      = Duration{seconds: 1}
	Minute      = Duration{seconds: secondsPerMinute}
	Hour        = Duration{seconds: secondsPerHour}
	Day         = Duration{seconds: secondsPerDay}
	Week        = Duration{seconds: secondsPerWeek}

	// Min and Max are the most negative and most positive representable
	// durations. Both are canonical.
	Min = Duration{seconds: math.MinInt64, nanoseconds: -(nanosPerSecond - 1)}
	Max = Duration{seconds: math.MaxInt64, nanoseconds: nanosPerSecond - 1}
)

// newUnchecked constructs a Duration without normalising.
// Callers must guarantee the inputs are already canonical.
func newUnchecked(seconds int64, nanoseconds int32) Duration {
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

// New constructs a Duration from whole seconds plus a nanosecond count of
// any magnitude or sign. Whole-second multiples are folded out of
// nanoseconds, then the pair is adjusted so the sub-second remainder is
// zero or shares the sign of the seconds field.
//
// New belongs to the panicking family: it panics if folding the
// nanoseconds into seconds overflows.
func New(seconds, nanoseconds int64) Duration {
	secs, ok := overflow.Add64(seconds, nanoseconds/nanosPerSecond)
	if !ok {
		panic("timespan: overflow constructing duration")
	}
	nanos := int32(nanoseconds % nanosPerSecond)
	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return newUnchecked(secs, nanos)
}

// FromWeeks returns a duration of n weeks.
//
// Like the other whole-unit constructors, the multiplication is
// deliberately unchecked: passing a value large enough to wrap is a
// programmer error, not a recoverable condition.
func FromWeeks(n int64) Duration {
	return FromSeconds(n * secondsPerWeek)
}

// FromDays returns a duration of n days.
func FromDays(n int64) Duration {
	return FromSeconds(n * secondsPerDay)
}

// FromHours returns a duration of n hours.
func FromHours(n int64) Duration {
	return FromSeconds(n * secondsPerHour)
}

// FromMinutes returns a duration of n minutes.
func FromMinutes(n int64) Duration {
	return FromSeconds(n * secondsPerMinute)
}

// FromSeconds returns a duration of n whole seconds.
func FromSeconds(n int64) Duration {
	return newUnchecked(n, 0)
}

// FromSecondsFloat64 returns a duration of x seconds, truncating any
// precision beyond a nanosecond toward zero.
//
// NaN yields Zero. Magnitudes beyond the representable seconds range
// clamp to the extremes rather than wrapping.
func FromSecondsFloat64(x float64) Duration {
	if math.IsNaN(x) {
		return Zero
	}
	// Use 1 << 63 instead of float64(math.MaxInt64) (aka 1 << 63 - 1) because the
	// float64(math.MaxInt64) cast can *theoretically* round to an overflowing value.
	// Anything at or past the limit, infinities included, clamps uniformly.
	const limit = 1 << 63
	if x >= limit {
		return Max
	}
	if x < -limit {
		return Min
	}
	secs := math.Trunc(x)
	// The fraction is in (-1, 1), so the nanosecond part is in range and
	// sign-consistent by construction.
	nanos := int32((x - secs) * nanosPerSecond)
	return newUnchecked(int64(secs), nanos)
}

// FromSecondsFloat32 is FromSecondsFloat64 for float32 inputs.
func FromSecondsFloat32(x float32) Duration {
	return FromSecondsFloat64(float64(x))
}

// FromMilliseconds returns a duration of n milliseconds.
func FromMilliseconds(n int64) Duration {
	return newUnchecked(n/1_000, int32(n%1_000)*1_000_000)
}

// FromMicroseconds returns a duration of n microseconds.
func FromMicroseconds(n int64) Duration {
	return newUnchecked(n/1_000_000, int32(n%1_000_000)*1_000)
}

// FromNanoseconds returns a duration of n nanoseconds.
func FromNanoseconds(n int64) Duration {
	return newUnchecked(n/nanosPerSecond, int32(n%nanosPerSecond))
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanoseconds == 0
}

// IsNegative reports whether the duration is less than zero.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nanoseconds < 0
}

// IsPositive reports whether the duration is greater than zero.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nanoseconds > 0
}

// Abs returns the magnitude of the duration.
// Min has no exactly representable magnitude; it saturates to Max.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Neg()
	}
	return d
}

// WholeWeeks returns the number of whole weeks, truncated toward zero.
func (d Duration) WholeWeeks() int64 {
	return d.seconds / secondsPerWeek
}

// WholeDays returns the number of whole days, truncated toward zero.
func (d Duration) WholeDays() int64 {
	return d.seconds / secondsPerDay
}

// WholeHours returns the number of whole hours, truncated toward zero.
func (d Duration) WholeHours() int64 {
	return d.seconds / secondsPerHour
}

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (d Duration) WholeMinutes() int64 {
	return d.seconds / secondsPerMinute
}

// WholeSeconds returns the number of whole seconds, truncated toward zero.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// Seconds returns the duration in seconds as a float64, including the
// fractional part.
func (d Duration) Seconds() float64 {
	return float64(d.seconds) + float64(d.nanoseconds)/nanosPerSecond
}

// SecondsFloat32 is Seconds at float32 precision.
func (d Duration) SecondsFloat32() float32 {
	return float32(d.seconds) + float32(d.nanoseconds)/nanosPerSecond
}

// WholeMilliseconds returns the number of whole milliseconds, truncated
// toward zero. Values past the int64 extremes clamp to
// math.MaxInt64/math.MinInt64.
func (d Duration) WholeMilliseconds() int64 {
	return d.scaled(1_000, 1_000_000)
}

// WholeMicroseconds returns the number of whole microseconds, truncated
// toward zero. Values past the int64 extremes clamp to
// math.MaxInt64/math.MinInt64.
func (d Duration) WholeMicroseconds() int64 {
	return d.scaled(1_000_000, 1_000)
}

// WholeNanoseconds returns the number of nanoseconds. Values past the
// int64 extremes clamp to math.MaxInt64/math.MinInt64.
func (d Duration) WholeNanoseconds() int64 {
	return d.scaled(nanosPerSecond, 1)
}

// scaled computes seconds*perSecond + nanoseconds/nanosPer in stages so
// an intermediate product can never silently wrap, clamping when the true
// value does not fit an int64.
func (d Duration) scaled(perSecond, nanosPer int64) int64 {
	v, ok := overflow.Mul64(d.seconds, perSecond)
	if ok {
		v, ok = overflow.Add64(v, int64(d.nanoseconds)/nanosPer)
	}
	if !ok {
		if d.IsNegative() {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return v
}

// SubsecMilliseconds returns the sub-second part in whole milliseconds,
// in (-1000, 1000).
func (d Duration) SubsecMilliseconds() int32 {
	return d.nanoseconds / 1_000_000
}

// SubsecMicroseconds returns the sub-second part in whole microseconds,
// in (-1e6, 1e6).
func (d Duration) SubsecMicroseconds() int32 {
	return d.nanoseconds / 1_000
}

// SubsecNanoseconds returns the sub-second part in nanoseconds,
// in (-1e9, 1e9).
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanoseconds
}

// Cmp compares two durations, returning -1, 0 or +1.
func (d Duration) Cmp(rhs Duration) int {
	if d.seconds != rhs.seconds {
		if d.seconds < rhs.seconds {
			return -1
		}
		return 1
	}
	if d.nanoseconds != rhs.nanoseconds {
		if d.nanoseconds < rhs.nanoseconds {
			return -1
		}
		return 1
	}
	return 0
}

// String renders the duration with unit suffixes, largest first,
// e.g. "1d2h3m4s500ms", "-1s500ms". Zero renders as "0s".
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}

	var b []byte
	// Work on unsigned magnitudes so Min doesn't wrap when negated.
	usecs := uint64(d.seconds)
	unanos := uint64(int64(d.nanoseconds))
	if d.IsNegative() {
		b = append(b, '-')
		usecs = -usecs
		unanos = -unanos
	}

	appendUnit := func(v uint64, suffix string) {
		if v != 0 {
			b = strconv.AppendUint(b, v, 10)
			b = append(b, suffix...)
		}
	}
	appendUnit(usecs/secondsPerWeek, "w")
	appendUnit(usecs/secondsPerDay%7, "d")
	appendUnit(usecs/secondsPerHour%24, "h")
	appendUnit(usecs/secondsPerMinute%60, "m")
	appendUnit(usecs%60, "s")
	appendUnit(unanos/1_000_000, "ms")
	appendUnit(unanos/1_000%1_000, "µs")
	appendUnit(unanos%1_000, "ns")
	return string(b)
}
