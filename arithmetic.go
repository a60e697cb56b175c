package timespan

import (
	"math"

	"github.com/iamcalledrob/timespan/internal/overflow"
)

// Checked arithmetic reports failure as ok == false instead of panicking,
// for callers whose inputs have not already been bounded by construction.
// On failure the Duration result is Zero and must be ignored.

// CheckedAdd returns d+rhs, or ok == false if the sum is unrepresentable.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	secs, ok := overflow.Add64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	// Each operand's nanosecond field is under 1e9 in magnitude, so the
	// raw sum is under 2e9 and fits an int32. At most one carry step is
	// needed to restore the canonical form.
	nanos := d.nanoseconds + rhs.nanoseconds
	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		secs, ok = overflow.Add64(secs, 1)
		nanos -= nanosPerSecond
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		secs, ok = overflow.Sub64(secs, 1)
		nanos += nanosPerSecond
	}
	if !ok {
		return Duration{}, false
	}
	return newUnchecked(secs, nanos), true
}

// CheckedSub returns d-rhs, or ok == false if the difference is
// unrepresentable.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	secs, ok := overflow.Sub64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanos := d.nanoseconds - rhs.nanoseconds
	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		secs, ok = overflow.Add64(secs, 1)
		nanos -= nanosPerSecond
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		secs, ok = overflow.Sub64(secs, 1)
		nanos += nanosPerSecond
	}
	if !ok {
		return Duration{}, false
	}
	return newUnchecked(secs, nanos), true
}

// CheckedMul returns d*rhs, or ok == false if the product is
// unrepresentable.
func (d Duration) CheckedMul(rhs int32) (Duration, bool) {
	// Widen the nanosecond product to 64 bits (|nanos| < 1e9 and
	// |rhs| <= 2^31, so it cannot wrap), then split out the whole-second
	// carry.
	total := int64(d.nanoseconds) * int64(rhs)
	nanos := int32(total % nanosPerSecond)
	secs, ok := overflow.Mul64(d.seconds, int64(rhs))
	if !ok {
		return Duration{}, false
	}
	secs, ok = overflow.Add64(secs, total/nanosPerSecond)
	if !ok {
		return Duration{}, false
	}
	return newUnchecked(secs, nanos), true
}

// CheckedDiv returns d/rhs truncated toward zero, or ok == false if rhs
// is zero or the quotient is unrepresentable (Min divided by -1).
func (d Duration) CheckedDiv(rhs int32) (Duration, bool) {
	if rhs == 0 {
		return Duration{}, false
	}
	if d.seconds == math.MinInt64 && rhs == -1 {
		return Duration{}, false
	}
	secs := d.seconds / int64(rhs)
	extraSecs := d.seconds % int64(rhs)
	nanos := d.nanoseconds / rhs
	extraNanos := d.nanoseconds % rhs
	// extraSecs is under 2^31 in magnitude, so scaling it to nanoseconds
	// stays within int64.
	nanos += int32((extraSecs*nanosPerSecond + int64(extraNanos)) / int64(rhs))
	return newUnchecked(secs, nanos), true
}

// Saturating arithmetic clamps to Min or Max instead of failing. Callers
// choosing this family accept loss of precision at the extremes and will
// never observe an error.

// SaturatingAdd returns d+rhs, clamping to Min or Max on overflow.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	if sum, ok := d.CheckedAdd(rhs); ok {
		return sum
	}
	// Addition can only overflow when both operands share a sign.
	if d.IsNegative() {
		return Min
	}
	return Max
}

// SaturatingSub returns d-rhs, clamping to Min or Max on overflow.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	if diff, ok := d.CheckedSub(rhs); ok {
		return diff
	}
	// The seconds-first subtraction can overflow even when both operands
	// are negative (e.g. a tiny negative minus Min), so clamp by the true
	// difference's sign: on overflow it is exactly the ordering of the
	// operands.
	if d.Cmp(rhs) > 0 {
		return Max
	}
	return Min
}

// SaturatingMul returns d*rhs, clamping to Min or Max on overflow.
func (d Duration) SaturatingMul(rhs int32) Duration {
	if product, ok := d.CheckedMul(rhs); ok {
		return product
	}
	if d.IsNegative() == (rhs < 0) {
		return Max
	}
	return Min
}

// The plain operations below are for code that has already established,
// by construction, that overflow cannot occur. They panic with a fixed
// message rather than returning a failure.

// Add returns d+rhs, panicking on overflow.
func (d Duration) Add(rhs Duration) Duration {
	sum, ok := d.CheckedAdd(rhs)
	if !ok {
		panic("timespan: overflow when adding durations")
	}
	return sum
}

// Sub returns d-rhs, panicking on overflow.
func (d Duration) Sub(rhs Duration) Duration {
	diff, ok := d.CheckedSub(rhs)
	if !ok {
		panic("timespan: overflow when subtracting durations")
	}
	return diff
}

// Neg returns the duration with its sign flipped.
// Min has no representable negation; it saturates to Max, consistent
// with Abs.
func (d Duration) Neg() Duration {
	if d.seconds == math.MinInt64 {
		return Max
	}
	return newUnchecked(-d.seconds, -d.nanoseconds)
}

// Mul returns d*rhs, panicking on overflow. Narrower integer scalars
// convert losslessly to int32 at the call site.
func (d Duration) Mul(rhs int32) Duration {
	product, ok := d.CheckedMul(rhs)
	if !ok {
		panic("timespan: overflow when multiplying duration by scalar")
	}
	return product
}

// Div returns d/rhs truncated toward zero, panicking on division by zero
// or overflow.
func (d Duration) Div(rhs int32) Duration {
	if rhs == 0 {
		panic("timespan: division by zero when dividing duration by scalar")
	}
	quotient, ok := d.CheckedDiv(rhs)
	if !ok {
		panic("timespan: overflow when dividing duration by scalar")
	}
	return quotient
}

// MulFloat64 returns d scaled by x, computed in float seconds. The result
// inherits FromSecondsFloat64's clamp-at-the-extremes semantics.
func (d Duration) MulFloat64(x float64) Duration {
	return FromSecondsFloat64(d.Seconds() * x)
}

// DivFloat64 returns d divided by x, computed in float seconds.
func (d Duration) DivFloat64(x float64) Duration {
	return FromSecondsFloat64(d.Seconds() / x)
}

// MulFloat32 is MulFloat64 at float32 precision.
func (d Duration) MulFloat32(x float32) Duration {
	return FromSecondsFloat32(d.SecondsFloat32() * x)
}

// DivFloat32 is DivFloat64 at float32 precision.
func (d Duration) DivFloat32(x float32) Duration {
	return FromSecondsFloat32(d.SecondsFloat32() / x)
}

// DivDuration returns the ratio d/rhs as a float64, not a duration.
func (d Duration) DivDuration(rhs Duration) float64 {
	return d.Seconds() / rhs.Seconds()
}

// Sum adds the given durations with panicking addition, returning Zero
// for an empty argument list.
func Sum(ds ...Duration) Duration {
	total := Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}
