// Package overflow provides int64 arithmetic with explicit wraparound
// detection.
package overflow

import "math"

// Add64 returns a+b and reports whether the sum stayed within int64.
func Add64(a, b int64) (int64, bool) {
	sum := a + b
	if a > 0 && b > 0 && sum < 0 {
		return 0, false
	}
	if a < 0 && b < 0 && sum >= 0 {
		return 0, false
	}
	return sum, true
}

// Sub64 returns a-b and reports whether the difference stayed within int64.
func Sub64(a, b int64) (int64, bool) {
	diff := a - b
	if a >= 0 && b < 0 && diff < 0 {
		return 0, false
	}
	if a < 0 && b > 0 && diff >= 0 {
		return 0, false
	}
	return diff, true
}

// Mul64 returns a*b and reports whether the product stayed within int64.
func Mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 * -1 wraps back to MinInt64, which the division check
	// below cannot catch.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
