package overflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd64(t *testing.T) {
	sum, ok := Add64(1, 2)
	require.True(t, ok)
	require.Equal(t, int64(3), sum)

	sum, ok = Add64(math.MaxInt64, math.MinInt64)
	require.True(t, ok)
	require.Equal(t, int64(-1), sum)

	_, ok = Add64(math.MaxInt64, 1)
	require.False(t, ok)
	_, ok = Add64(math.MinInt64, -1)
	require.False(t, ok)

	sum, ok = Add64(math.MaxInt64, 0)
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64), sum)
}

func TestSub64(t *testing.T) {
	diff, ok := Sub64(5, 7)
	require.True(t, ok)
	require.Equal(t, int64(-2), diff)

	_, ok = Sub64(math.MinInt64, 1)
	require.False(t, ok)
	_, ok = Sub64(math.MaxInt64, -1)
	require.False(t, ok)
	_, ok = Sub64(0, math.MinInt64)
	require.False(t, ok)

	diff, ok = Sub64(math.MinInt64, math.MinInt64)
	require.True(t, ok)
	require.Zero(t, diff)
}

func TestMul64(t *testing.T) {
	p, ok := Mul64(6, -7)
	require.True(t, ok)
	require.Equal(t, int64(-42), p)

	p, ok = Mul64(math.MinInt64, 1)
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), p)

	p, ok = Mul64(0, math.MinInt64)
	require.True(t, ok)
	require.Zero(t, p)

	_, ok = Mul64(math.MinInt64, -1)
	require.False(t, ok)
	_, ok = Mul64(-1, math.MinInt64)
	require.False(t, ok)
	_, ok = Mul64(math.MaxInt64, 2)
	require.False(t, ok)
	_, ok = Mul64(1<<32, 1<<32)
	require.False(t, ok)

	p, ok = Mul64(1<<31, 1<<31)
	require.True(t, ok)
	require.Equal(t, int64(1)<<62, p)
}
