package random

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestDraw_InRange(t *testing.T) {
	src := seeded()
	for i := 0; i < 1000; i++ {
		n, err := Draw(src, 3, 7)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 3)
		require.Less(t, n, 7)
	}
}

func TestDraw_EmptyRange(t *testing.T) {
	_, err := Draw(seeded(), 4, 4)
	require.ErrorIs(t, err, ErrEmptyRange)
	_, err = Draw(seeded(), 5, 4)
	require.ErrorIs(t, err, ErrEmptyRange)
}

func TestDrawExcluding_NeverReturnsExcluded(t *testing.T) {
	src := seeded()
	for min := 0; min < 3; min++ {
		for max := min + 2; max < min+7; max++ {
			for exc := min; exc < max; exc++ {
				for i := 0; i < 200; i++ {
					n, err := DrawExcluding(src, min, max, exc)
					require.NoError(t, err)
					require.NotEqual(t, exc, n)
					require.GreaterOrEqual(t, n, min)
					require.Less(t, n, max)
				}
			}
		}
	}
}

func TestDrawExcluding_OutOfRangeIgnored(t *testing.T) {
	src := seeded()
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n, err := DrawExcluding(src, 0, 3, 7)
		require.NoError(t, err)
		seen[n] = true
	}
	require.Len(t, seen, 3)
}

func TestDrawExcluding_SingletonExcluded(t *testing.T) {
	_, err := DrawExcluding(seeded(), 2, 3, 2)
	require.ErrorIs(t, err, ErrEmptyRange)

	// a singleton whose value is not excluded still draws
	n, err := DrawExcluding(seeded(), 2, 3, 0)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestDrawExcluding_MiddleOfThree(t *testing.T) {
	src := seeded()
	const trials = 10000
	counts := map[int]int{}
	for i := 0; i < trials; i++ {
		n, err := DrawExcluding(src, 0, 3, 1)
		require.NoError(t, err)
		counts[n]++
	}
	require.Len(t, counts, 2)
	require.InDelta(t, trials/2, counts[0], trials*0.03)
	require.InDelta(t, trials/2, counts[2], trials*0.03)
}

func TestDrawExcluding_UniformOverUnevenSides(t *testing.T) {
	src := seeded()
	const trials = 40000
	counts := make([]int, 6)
	for i := 0; i < trials; i++ {
		n, err := DrawExcluding(src, 0, 6, 1)
		require.NoError(t, err)
		counts[n]++
	}
	require.Zero(t, counts[1])
	for v, c := range counts {
		if v == 1 {
			continue
		}
		require.InDelta(t, trials/5, c, trials*0.015, "value %d", v)
	}
}

func TestDrawExcluding_Boundaries(t *testing.T) {
	src := seeded()
	for i := 0; i < 200; i++ {
		n, err := DrawExcluding(src, 0, 4, 0)
		require.NoError(t, err)
		require.NotZero(t, n)
		n, err = DrawExcluding(src, 0, 4, 3)
		require.NoError(t, err)
		require.NotEqual(t, 3, n)
	}
}
