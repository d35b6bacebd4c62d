// Package random draws indices for the picker, optionally excluding the
// previously drawn one so the user is never offered the same entry twice in
// a row.
package random

import (
	"errors"
	"math/rand/v2"
	"time"
)

// ErrEmptyRange is returned when no value is left to draw.
var ErrEmptyRange = errors.New("random: no values left in range")

// Source is a pseudo-random generator. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a generator seeded from the clock, for one session.
func NewSource() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// Draw returns a uniform value in [min, max).
func Draw(src Source, min, max int) (int, error) {
	if max <= min {
		return 0, ErrEmptyRange
	}
	return min + src.IntN(max-min), nil
}

// DrawExcluding returns a uniform value in [min, max) other than excluded.
// An excluded value outside the range excludes nothing.
func DrawExcluding(src Source, min, max, excluded int) (int, error) {
	if max <= min {
		return 0, ErrEmptyRange
	}
	switch {
	case excluded < min || excluded >= max:
		return Draw(src, min, max)
	case max-min == 1:
		return 0, ErrEmptyRange
	case excluded == min:
		return Draw(src, min+1, max)
	case excluded == max-1:
		return Draw(src, min, max-1)
	}

	// Interior: pick a side with odds proportional to its size, then draw
	// within it. Equal sides make this a fair coin. Earlier releases always
	// flipped a fair coin, which favoured values on the smaller side.
	below := excluded - min
	above := max - excluded - 1
	if src.IntN(below+above) < below {
		return Draw(src, min, excluded)
	}
	return Draw(src, excluded+1, max)
}
