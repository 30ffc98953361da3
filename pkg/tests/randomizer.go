package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	// IntOutside возвращает случайное целое вне отрезка [lo, hi] (не дальше
	// чем на span от его границ).
	IntOutside func(lo, hi, span int) int
	// FloatOutside аналогично для вещественных.
	FloatOutside func(lo, hi, span float64) float64
	// IntBetween возвращает случайное целое из [lo, hi].
	IntBetween func(lo, hi int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		IntOutside: func(lo, hi, span int) int {
			if random.Intn(2) == 0 { //nolint:mnd // skip
				return lo - 1 - random.Intn(span)
			}

			return hi + 1 + random.Intn(span)
		},
		FloatOutside: func(lo, hi, span float64) float64 {
			if random.Intn(2) == 0 { //nolint:mnd // skip
				return lo - 0.01 - random.Float64()*span
			}

			return hi + 0.01 + random.Float64()*span
		},
		IntBetween: func(lo, hi int) int {
			return lo + random.Intn(hi-lo+1)
		},
	}
}
