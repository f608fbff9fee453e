// Package numeric holds the small floating point helpers used to normalize
// channel values when colors are constructed.
package numeric

import (
	"math"
)

type Float interface {
	~float32 | ~float64
}

// Clamp returns min if value < min, max if value > max and value otherwise.
// The caller must ensure min <= max.
func Clamp[T Float](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds value to precision decimal places. Halfway cases are
// rounded away from zero. The scaling is done in the precision of T, so
// that for float32 inputs RoundTo(1.2345, 3) == 1.235.
func RoundTo[T Float](value T, precision int) T {
	multiplier := T(math.Pow10(precision))
	scaled := value * multiplier
	return T(math.Round(float64(scaled))) / multiplier
}
