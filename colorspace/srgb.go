package colorspace

import (
	"fmt"
)

var _ = fmt.Print

// SRGB is a point in the sRGB color space
// (https://www.w3.org/TR/css-color-4/#numeric-srgb): red, green and blue
// fractions plus an optional alpha. Every present channel lies in [0, 1].
type SRGB struct {
	red, green, blue, alpha Channel
}

// NewSRGB clamps each present channel to [0, 1]. Out of range values are
// corrected, never rejected.
func NewSRGB(red, green, blue, alpha Channel) SRGB {
	return SRGB{
		red:   clamp("srgb", "red", red, 0, 1),
		green: clamp("srgb", "green", green, 0, 1),
		blue:  clamp("srgb", "blue", blue, 0, 1),
		alpha: clamp("srgb", "alpha", alpha, 0, 1),
	}
}

func (s SRGB) Red() Channel   { return s.red }
func (s SRGB) Green() Channel { return s.green }
func (s SRGB) Blue() Channel  { return s.blue }

// Alpha is the opacity. When absent, consumers treat the color as fully
// opaque.
func (s SRGB) Alpha() Channel { return s.alpha }

func (s SRGB) String() string {
	return fmt.Sprintf("SRGB{red: %s green: %s blue: %s alpha: %s}", s.red, s.green, s.blue, s.alpha)
}
