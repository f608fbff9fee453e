package colorspace

import (
	"fmt"

	"github.com/kovidgoyal/csscolor/numeric"
)

const (
	// Lightness may exceed 1 (100%) to leave headroom for HDR.
	MaxLightness = 4
	// a and b are unbounded in theory but do not exceed ±0.5 in practice.
	MaxChroma = 0.5
	// Decimal places kept for lightness: 3 places of the 0-400 percentage.
	LightnessPrecision = 5
)

// OKLab is a point in the perceptually uniform OKLab space
// (https://www.w3.org/TR/css-color-4/#lab-colors), D65 illuminant. L is the
// lightness axis, a runs green to purplish red and b runs blue to yellow.
type OKLab struct {
	l, a, b, alpha Channel
}

// NewOKLab normalizes each present channel: l is clamped to [0, 4] and
// rounded to 5 decimal places, a and b are clamped to [-0.5, 0.5] and alpha
// to [0, 1].
func NewOKLab(l, a, b, alpha Channel) OKLab {
	l = clamp("oklab", "l", l, 0, MaxLightness)
	if v, ok := l.Get(); ok {
		l = Some(numeric.RoundTo(v, LightnessPrecision))
	}
	return OKLab{
		l:     l,
		a:     clamp("oklab", "a", a, -MaxChroma, MaxChroma),
		b:     clamp("oklab", "b", b, -MaxChroma, MaxChroma),
		alpha: clamp("oklab", "alpha", alpha, 0, 1),
	}
}

func (o OKLab) L() Channel     { return o.l }
func (o OKLab) A() Channel     { return o.a }
func (o OKLab) B() Channel     { return o.b }
func (o OKLab) Alpha() Channel { return o.alpha }

func (o OKLab) String() string {
	return fmt.Sprintf("OKLab{l: %s a: %s b: %s alpha: %s}", o.l, o.a, o.b, o.alpha)
}
