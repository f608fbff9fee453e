package csscolor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kovidgoyal/csscolor/colorspace"
	"github.com/kovidgoyal/csscolor/numeric"
)

var _ = fmt.Print

// Decimal places kept when rendering a channel as a percentage.
const percentagePrecision = 3

// Rgb is an sRGB color that can be written in CSS rgb() notation.
type Rgb struct {
	space colorspace.SRGB
}

// NewRgb builds an Rgb, clamping each present channel to [0, 1].
func NewRgb(r, g, b, a colorspace.Channel) Rgb {
	return Rgb{space: colorspace.NewSRGB(r, g, b, a)}
}

// Space returns the underlying color space value.
func (c Rgb) Space() colorspace.SRGB { return c.space }

// CSSAsPercentage renders the color as rgb(R G B[ A]) with each channel
// as a percentage. Absent red, green or blue channels are written as none.
// An absent alpha is omitted entirely, along with its separating space.
func (c Rgb) CSSAsPercentage() string {
	var sb strings.Builder
	sb.Grow(32)
	sb.WriteString("rgb(")
	writeChannel(&sb, c.space.Red())
	sb.WriteByte(' ')
	writeChannel(&sb, c.space.Green())
	sb.WriteByte(' ')
	writeChannel(&sb, c.space.Blue())
	if c.space.Alpha().IsSet() {
		sb.WriteByte(' ')
		writeChannel(&sb, c.space.Alpha())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (c Rgb) String() string { return c.CSSAsPercentage() }

func writeChannel(sb *strings.Builder, ch colorspace.Channel) {
	v, ok := ch.Get()
	if !ok {
		sb.WriteString("none")
		return
	}
	sb.WriteString(asPercentage(v))
}

// asPercentage formats a [0, 1] fraction as a percentage such as 50% or
// 33.3%, without trailing zeros.
func asPercentage(v float32) string {
	p := numeric.RoundTo(v*100, percentagePrecision)
	if p == 0 {
		p = 0 // no "-0%"
	}
	return strconv.FormatFloat(float64(p), 'f', -1, 32) + "%"
}
