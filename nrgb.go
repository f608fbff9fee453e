package csscolor

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/kovidgoyal/csscolor/colorspace"
	"golang.org/x/image/colornames"
)

var _ = fmt.Print

var _ color.Color = Rgb{}

// RgbModel converts any color.Color into an Rgb with every channel present.
var RgbModel color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if r, ok := c.(Rgb); ok {
		return r
	}
	return FromColor(c)
}

// FromColor returns a fully specified Rgb equivalent to c, read as
// non-premultiplied 16-bit components.
func FromColor(c color.Color) Rgb {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return NewRgb(fraction16(n.R), fraction16(n.G), fraction16(n.B), fraction16(n.A))
}

// RGBA implements color.Color. Absent red, green and blue channels read as
// 0 and an absent alpha reads as fully opaque.
func (c Rgb) RGBA() (r, g, b, a uint32) {
	n := color.NRGBA64{
		R: to16(c.space.Red().ValueOr(0)),
		G: to16(c.space.Green().ValueOr(0)),
		B: to16(c.space.Blue().ValueOr(0)),
		A: to16(c.space.Alpha().ValueOr(1)),
	}
	return n.RGBA()
}

// Named looks up a CSS color keyword such as "cornflowerblue" or "Teal".
// Matching is case-insensitive.
func Named(name string) (ans Rgb, ok bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ans, false
	}
	return FromColor(c), true
}

func fraction16(v uint16) colorspace.Channel {
	return colorspace.Some(float32(v) / 0xffff)
}

func to16(v float32) uint16 {
	return uint16(math.Round(float64(v) * 0xffff))
}
