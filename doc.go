/*
Package csscolor declares colors as defined by the CSS Color Module Level 4
(https://www.w3.org/TR/css-color-4/). Colors are held as points in either
the sRGB or the OKLab color space (see package colorspace). sRGB has three
channels, red, green and blue, each a fraction in [0, 1]. OKLab is a
perceptually uniform space with a lightness axis and two hue axes.

OKLab lightness may exceed 1 (100%) to allow for HDR devices.

Every channel may be absent. Absent is not the same as zero: it is kept so
that blending with another color can fill it from that color. Absent
channels are written as the keyword none in CSS output.
*/
package csscolor

import "fmt"

type CSSColorVersion struct {
	Major, Minor, Patch uint
}

func (v CSSColorVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v CSSColorVersion) Equal(o CSSColorVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v CSSColorVersion) After(o CSSColorVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v CSSColorVersion) Before(o CSSColorVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = CSSColorVersion{0, 1, 0}
