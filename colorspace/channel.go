// Package colorspace models points in the sRGB and OKLab color spaces. All
// channel values are optional: an absent channel is distinct from zero and
// is preserved as-is, so that a later blend can take the value from the
// other color.
//
// Values are normalized when a color is constructed and never change
// afterwards, so colors may be shared freely between goroutines.
package colorspace

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/kovidgoyal/csscolor/internal/logging"
	"github.com/kovidgoyal/csscolor/numeric"
)

// Channel is one optionally present color component. The zero value is
// absent.
type Channel struct {
	value float32
	set   bool
}

// Some returns a present channel holding v.
func Some(v float32) Channel { return Channel{value: v, set: true} }

// None returns an absent channel.
func None() Channel { return Channel{} }

func (c Channel) IsSet() bool { return c.set }

// Get returns the value and whether it is present.
func (c Channel) Get() (float32, bool) { return c.value, c.set }

// ValueOr returns the value, or def when the channel is absent.
func (c Channel) ValueOr(def float32) float32 {
	if c.set {
		return c.value
	}
	return def
}

func (c Channel) Equal(o Channel) bool {
	if !c.set || !o.set {
		return c.set == o.set
	}
	return c.value == o.value
}

func (c Channel) String() string {
	if !c.set {
		return "none"
	}
	return strconv.FormatFloat(float64(c.value), 'g', -1, 32)
}

// clamp clamps a present channel to [lo, hi], logging when the input was
// out of range. Absent channels pass through untouched.
func clamp(space, name string, c Channel, lo, hi float32) Channel {
	if !c.set {
		return c
	}
	v := numeric.Clamp(c.value, lo, hi)
	if v != c.value {
		if l := logging.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("channel clamped", "space", space, "channel", name, "value", c.value, "clamped", v)
		}
	}
	return Some(v)
}
