package colorspace

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kovidgoyal/csscolor/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allow_unexported = cmp.AllowUnexported(SRGB{}, OKLab{})

func TestChannel(t *testing.T) {
	var zero Channel
	assert.False(t, zero.IsSet())
	assert.True(t, zero.Equal(None()))
	assert.Equal(t, "none", zero.String())
	assert.Equal(t, float32(7), zero.ValueOr(7))

	c := Some(0)
	v, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, float32(0), v)
	assert.False(t, c.Equal(None()), "zero must be distinct from absent")
	assert.True(t, c.Equal(Some(0)))
	assert.False(t, c.Equal(Some(0.5)))
	assert.Equal(t, float32(0), c.ValueOr(7))
	assert.Equal(t, "0.25", Some(0.25).String())
}

func TestSRGBClamping(t *testing.T) {
	testCases := []struct {
		name string
		in   Channel
		want Channel
	}{
		{"BelowRange", Some(-1), Some(0)},
		{"AboveRange", Some(2), Some(1)},
		{"InRange", Some(0.5), Some(0.5)},
		{"Absent", None(), None()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSRGB(tc.in, tc.in, tc.in, tc.in)
			want := SRGB{red: tc.want, green: tc.want, blue: tc.want, alpha: tc.want}
			if diff := cmp.Diff(want, s, allow_unexported); diff != "" {
				t.Fatalf("unexpected SRGB (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSRGBChannelsIndependent(t *testing.T) {
	s := NewSRGB(Some(-1), None(), Some(0.25), Some(3))
	assert.True(t, s.Red().Equal(Some(0)))
	assert.False(t, s.Green().IsSet())
	assert.True(t, s.Blue().Equal(Some(0.25)))
	assert.True(t, s.Alpha().Equal(Some(1)))
	assert.Equal(t, "SRGB{red: 0 green: none blue: 0.25 alpha: 1}", s.String())
}

func TestOKLab(t *testing.T) {
	testCases := []struct {
		name        string
		l, a, b, al Channel
		want        OKLab
	}{
		{
			name: "LightnessAboveRange",
			l:    Some(5),
			want: OKLab{l: Some(4)},
		},
		{
			name: "LightnessBelowRange",
			l:    Some(-1),
			want: OKLab{l: Some(0)},
		},
		{
			name: "LightnessHDR",
			l:    Some(2.5),
			want: OKLab{l: Some(2.5)},
		},
		{
			name: "LightnessRounded",
			l:    Some(0.123456),
			want: OKLab{l: Some(0.12346)},
		},
		{
			name: "ChromaClamped",
			l:    Some(0.5),
			a:    Some(-0.75),
			b:    Some(0.75),
			al:   Some(-0.1),
			want: OKLab{l: Some(0.5), a: Some(-0.5), b: Some(0.5), alpha: Some(0)},
		},
		{
			name: "ChromaInRange",
			a:    Some(0.125),
			b:    Some(-0.25),
			al:   Some(0.5),
			want: OKLab{a: Some(0.125), b: Some(-0.25), alpha: Some(0.5)},
		},
		{
			name: "AllAbsent",
			want: OKLab{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewOKLab(tc.l, tc.a, tc.b, tc.al)
			if diff := cmp.Diff(tc.want, got, allow_unexported); diff != "" {
				t.Fatalf("unexpected OKLab (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOKLabAccessors(t *testing.T) {
	o := NewOKLab(Some(1), None(), Some(0.1), None())
	assert.True(t, o.L().Equal(Some(1)))
	assert.False(t, o.A().IsSet())
	assert.True(t, o.B().Equal(Some(0.1)))
	assert.False(t, o.Alpha().IsSet())
	assert.Equal(t, "OKLab{l: 1 a: none b: 0.1 alpha: none}", o.String())
}

func TestClampIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { logging.Set(nil) })

	NewSRGB(Some(0.5), None(), Some(0.5), None())
	require.Empty(t, buf.String(), "in range values must not be logged")

	NewSRGB(Some(2), None(), None(), None())
	out := buf.String()
	assert.Contains(t, out, `msg="channel clamped"`)
	assert.Contains(t, out, "space=srgb")
	assert.Contains(t, out, "channel=red")
	assert.Contains(t, out, "clamped=1")
}
