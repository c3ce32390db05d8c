package colormap

import (
	"image/color"
	"math"
)

// RGB is an opaque 8-bit color stop.
type RGB struct {
	R, G, B uint8
}

// RGBA converts the stop to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Segments is the number of linear segments in the ramp.
const Segments = 4

// stops are the segment boundaries of the spectrogram ramp. Segment k runs
// from stops[k] to stops[k+1] over [k/4, (k+1)/4).
var stops = [Segments + 1]RGB{
	{R: 0, G: 0, B: 128},     // dark purple
	{R: 146, G: 78, B: 255},  // blue
	{R: 33, G: 144, B: 140},  // teal
	{R: 253, G: 231, B: 37},  // yellow-green
	{R: 255, G: 255, B: 255}, // near-white
}

const segmentWidth = 1.0 / float64(Segments)

// Stops returns a copy of the ramp's boundary colors, lowest value first.
func Stops() []RGB {
	out := make([]RGB, len(stops))
	copy(out, stops[:])
	return out
}

// ColorFor maps v to the spectrogram ramp. v is clamped to [0, 1], so
// out-of-range input saturates to the boundary colors.
func ColorFor(v float64) color.RGBA {
	v = clamp01(v)
	k := int(v / segmentWidth)
	if k >= Segments {
		k = Segments - 1
	}
	// (v - start) * 4, not (v - start) / width, so channels floor the same
	// way as the per-segment formulas.
	t := (v - float64(k)*segmentWidth) * float64(Segments)
	return segmentColor(k, t).RGBA()
}

// segmentColor interpolates segment k at parameter t in [0, 1], flooring
// each channel.
func segmentColor(k int, t float64) RGB {
	a, b := stops[k], stops[k+1]
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Floor(float64(a) + t*(float64(b)-float64(a)))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
