package colormap

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Heat scale parameters: hsl(hue, 80%, 50%).
const (
	HeatSaturation = 0.8
	HeatLightness  = 0.5

	heatHueLow = 120.0 // green, least frequent
)

// HeatHue returns the keyboard hue in degrees for an intensity in [0, 1]:
// 120 (green) at 0 down to 0 (red) at 1.
func HeatHue(intensity float64) float64 {
	return heatHueLow * (1 - clamp01(intensity))
}

// HeatColor returns the opaque key background for the given intensity.
func HeatColor(intensity float64) color.RGBA {
	c := colorful.Hsl(HeatHue(intensity), HeatSaturation, HeatLightness)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex formats an opaque color as "#rrggbb".
func Hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
