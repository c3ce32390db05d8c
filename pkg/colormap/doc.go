// Package colormap maps normalized scalars to colors.
//
// Two deliberately distinct scales live here and must not be unified:
//
//   - [ColorFor] is the spectrogram ramp: a continuous four-segment
//     piecewise-linear curve from dark purple through blue, teal and
//     yellow-green to near-white. It encodes signal magnitude.
//   - [HeatHue] and [HeatColor] are the keyboard scale: an inverted
//     traffic light where low keystroke frequency is green (hue 120) and
//     the most frequent key is red (hue 0).
//
// Both functions clamp their input to [0, 1] and never fail. NaN is treated
// as 0.
//
//	c := colormap.ColorFor(0.5)     // {33, 144, 140, 255}
//	h := colormap.HeatHue(0.5)      // 60
//	k := colormap.HeatColor(1.0)    // saturated red
package colormap
