// Package spectrogram renders a magnitude matrix onto a canvas.
//
// # Payload
//
// A [Payload] holds the matrix (row = frequency bin, low to high; column =
// time frame, earliest first) with values pre-normalized to [0, 1], plus
// optional time labels in seconds (one per column) and frequency labels in
// Hz (one per row). [FromPower] builds a payload from a raw power matrix the
// way the analysis service did: decibel conversion, an 8 kHz crop and
// min-max normalization.
//
// # Rendering
//
// [Renderer.Render] is a full, stateless repaint:
//
//  1. Destroy the chart attached to the canvas.
//  2. Size the surface from the parent's layout width (fallback 600px) and
//     min(400, width*0.6) height.
//  3. Compute cell size from the matrix shape.
//  4. Clear the surface.
//  5. Paint one rectangle per cell through [colormap.ColorFor], row 0 at the
//     bottom, each overlapping its neighbours by half a pixel.
//  6. Frequency band on the left with up to 8 ticks in kHz.
//  7. Time band at the bottom with up to 6 ticks in seconds.
//  8. Title overlay in the top-left corner.
//
// An empty or ragged matrix, or a nil canvas, makes the call a logged no-op.
//
//	c := canvas.New("spectrogram", 100)
//	spectrogram.New().Render(c, &spectrogram.Payload{
//	    Data: [][]float64{{0, 1}, {0.5, 0.5}},
//	    Time: []float64{0, 1},
//	    Freq: []float64{0, 8000},
//	})
//
// [colormap.ColorFor]: github.com/matzehuels/keyscope/pkg/colormap.ColorFor
package spectrogram
