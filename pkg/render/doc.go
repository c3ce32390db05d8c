// Package render holds the keyscope visualization renderers.
//
// # Overview
//
// Two renderers share the [colormap] package for color:
//
//   - [spectrogram] paints a normalized frequency-by-time matrix on a
//     [canvas.Canvas] as a grid of colored cells with frequency and time
//     axis bands and a title overlay.
//   - [keyboard] builds a QWERTY heat map in a [dom.Document] container,
//     coloring each key by how often its character occurs in decoded text.
//
// Both are full repaints: each call tears down what the previous call built
// before drawing. Neither returns errors; a missing target or an empty
// payload is logged and leaves the target untouched.
//
// # Output
//
// The [sink] subpackage turns canvases and element trees into files (SVG,
// PNG, PDF, HTML, JSON). [ToPDF] converts any SVG to PDF using the external
// rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(c)
//	pdf, err := render.ToPDF(svg)
package render
