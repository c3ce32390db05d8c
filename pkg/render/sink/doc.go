// Package sink serializes rendered visualizations.
//
// Canvas display lists (spectrograms and painted keyboards) are emitted as
// SVG ([RenderSVG]), PNG ([RenderPNG], rasterized natively), PDF
// ([RenderPDF], via rsvg-convert) or JSON ([RenderJSON]). Keyboard element
// trees are emitted as standalone HTML ([RenderHTML]) or JSON
// ([RenderElementJSON]).
//
// Sinks only read their input; they are safe to call concurrently on the
// same canvas or tree as long as nothing renders into it meanwhile.
package sink
