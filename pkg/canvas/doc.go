// Package canvas provides the 2D drawing surface the renderers paint on.
//
// A [Canvas] models a browser canvas element: it sits inside a parent
// container whose layout width may or may not be known, it has a pixel size
// that the renderer chooses, and it accumulates drawing calls. Instead of
// pixels the canvas records a display list of [Op] values, which the
// formats in [sink] turn into SVG, PNG or PDF.
//
// Renderers may attach a [Chart] to a canvas: the state object that
// describes the current visualization. Attaching a new chart always destroys
// the previous one first, so repeated renders on one canvas never accumulate
// state.
//
// # Clearing
//
// [Canvas.ClearRect] covering the whole surface, and [Canvas.SetSize], both
// drop the display list. A partial ClearRect is recorded as an op.
//
// A Canvas is not safe for concurrent use. Callers must not start a second
// render on a canvas before the previous one returns.
//
// [sink]: github.com/matzehuels/keyscope/pkg/render/sink
package canvas
