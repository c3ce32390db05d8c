// Package keyboard renders a keystroke frequency heat map on a fixed QWERTY
// layout.
//
// [Renderer.Render] rebuilds the keyboard inside a container of a
// [dom.Document] on every call: the container is cleared, the static layout
// is laid out with every key in its neutral style, and each key whose label
// matches a character of the decoded text is recolored on a green-to-red hue
// scale by its relative frequency and lifted by two pixels. A caption with the
// raw text follows the keyboard when the text is non-empty.
//
// [Paint] lays a rendered keyboard out on a [canvas.Canvas] so raster and
// vector sinks can emit it.
package keyboard
