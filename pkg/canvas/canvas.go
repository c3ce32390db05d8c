package canvas

import "image/color"

// Canvas is a drawing surface inside a parent container.
type Canvas struct {
	ID string

	parentWidth   float64
	width, height float64
	ops           []Op
	chart         *Chart
}

// New creates a canvas whose parent container is parentWidth pixels wide.
// A parentWidth of 0 means the layout width is unknown.
func New(id string, parentWidth float64) *Canvas {
	return &Canvas{ID: id, parentWidth: parentWidth}
}

// ParentWidth returns the parent container's layout width, or 0 if unknown.
func (c *Canvas) ParentWidth() float64 { return c.parentWidth }

// Width returns the surface width in pixels.
func (c *Canvas) Width() float64 { return c.width }

// Height returns the surface height in pixels.
func (c *Canvas) Height() float64 { return c.height }

// SetSize resizes the surface. Like a canvas element, resizing discards
// everything painted so far.
func (c *Canvas) SetSize(w, h float64) {
	c.width, c.height = w, h
	c.ops = nil
}

// Chart returns the attached chart, or nil.
func (c *Canvas) Chart() *Chart { return c.chart }

// Attach destroys the currently attached chart, if any, and attaches ch.
// Passing nil only detaches.
func (c *Canvas) Attach(ch *Chart) {
	if c.chart != nil {
		c.chart.Destroy()
	}
	c.chart = ch
}

// Ops returns a copy of the display list.
func (c *Canvas) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Len returns the number of recorded ops.
func (c *Canvas) Len() int { return len(c.ops) }

// ClearRect clears a rectangle. Clearing the whole surface empties the
// display list.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= c.width && y+h >= c.height {
		c.ops = c.ops[:0]
		return
	}
	c.ops = append(c.ops, Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
}

// FillRect paints a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, fill color.RGBA) {
	c.ops = append(c.ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: fill})
}

// FillText draws text with its baseline at y.
func (c *Canvas) FillText(text string, x, y float64, align Align, font Font, fill color.RGBA) {
	c.ops = append(c.ops, Op{
		Kind: OpFillText, X: x, Y: y,
		Text: text, Align: align, Font: font, Color: fill,
	})
}

// StrokeLine draws a straight line segment one pixel wide.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, stroke color.RGBA) {
	c.ops = append(c.ops, Op{
		Kind: OpStrokeLine, X: x1, Y: y1, X2: x2, Y2: y2,
		Color: stroke, Width: 1,
	})
}

// Count returns how many recorded ops have the given kind.
func (c *Canvas) Count(kind OpKind) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
