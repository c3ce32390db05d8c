package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"

	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/colormap"
)

// DefaultFontFamily is used for text when no font family is configured.
const DefaultFontFamily = "sans-serif"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	background *color.RGBA
}

// WithFontFamily sets the CSS font-family of text elements.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.fontFamily = f } }

// WithBackground fills the whole surface before the display list.
func WithBackground(c color.RGBA) SVGOption { return func(r *svgRenderer) { r.background = &c } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{fontFamily: DefaultFontFamily}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG replays the canvas display list as an SVG document sized to the
// canvas surface. Partial clears have no SVG equivalent and are skipped.
func RenderSVG(c *canvas.Canvas, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	w, h := c.Width(), c.Height()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`+"\n",
		w, h, w, h)
	if ch := c.Chart(); ch != nil {
		fmt.Fprintf(&buf, `  <metadata data-chart="%s" data-kind="%s"/>`+"\n", ch.ID, ch.Kind)
	}
	if r.background != nil {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%g" height="%g"%s/>`+"\n", w, h, paint("fill", *r.background))
	}

	for _, op := range c.Ops() {
		switch op.Kind {
		case canvas.OpFillRect:
			fmt.Fprintf(&buf, `  <rect x="%g" y="%g" width="%g" height="%g"%s/>`+"\n",
				op.X, op.Y, op.W, op.H, paint("fill", op.Color))
		case canvas.OpStrokeLine:
			fmt.Fprintf(&buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke-width="%g"%s/>`+"\n",
				op.X, op.Y, op.X2, op.Y2, op.Width, paint("stroke", op.Color))
		case canvas.OpFillText:
			r.renderText(&buf, op)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderText(buf *bytes.Buffer, op canvas.Op) {
	weight := ""
	if op.Font.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `  <text x="%g" y="%g" font-family="%s" font-size="%g"%s text-anchor="%s"%s>`,
		op.X, op.Y, r.fontFamily, op.Font.Size, weight, textAnchor(op.Align), paint("fill", op.Color))
	xml.EscapeText(buf, []byte(op.Text))
	buf.WriteString("</text>\n")
}

func textAnchor(a canvas.Align) string {
	switch a {
	case canvas.AlignCenter:
		return "middle"
	case canvas.AlignRight:
		return "end"
	default:
		return "start"
	}
}

// paint renders a fill or stroke attribute, with an opacity attribute for
// translucent colors.
func paint(attr string, c color.RGBA) string {
	s := fmt.Sprintf(` %s="%s"`, attr, colormap.Hex(c))
	if c.A != 0xff {
		s += fmt.Sprintf(` %s-opacity="%.3g"`, attr, float64(c.A)/255)
	}
	return s
}
