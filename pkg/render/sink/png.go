package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/errors"
)

// DefaultScale is the PNG pixel density.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background *color.RGBA
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithPNGBackground fills the image before the display list is replayed.
// Without it, unpainted pixels stay transparent.
func WithPNGBackground(c color.RGBA) PNGOption {
	return func(r *pngRenderer) { r.background = &c }
}

// RenderPNG rasterizes the canvas display list and encodes it as PNG.
func RenderPNG(c *canvas.Canvas, opts ...PNGOption) ([]byte, error) {
	img, err := Rasterize(c, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Rasterize replays the canvas display list into an RGBA image scaled by the
// configured factor. Text uses the fixed 7x13 bitmap face regardless of
// scale; bold text is drawn twice, one pixel apart.
func Rasterize(c *canvas.Canvas, opts ...PNGOption) (*image.RGBA, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(math.Ceil(c.Width() * r.scale))
	h := int(math.Ceil(c.Height() * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeEmptyData, "canvas %q has no surface", c.ID)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(nrgba(*r.background)), image.Point{}, draw.Src)
	}
	for _, op := range c.Ops() {
		switch op.Kind {
		case canvas.OpClearRect:
			draw.Draw(img, r.rect(op.X, op.Y, op.W, op.H), image.Transparent, image.Point{}, draw.Src)
		case canvas.OpFillRect:
			draw.Draw(img, r.rect(op.X, op.Y, op.W, op.H), image.NewUniform(nrgba(op.Color)), image.Point{}, draw.Over)
		case canvas.OpStrokeLine:
			r.line(img, op)
		case canvas.OpFillText:
			r.text(img, op)
		}
	}
	return img, nil
}

// rect converts surface coordinates to a pixel rectangle covering every
// pixel the shape touches.
func (r pngRenderer) rect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x*r.scale)), int(math.Floor(y*r.scale)),
		int(math.Ceil((x+w)*r.scale)), int(math.Ceil((y+h)*r.scale)),
	)
}

func (r pngRenderer) line(img *image.RGBA, op canvas.Op) {
	src := image.NewUniform(nrgba(op.Color))
	thick := max(int(math.Round(op.Width*r.scale)), 1)

	x0, y0 := op.X*r.scale, op.Y*r.scale
	x1, y1 := op.X2*r.scale, op.Y2*r.scale
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	// Overlapping dots would compound translucent strokes, so each pixel
	// is painted at most once.
	seen := make(map[image.Point]bool, steps)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := image.Pt(int(x0+t*(x1-x0))-thick/2, int(y0+t*(y1-y0))-thick/2)
		if seen[p] {
			continue
		}
		seen[p] = true
		draw.Draw(img, image.Rectangle{Min: p, Max: p.Add(image.Pt(thick, thick))}, src, image.Point{}, draw.Over)
	}
}

func (r pngRenderer) text(img *image.RGBA, op canvas.Op) {
	d := &font.Drawer{Dst: img, Src: image.NewUniform(nrgba(op.Color)), Face: basicfont.Face7x13}
	width := d.MeasureString(op.Text).Ceil()

	x := int(math.Round(op.X * r.scale))
	switch op.Align {
	case canvas.AlignCenter:
		x -= width / 2
	case canvas.AlignRight:
		x -= width
	}
	y := int(math.Round(op.Y * r.scale))

	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(op.Text)
	if op.Font.Bold {
		d.Dot = fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y)}
		d.DrawString(op.Text)
	}
}

// nrgba reinterprets a display-list color, which is not premultiplied.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
