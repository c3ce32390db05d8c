package sink

import (
	"encoding/json"

	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/colormap"
	"github.com/matzehuels/keyscope/pkg/dom"
	"github.com/matzehuels/keyscope/pkg/errors"
)

type jsonOutput struct {
	ID     string        `json:"id,omitempty"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Chart  *canvas.Chart `json:"chart,omitempty"`
	Ops    []jsonOp      `json:"ops"`
}

type jsonOp struct {
	Kind    canvas.OpKind `json:"kind"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	W       float64       `json:"w,omitempty"`
	H       float64       `json:"h,omitempty"`
	X2      float64       `json:"x2,omitempty"`
	Y2      float64       `json:"y2,omitempty"`
	Color   string        `json:"color,omitempty"`
	Opacity *float64      `json:"opacity,omitempty"`
	Text    string        `json:"text,omitempty"`
	Align   string        `json:"align,omitempty"`
	Font    *canvas.Font  `json:"font,omitempty"`
	Width   float64       `json:"line_width,omitempty"`
}

// RenderJSON exports the canvas surface, its attached chart and its display
// list as pretty-printed JSON. Colors are written as "#rrggbb" with a
// separate opacity for translucent fills.
func RenderJSON(c *canvas.Canvas) ([]byte, error) {
	out := jsonOutput{
		ID:     c.ID,
		Width:  c.Width(),
		Height: c.Height(),
		Chart:  c.Chart(),
	}
	ops := c.Ops()
	out.Ops = make([]jsonOp, len(ops))
	for i, op := range ops {
		out.Ops[i] = toJSONOp(op)
	}
	return marshal(out)
}

func toJSONOp(op canvas.Op) jsonOp {
	j := jsonOp{
		Kind:  op.Kind,
		X:     op.X,
		Y:     op.Y,
		W:     op.W,
		H:     op.H,
		X2:    op.X2,
		Y2:    op.Y2,
		Text:  op.Text,
		Width: op.Width,
	}
	if op.Kind != canvas.OpClearRect {
		j.Color = colormap.Hex(op.Color)
		if op.Color.A != 0xff {
			a := float64(op.Color.A) / 255
			j.Opacity = &a
		}
	}
	if op.Kind == canvas.OpFillText {
		j.Align = op.Align.String()
		f := op.Font
		j.Font = &f
	}
	return j
}

// RenderElementJSON exports an element tree as pretty-printed JSON.
func RenderElementJSON(root *dom.Element) ([]byte, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeMissingTarget, "no element to export")
	}
	return marshal(root)
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal json")
	}
	return append(data, '\n'), nil
}
