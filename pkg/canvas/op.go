package canvas

import "image/color"

// OpKind identifies a drawing call.
type OpKind int

const (
	OpClearRect OpKind = iota
	OpFillRect
	OpFillText
	OpStrokeLine
)

var opKindNames = [...]string{"clear", "rect", "text", "line"}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "unknown"
}

// MarshalText lets display lists serialize kinds by name.
func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Align is the horizontal text anchor, as in the canvas textAlign property.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{"left", "center", "right"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "left"
}

// MarshalText serializes the alignment by name.
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Font describes the text face of a FillText call.
type Font struct {
	Size float64 `json:"size"`
	Bold bool    `json:"bold,omitempty"`
}

// Op is one recorded drawing call.
//
// Rect ops use X, Y, W, H. Line ops run from (X, Y) to (X2, Y2). Text ops
// anchor Text at (X, Y) on its baseline, positioned horizontally by Align.
type Op struct {
	Kind  OpKind     `json:"kind"`
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	W     float64    `json:"w,omitempty"`
	H     float64    `json:"h,omitempty"`
	X2    float64    `json:"x2,omitempty"`
	Y2    float64    `json:"y2,omitempty"`
	Color color.RGBA `json:"color"`
	Text  string     `json:"text,omitempty"`
	Align Align      `json:"align,omitempty"`
	Font  Font       `json:"font,omitzero"`
	Width float64    `json:"line_width,omitempty"`
}
