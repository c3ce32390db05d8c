package keyboard

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/colormap"
	"github.com/matzehuels/keyscope/pkg/dom"
	"github.com/matzehuels/keyscope/pkg/errors"
)

// ChartKind identifies charts attached by Paint.
const ChartKind = "keyboard"

const (
	paintMargin   = 20
	captionHeight = 30
	keyFontSize   = 14
)

var (
	pageFill   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	captionInk = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	keyFont    = canvas.Font{Size: keyFontSize}
)

type paintedKey struct {
	el   *dom.Element
	w, h float64
}

// Paint lays the keyboard kb, as returned by Render, out on c. Rows are
// centered like the flex layout they come from; lifted keys are drawn with
// their offset and stronger shadow. The caption, if the container has one,
// is drawn below the keyboard. The canvas is resized to fit.
func Paint(kb *dom.Element, c *canvas.Canvas) error {
	if kb == nil || c == nil {
		return errors.New(errors.ErrCodeMissingTarget, "nothing to paint")
	}

	rows := kb.ByClass(ClassRow)
	if len(rows) == 0 {
		return errors.New(errors.ErrCodeEmptyData, "keyboard has no rows")
	}

	grid := make([][]paintedKey, len(rows))
	var width, height float64
	cols := 0
	for i, row := range rows {
		var rowW, rowH float64
		for _, el := range row.ByClass(ClassKey) {
			k := paintedKey{el: el, w: parsePx(el.Style["width"]), h: parsePx(el.Style["height"])}
			grid[i] = append(grid[i], k)
			rowW += k.w
			rowH = max(rowH, k.h)
		}
		if n := len(grid[i]); n > 1 {
			rowW += float64(n-1) * rowGap
		}
		cols = max(cols, len(grid[i]))
		width = max(width, rowW)
		height += rowH
	}
	height += float64(len(rows)-1) * rowGap

	var text string
	if parent := kb.Parent(); parent != nil {
		if caps := parent.ByClass(ClassCaption); len(caps) > 0 {
			text = caps[0].TextContent()
		}
	}

	surfaceW := width + 2*paintMargin
	surfaceH := height + 2*paintMargin
	if text != "" {
		surfaceH += captionHeight
	}

	c.Attach(nil)
	c.SetSize(surfaceW, surfaceH)
	c.ClearRect(0, 0, surfaceW, surfaceH)
	c.FillRect(0, 0, surfaceW, surfaceH, pageFill)

	chart := canvas.NewChart(ChartKind)
	chart.Rows, chart.Cols = len(rows), cols

	y := float64(paintMargin)
	for _, row := range grid {
		var rowW, rowH float64
		for _, k := range row {
			rowW += k.w
			rowH = max(rowH, k.h)
		}
		rowW += float64(max(len(row)-1, 0)) * rowGap

		x := paintMargin + (width-rowW)/2
		for _, k := range row {
			paintKey(c, k, x, y)
			x += k.w + rowGap
			chart.Cells++
		}
		y += rowH + rowGap
	}

	if text != "" {
		c.FillText(captionText(text), surfaceW/2, paintMargin+height+captionHeight,
			canvas.AlignCenter, canvas.Font{Size: keyFontSize, Bold: true}, captionInk)
	}

	c.Attach(chart)
	return nil
}

func paintKey(c *canvas.Canvas, k paintedKey, x, y float64) {
	lift := parseTranslateY(k.el.Style["transform"])
	dy, shadow := parseShadow(k.el.Style["box-shadow"])

	bg, err := colormap.ParseHex(k.el.Style["background-color"])
	if err != nil {
		bg, _ = colormap.ParseHex(NeutralBackground)
	}
	fg, err := colormap.ParseHex(k.el.Style["color"])
	if err != nil {
		fg, _ = colormap.ParseHex(NeutralColor)
	}

	top := y + lift
	if shadow.A > 0 {
		c.FillRect(x, top+dy, k.w, k.h, shadow)
	}
	c.FillRect(x, top, k.w, k.h, bg)
	c.FillText(k.el.Text, x+k.w/2, top+k.h/2+5, canvas.AlignCenter, keyFont, fg)
}

func captionText(text string) string {
	if strings.HasPrefix(text, CaptionLabel) {
		return CaptionLabel + " " + strings.TrimPrefix(text, CaptionLabel)
	}
	return text
}

// parsePx reads "40px" or "40".
func parsePx(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "px")), 64)
	return v
}

// parseTranslateY reads the offset of "translateY(-2px)".
func parseTranslateY(s string) float64 {
	s, ok := strings.CutPrefix(s, "translateY(")
	if !ok {
		return 0
	}
	return parsePx(strings.TrimSuffix(s, ")"))
}

// parseShadow reads the vertical offset and color of a box-shadow of the
// form "0 2px 4px rgba(0, 0, 0, 0.2)".
func parseShadow(s string) (float64, color.RGBA) {
	head, rgba, ok := strings.Cut(s, "rgba(")
	if !ok {
		return 0, color.RGBA{}
	}
	fields := strings.Fields(head)
	var dy float64
	if len(fields) >= 2 {
		dy = parsePx(fields[1])
	}

	parts := strings.Split(strings.TrimSuffix(strings.TrimSpace(rgba), ")"), ",")
	if len(parts) != 4 {
		return dy, color.RGBA{}
	}
	var ch [3]uint8
	for i := range ch {
		v, _ := strconv.Atoi(strings.TrimSpace(parts[i]))
		ch[i] = uint8(min(max(v, 0), 255))
	}
	a, _ := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	return dy, color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(min(max(a, 0), 1)*255 + 0.5)}
}
