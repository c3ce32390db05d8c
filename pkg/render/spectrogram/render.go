package spectrogram

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/colormap"
	"github.com/matzehuels/keyscope/pkg/errors"
)

// ChartKind identifies charts attached by this renderer.
const ChartKind = "spectrogram"

// Defaults for a Renderer built without options.
const (
	DefaultTitle         = "Keyboard Acoustic Spectrogram"
	DefaultFallbackWidth = 600
	DefaultMaxHeight     = 400
	DefaultAspect        = 0.6
	DefaultFreqTicks     = 8
	DefaultTimeTicks     = 6
)

// Fixed overlay geometry, in pixels.
const (
	cellOverlap = 0.5

	freqBandWidth = 60
	freqLabelX    = 55
	freqTickLen   = 5

	timeBandHeight = 20
	timeLabelInset = 6
	timeTickLen    = 5

	titleX, titleY       = 70, 5
	titleW, titleH       = 200, 20
	titleTextX, titleTxY = 75, 19

	labelFontSize = 10
	titleFontSize = 12
)

var (
	bandFill  = color.RGBA{R: 255, G: 255, B: 255, A: 217} // white at 85%
	titleFill = color.RGBA{R: 255, G: 255, B: 255, A: 179} // white at 70%
	labelInk  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	tickInk   = color.RGBA{A: 0xff}
)

// Option configures a Renderer.
type Option func(*Renderer)

// Renderer paints spectrogram payloads. A Renderer holds configuration
// only; it keeps no reference to payloads or canvases between calls.
type Renderer struct {
	logger        *log.Logger
	title         string
	fallbackWidth float64
	maxHeight     float64
	aspect        float64
	freqTicks     int
	timeTicks     int
}

// WithLogger sets the logger used to report skipped renders.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTitle sets the overlay title. An empty title keeps the default.
func WithTitle(s string) Option {
	return func(r *Renderer) {
		if s != "" {
			r.title = s
		}
	}
}

// WithFallbackWidth sets the width used when the parent width is unknown.
func WithFallbackWidth(w float64) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.fallbackWidth = w
		}
	}
}

// WithMaxHeight caps the surface height.
func WithMaxHeight(h float64) Option {
	return func(r *Renderer) {
		if h > 0 {
			r.maxHeight = h
		}
	}
}

// WithAspect sets the height/width ratio applied below the height cap.
func WithAspect(a float64) Option {
	return func(r *Renderer) {
		if a > 0 {
			r.aspect = a
		}
	}
}

// WithTickCounts sets the maximum number of frequency and time ticks.
func WithTickCounts(freq, time int) Option {
	return func(r *Renderer) {
		if freq > 0 {
			r.freqTicks = freq
		}
		if time > 0 {
			r.timeTicks = time
		}
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		logger:        log.Default(),
		title:         DefaultTitle,
		fallbackWidth: DefaultFallbackWidth,
		maxHeight:     DefaultMaxHeight,
		aspect:        DefaultAspect,
		freqTicks:     DefaultFreqTicks,
		timeTicks:     DefaultTimeTicks,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render paints p onto c with a default Renderer.
func Render(c *canvas.Canvas, p *Payload) {
	New().Render(c, p)
}

// Render repaints c from scratch with p. A nil canvas or an empty or ragged
// matrix leaves the canvas untouched and is only logged.
func (r *Renderer) Render(c *canvas.Canvas, p *Payload) {
	if c == nil {
		r.logger.Warn("spectrogram render skipped",
			"err", errors.New(errors.ErrCodeMissingTarget, "no canvas"))
		return
	}
	if err := p.Validate(); err != nil {
		r.logger.Warn("spectrogram render skipped", "canvas", c.ID, "code", errors.GetCode(err), "err", err)
		return
	}

	c.Attach(nil)

	w, h := r.surfaceSize(c.ParentWidth())
	c.SetSize(w, h)

	rows, cols := p.Rows(), p.Cols()
	cellW := w / float64(cols)
	cellH := h / float64(rows)

	c.ClearRect(0, 0, w, h)

	chart := canvas.NewChart(ChartKind)
	chart.Rows, chart.Cols = rows, cols

	for row := range rows {
		y := h - float64(row+1)*cellH
		for col := range cols {
			c.FillRect(float64(col)*cellW, y, cellW+cellOverlap, cellH+cellOverlap,
				colormap.ColorFor(p.Data[row][col]))
		}
	}
	chart.Cells = rows * cols

	if len(p.Freq) > 0 {
		chart.FreqTicks = r.drawFreqAxis(c, p.Freq)
	}
	if len(p.Time) > 0 {
		chart.TimeTicks = r.drawTimeAxis(c, p.Time)
	}
	r.drawTitle(c)

	c.Attach(chart)

	r.logger.Debug("rendered spectrogram",
		"canvas", c.ID, "rows", rows, "cols", cols,
		"width", w, "height", h, "chart", chart.ID)
}

// surfaceSize derives the pixel size from the parent container's width.
func (r *Renderer) surfaceSize(parentWidth float64) (float64, float64) {
	w := math.Floor(parentWidth)
	if w <= 0 {
		w = r.fallbackWidth
	}
	return w, math.Min(r.maxHeight, math.Floor(w*r.aspect))
}

func (r *Renderer) drawFreqAxis(c *canvas.Canvas, freq []float64) []canvas.Tick {
	h := c.Height()
	c.FillRect(0, 0, freqBandWidth, h, bandFill)

	n := float64(len(freq))
	font := canvas.Font{Size: labelFontSize}
	idx := TickIndices(len(freq), r.freqTicks)
	ticks := make([]canvas.Tick, 0, len(idx))
	for _, i := range idx {
		label := FormatFreq(freq[i])
		y := h - (float64(i)/n)*h
		c.FillText(label, freqLabelX, y+4, canvas.AlignRight, font, labelInk)
		c.StrokeLine(freqBandWidth, y, freqBandWidth+freqTickLen, y, tickInk)
		ticks = append(ticks, canvas.Tick{Index: i, Pos: y, Label: label})
	}
	return ticks
}

func (r *Renderer) drawTimeAxis(c *canvas.Canvas, times []float64) []canvas.Tick {
	w, h := c.Width(), c.Height()
	top := h - timeBandHeight
	c.FillRect(0, top, w, timeBandHeight, bandFill)

	font := canvas.Font{Size: labelFontSize}
	idx := TickIndices(len(times), r.timeTicks)
	ticks := make([]canvas.Tick, 0, len(idx))
	for _, i := range idx {
		label := FormatTime(times[i])
		var x float64
		if len(times) > 1 {
			x = float64(i) / float64(len(times)-1) * w
		}
		c.FillText(label, x, h-timeLabelInset, canvas.AlignCenter, font, labelInk)
		c.StrokeLine(x, top, x, top+timeTickLen, tickInk)
		ticks = append(ticks, canvas.Tick{Index: i, Pos: x, Label: label})
	}
	return ticks
}

func (r *Renderer) drawTitle(c *canvas.Canvas) {
	c.FillRect(titleX, titleY, titleW, titleH, titleFill)
	c.FillText(r.title, titleTextX, titleTxY, canvas.AlignLeft,
		canvas.Font{Size: titleFontSize, Bold: true}, labelInk)
}
