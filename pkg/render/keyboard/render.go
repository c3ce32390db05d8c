package keyboard

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyscope/pkg/colormap"
	"github.com/matzehuels/keyscope/pkg/dom"
	"github.com/matzehuels/keyscope/pkg/errors"
)

// Class names of the generated elements.
const (
	ClassKeyboard = "keyboard-visualization"
	ClassRow      = "keyboard-row"
	ClassKey      = "keyboard-key"
	ClassCaption  = "detected-text"
)

// DefaultContainer is the container id used by the CLI and pipeline.
const DefaultContainer = "keyboardVisualization"

// CaptionLabel prefixes the decoded text below the keyboard.
const CaptionLabel = "Detected Text:"

// Key styles.
const (
	NeutralBackground = "#212529"
	NeutralColor      = "#f8f9fa"
	HighlightColor    = "#ffffff"

	restTransform   = "translateY(0)"
	liftedTransform = "translateY(-2px)"
	restShadow      = "0 2px 4px rgba(0, 0, 0, 0.2)"
	liftedShadow    = "0 4px 8px rgba(0, 0, 0, 0.3)"
	pressAnimation  = "keyPress 0.3s ease"

	rowGap = 4
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used to report skipped renders.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithKeyUnit sets the pixel size of a 1.0 key.
func WithKeyUnit(px float64) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.unit = px
		}
	}
}

// Renderer builds keyboard heat maps.
type Renderer struct {
	logger *log.Logger
	unit   float64
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{logger: log.Default(), unit: DefaultUnit}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render rebuilds the keyboard inside doc's containerID with a default
// Renderer.
func Render(doc *dom.Document, containerID, text string) *dom.Element {
	return New().Render(doc, containerID, text)
}

// Render clears the container, builds the keyboard, highlights the keys
// typed in text and appends the caption. It returns the keyboard element,
// or nil when the container does not exist.
func (r *Renderer) Render(doc *dom.Document, containerID, text string) *dom.Element {
	container := doc.GetElementByID(containerID)
	if container == nil {
		r.logger.Warn("keyboard render skipped",
			"container", containerID,
			"err", errors.New(errors.ErrCodeMissingTarget, "container %q not found", containerID))
		return nil
	}

	container.Clear()
	kb := container.AppendChild(r.build())
	reset(kb)

	if text == "" {
		r.logger.Debug("rendered neutral keyboard", "container", containerID)
		return kb
	}

	freq := Count(text)
	lit := highlight(kb, freq)
	container.AppendChild(caption(text))

	r.logger.Debug("rendered keyboard",
		"container", containerID, "chars", len(freq), "max", freq.Max(), "lit", lit)
	return kb
}

func (r *Renderer) build() *dom.Element {
	kb := dom.NewElement("div")
	kb.Class = ClassKeyboard
	kb.SetStyles(map[string]string{
		"display":        "flex",
		"flex-direction": "column",
		"align-items":    "center",
		"gap":            px(rowGap),
		"margin":         "20px 0",
		"user-select":    "none",
	})
	for _, row := range layout {
		rowDiv := dom.NewElement("div")
		rowDiv.Class = ClassRow
		rowDiv.SetStyles(map[string]string{"display": "flex", "gap": px(rowGap)})
		for _, k := range row {
			key := dom.NewElement("div")
			key.Class = ClassKey
			key.Text = k.Label
			key.SetData("key", k.Key)
			key.SetData("width", strconv.FormatFloat(k.Width, 'f', -1, 64))
			key.SetStyles(map[string]string{
				"width":           px(k.Width * r.unit),
				"height":          px(r.unit),
				"border":          "1px solid #6c757d",
				"border-radius":   "4px",
				"display":         "flex",
				"align-items":     "center",
				"justify-content": "center",
				"font-size":       "14px",
				"transition":      "all 0.2s ease",
			})
			rowDiv.AppendChild(key)
		}
		kb.AppendChild(rowDiv)
	}
	return kb
}

// reset puts every key in its neutral state.
func reset(kb *dom.Element) {
	for _, key := range kb.ByClass(ClassKey) {
		key.SetStyles(map[string]string{
			"background-color": NeutralBackground,
			"color":            NeutralColor,
			"transform":        restTransform,
			"box-shadow":       restShadow,
		})
		delete(key.Style, "animation")
		delete(key.Data, "intensity")
		delete(key.Data, "hue")
	}
}

// highlight colors the keys matching counted characters and returns how many
// key elements were lit. Characters without a key are skipped.
func highlight(kb *dom.Element, freq FrequencyMap) int {
	maxFreq := freq.Max()
	if maxFreq == 0 {
		return 0
	}
	lit := 0
	for _, ch := range freq.Chars() {
		keys := kb.ByData("key", ch)
		if len(keys) == 0 {
			continue
		}
		intensity := float64(freq[ch]) / float64(maxFreq)
		hue := colormap.HeatHue(intensity)
		bg := colormap.Hex(colormap.HeatColor(intensity))
		for _, key := range keys {
			key.SetStyles(map[string]string{
				"background-color": bg,
				"color":            HighlightColor,
				"transform":        liftedTransform,
				"box-shadow":       liftedShadow,
				"animation":        pressAnimation,
			})
			key.SetData("intensity", strconv.FormatFloat(intensity, 'f', -1, 64))
			key.SetData("hue", strconv.FormatFloat(hue, 'f', -1, 64))
			lit++
		}
	}
	return lit
}

func caption(text string) *dom.Element {
	div := dom.NewElement("div")
	div.Class = ClassCaption + " mt-3 p-3 border rounded bg-dark"

	label := dom.NewElement("strong")
	label.Text = CaptionLabel
	div.AppendChild(label)

	body := dom.NewElement("span")
	body.Class = "text-info"
	body.Text = text
	div.AppendChild(body)
	return div
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
