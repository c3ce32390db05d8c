package canvas

import (
	"time"

	"github.com/google/uuid"
)

// Tick is an axis marker placed by a renderer.
type Tick struct {
	Index int     `json:"index"` // index into the label array
	Pos   float64 `json:"pos"`   // pixel position along the axis
	Label string  `json:"label"`
}

// Chart is the state object a renderer attaches to a canvas. It describes
// what the canvas currently shows.
type Chart struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Created   time.Time `json:"created"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Cells     int       `json:"cells"`
	FreqTicks []Tick    `json:"freq_ticks,omitempty"`
	TimeTicks []Tick    `json:"time_ticks,omitempty"`

	destroyed bool
}

// NewChart creates a chart with a fresh identity.
func NewChart(kind string) *Chart {
	return &Chart{
		ID:      uuid.New(),
		Kind:    kind,
		Created: time.Now(),
	}
}

// Destroy releases the chart's state. It is safe to call more than once.
func (c *Chart) Destroy() {
	if c == nil || c.destroyed {
		return
	}
	c.FreqTicks = nil
	c.TimeTicks = nil
	c.Cells = 0
	c.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (c *Chart) Destroyed() bool {
	return c != nil && c.destroyed
}
