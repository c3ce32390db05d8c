package sink

import (
	"github.com/matzehuels/keyscope/pkg/canvas"
	"github.com/matzehuels/keyscope/pkg/render"
)

// RenderPDF renders the canvas as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(c *canvas.Canvas) ([]byte, error) {
	return render.ToPDF(RenderSVG(c))
}
