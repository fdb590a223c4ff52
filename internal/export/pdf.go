package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"InkBoard/internal/state"
)

// Canvas units to millimetres on an A4 landscape page.
const scale = 3

// PDF writes a snapshot of the stroke collection as line segments,
// in paint order with each stroke's own color and width. It is a
// one-way picture of the board, not a reloadable document.
func PDF(w io.Writer, strokes []state.Stroke) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	for _, s := range strokes {
		if len(s.Points) < 2 {
			continue
		}
		r, g, b, _ := s.Color.RGBA()
		p.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
		p.SetLineWidth(float64(s.Width) / scale)
		for i := 1; i < len(s.Points); i++ {
			p.Line(
				float64(s.Points[i-1].X)/scale, float64(s.Points[i-1].Y)/scale,
				float64(s.Points[i].X)/scale, float64(s.Points[i].Y)/scale,
			)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
