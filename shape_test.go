package boxplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// TestShapeDraw draws each primitive onto an image canvas. It mainly
// guards against panics from degenerate styles (nil colors, zero widths)
// and from segments leaving the canvas.
func TestShapeDraw(t *testing.T) {
	canvas := draw.New(vgimg.New(100, 100))

	sty := draw.LineStyle{Color: color.Black, Width: 1}
	shapes := []Shape{
		RectShape{
			Rect: vg.Rectangle{
				Min: vg.Point{X: 10, Y: 10},
				Max: vg.Point{X: 60, Y: 40},
			},
			Fill:   color.RGBA{R: 0xff, A: 0xff},
			Stroke: sty,
		},
		RectShape{}, // no fill, no stroke
		LineShape{
			P0:     vg.Point{X: 10, Y: 50},
			P1:     vg.Point{X: 90, Y: 50},
			Stroke: sty,
		},
		LineShape{ // leaves the canvas, gets clipped
			P0:     vg.Point{X: 50, Y: 50},
			P1:     vg.Point{X: 150, Y: 150},
			Stroke: sty,
		},
		LineShape{P0: vg.Point{X: 1, Y: 1}, P1: vg.Point{X: 2, Y: 2}}, // invisible
		TextShape{}, // empty text, no style
	}

	for i, s := range shapes {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("shape %d (%T) panicked: %v", i, s, r)
				}
			}()
			s.Draw(canvas)
		}()
	}
}
