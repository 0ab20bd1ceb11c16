package boxplot

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// RectElement

// A RectElement is a plot element occupying a rectangular region of the
// plot. The host plot uses this contract to auto-fit scales, draw
// alignment rulers and hover cursors and to label the element, treating
// all rectangular element kinds alike.
type RectElement interface {
	// Name returns the display name of the element.
	Name() string

	// BoundsMin and BoundsMax return the corners of the region the
	// element claims for scale auto-fitting.
	BoundsMin() PlotPoint
	BoundsMax() PlotPoint

	// ValuesWithRuler returns, in fixed order, the plot coordinates
	// that get an alignment ruler when the element is hovered.
	ValuesWithRuler() []PlotPoint

	// Orientation returns which screen axis is the element's argument
	// axis.
	Orientation() Orientation

	// CornerValue returns the plot coordinate labels are anchored at.
	CornerValue() PlotPoint

	// DefaultValuesFormat returns a human readable multi-line summary
	// of the element's values at a precision suitable for t.
	DefaultValuesFormat(t Transform) string
}

// ----------------------------------------------------------------------------
// PlotConfig

// PlotConfig bundles what the ruler assembly needs to know about the host
// plot.
type PlotConfig struct {
	// Transform maps plot to screen coordinates.
	Transform Transform

	// Frame is the screen area rulers span.
	Frame vg.Rectangle

	// ShowX and ShowY select which guides are drawn: vertical guides
	// marking positions on the X axis and horizontal guides marking
	// positions on the Y axis.
	ShowX, ShowY bool

	// Ruler is the line style of the guides.
	Ruler draw.LineStyle

	// Label is the text style of the hover label.
	Label draw.TextStyle
}

// ----------------------------------------------------------------------------
// Ruler and text assembly

// AddRulersAndText appends the hover decoration for elem to shapes and
// cursors: one guide per entry of ValuesWithRuler and enabled axis, plus
// a text label anchored at CornerValue. An empty text falls back to the
// element's name and default values summary.
func AddRulersAndText(elem RectElement, cfg *PlotConfig, text string, shapes *[]Shape, cursors *[]Cursor) {
	for _, p := range elem.ValuesWithRuler() {
		pos := cfg.Transform.PositionFromPoint(p)
		if cfg.ShowX {
			*shapes = append(*shapes, LineShape{
				P0:     vg.Point{X: pos.X, Y: cfg.Frame.Min.Y},
				P1:     vg.Point{X: pos.X, Y: cfg.Frame.Max.Y},
				Stroke: cfg.Ruler,
			})
			*cursors = append(*cursors, Cursor{Pos: pos.X})
		}
		if cfg.ShowY {
			*shapes = append(*shapes, LineShape{
				P0:     vg.Point{X: cfg.Frame.Min.X, Y: pos.Y},
				P1:     vg.Point{X: cfg.Frame.Max.X, Y: pos.Y},
				Stroke: cfg.Ruler,
			})
			*cursors = append(*cursors, Cursor{Horizontal: true, Pos: pos.Y})
		}
	}

	if text == "" {
		text = elem.DefaultValuesFormat(cfg.Transform)
		if name := elem.Name(); name != "" {
			text = name + "\n" + text
		}
	}
	*shapes = append(*shapes, TextShape{
		Pos:   cfg.Transform.PositionFromPoint(elem.CornerValue()),
		Text:  text,
		Style: cfg.Label,
	})
}

// ScaleDecimals derives the number of decimals for value labels from the
// plot units covered by one screen unit. The result is always in [1, 6],
// also for zero, non-finite or NaN scales.
func ScaleDecimals(scale float64) int {
	d := math.Ceil(-math.Log10(math.Abs(scale)))
	if !(d > 1) {
		return 1
	}
	if d > 6 {
		return 6
	}
	return int(d)
}
