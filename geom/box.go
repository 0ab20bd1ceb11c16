// Package geom provides the concrete plot elements. Each element turns
// its data and a coordinate transform into a batch of drawable shapes;
// it never touches the canvas itself.
package geom

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hvogt/boxplot"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// SpreadValues

// SpreadValues holds the five values of a single box element.
//
// The fields describe the positions the drawing code assigns to them, not
// a statistical meaning: no ordering between the fields is enforced and
// an element with inverted values simply renders degenerate geometry.
// Callers supply precomputed values; nothing is aggregated here.
type SpreadValues struct {
	// LowerWhisker is the value the lower whisker extends to.
	// The lower whisker is not drawn if CenterLine >= LowerWhisker.
	LowerWhisker float64

	// LowerBoxEdge is the lower box threshold.
	LowerBoxEdge float64

	// CenterLine is the value of the line drawn across the box.
	CenterLine float64

	// UpperBoxEdge is the upper box threshold. The box body spans from
	// LowerWhisker to UpperBoxEdge.
	UpperBoxEdge float64

	// UpperWhisker is the value the upper whisker extends to.
	// The upper whisker is not drawn if UpperWhisker <= UpperBoxEdge.
	UpperWhisker float64
}

// NewSpreadValues returns the five values in drawing order from lowest
// role to highest.
func NewSpreadValues(lowerWhisker, lowerBoxEdge, centerLine, upperBoxEdge, upperWhisker float64) SpreadValues {
	return SpreadValues{
		LowerWhisker: lowerWhisker,
		LowerBoxEdge: lowerBoxEdge,
		CenterLine:   centerLine,
		UpperBoxEdge: upperBoxEdge,
		UpperWhisker: upperWhisker,
	}
}

// ----------------------------------------------------------------------------
// BoxElem

// BoxElem is one positioned, styled box-and-whisker glyph.
//
// It is a plain value: the With* methods return an updated copy so
// elements can be built up in a chain, and rendering reads the fields
// without modifying or caching anything.
type BoxElem struct {
	// Label is the display name, annotated by the default formatter.
	Label string

	// Orient determines which screen axis is the argument axis.
	Orient boxplot.Orientation

	// Argument is the position on the argument axis.
	Argument float64

	// Spread holds the five values of the box.
	Spread SpreadValues

	// BoxWidth is the thickness of the box along the argument axis.
	BoxWidth float64

	// WhiskerWidth is the width of the cap drawn at whisker ends.
	WhiskerWidth float64

	// LineStyle is the width and color of all outlines.
	LineStyle draw.LineStyle

	// FillColor fills the box body.
	FillColor color.Color
}

var _ boxplot.RectElement = BoxElem{}

// NewBoxElem returns an element at the given argument position with
// default widths and fully transparent colors.
func NewBoxElem(argument float64, spread SpreadValues) BoxElem {
	return BoxElem{
		Argument:     argument,
		Spread:       spread,
		BoxWidth:     0.25,
		WhiskerWidth: 0.15,
		LineStyle:    draw.LineStyle{Color: color.Transparent, Width: 1},
		FillColor:    color.Transparent,
	}
}

// WithName sets the display name.
func (b BoxElem) WithName(name string) BoxElem {
	b.Label = name
	return b
}

// WithStroke sets the outline style.
func (b BoxElem) WithStroke(sty draw.LineStyle) BoxElem {
	b.LineStyle = sty
	return b
}

// WithFill sets the fill color of the box body.
func (b BoxElem) WithFill(col color.Color) BoxElem {
	b.FillColor = col
	return b
}

// WithBoxWidth sets the thickness of the box.
func (b BoxElem) WithBoxWidth(w float64) BoxElem {
	b.BoxWidth = w
	return b
}

// WithWhiskerWidth sets the width of the whisker caps.
func (b BoxElem) WithWhiskerWidth(w float64) BoxElem {
	b.WhiskerWidth = w
	return b
}

// Vertical makes X the argument axis.
func (b BoxElem) Vertical() BoxElem {
	b.Orient = boxplot.Vertical
	return b
}

// Horizontal makes Y the argument axis.
func (b BoxElem) Horizontal() BoxElem {
	b.Orient = boxplot.Horizontal
	return b
}

// pointAt builds the plot coordinate for a position on the argument axis
// and a value on the value axis, honoring the element's orientation.
func (b BoxElem) pointAt(argument, value float64) boxplot.PlotPoint {
	if b.Orient == boxplot.Horizontal {
		return boxplot.PlotPoint{X: value, Y: argument}
	}
	return boxplot.PlotPoint{X: argument, Y: value}
}

// ----------------------------------------------------------------------------
// Shape generation

// AddShapes appends the element's drawable primitives to shapes, in the
// fixed order: box rectangle, center line, upper whisker spine and cap,
// lower whisker spine and cap. Whiskers are only emitted when they extend
// strictly beyond their base value, and caps only when BoxWidth > 0.
func (b BoxElem) AddShapes(tr boxplot.Transform, highlighted bool, shapes *[]boxplot.Shape) {
	stroke, fill := b.LineStyle, b.FillColor
	if highlighted {
		stroke, fill = boxplot.HighlightedColor(stroke, fill)
	}

	rect := tr.RectFromValues(
		b.pointAt(b.Argument-b.BoxWidth/2, b.Spread.LowerWhisker),
		b.pointAt(b.Argument+b.BoxWidth/2, b.Spread.UpperBoxEdge),
	)
	*shapes = append(*shapes, boxplot.RectShape{Rect: rect, Fill: fill, Stroke: stroke})

	lineBetween := func(p, q boxplot.PlotPoint) boxplot.LineShape {
		return boxplot.LineShape{
			P0:     tr.PositionFromPoint(p),
			P1:     tr.PositionFromPoint(q),
			Stroke: stroke,
		}
	}

	*shapes = append(*shapes, lineBetween(
		b.pointAt(b.Argument-b.BoxWidth/2, b.Spread.CenterLine),
		b.pointAt(b.Argument+b.BoxWidth/2, b.Spread.CenterLine),
	))

	if b.Spread.UpperWhisker > b.Spread.UpperBoxEdge {
		*shapes = append(*shapes, lineBetween(
			b.pointAt(b.Argument, b.Spread.UpperBoxEdge),
			b.pointAt(b.Argument, b.Spread.UpperWhisker),
		))
		if b.BoxWidth > 0 {
			*shapes = append(*shapes, lineBetween(
				b.pointAt(b.Argument-b.WhiskerWidth/2, b.Spread.UpperWhisker),
				b.pointAt(b.Argument+b.WhiskerWidth/2, b.Spread.UpperWhisker),
			))
		}
	}

	if b.Spread.CenterLine < b.Spread.LowerWhisker {
		*shapes = append(*shapes, lineBetween(
			b.pointAt(b.Argument, b.Spread.LowerWhisker),
			b.pointAt(b.Argument, b.Spread.CenterLine),
		))
		if b.BoxWidth > 0 {
			*shapes = append(*shapes, lineBetween(
				b.pointAt(b.Argument-b.WhiskerWidth/2, b.Spread.CenterLine),
				b.pointAt(b.Argument+b.WhiskerWidth/2, b.Spread.CenterLine),
			))
		}
	}
}

// AddRulersAndText appends the hover decoration for the element. The
// parent's element formatter provides the label text; without one the
// shared assembly falls back to the name and default values summary.
func (b BoxElem) AddRulersAndText(parent *BoxPlot, cfg *boxplot.PlotConfig, shapes *[]boxplot.Shape, cursors *[]boxplot.Cursor) {
	var text string
	if parent != nil && parent.ElementFormatter != nil {
		text = parent.ElementFormatter(&b, parent)
	}
	boxplot.AddRulersAndText(b, cfg, text, shapes, cursors)
}

// ----------------------------------------------------------------------------
// RectElement

// Name implements boxplot.RectElement.
func (b BoxElem) Name() string { return b.Label }

// BoundsMin implements boxplot.RectElement. The value-axis edge is taken
// from CenterLine, not the whisker extremes.
func (b BoxElem) BoundsMin() boxplot.PlotPoint {
	argument := b.Argument - math.Max(b.BoxWidth, b.WhiskerWidth)/2
	return b.pointAt(argument, b.Spread.CenterLine)
}

// BoundsMax implements boxplot.RectElement. The value-axis edge is taken
// from LowerBoxEdge, not the whisker extremes.
func (b BoxElem) BoundsMax() boxplot.PlotPoint {
	argument := b.Argument + math.Max(b.BoxWidth, b.WhiskerWidth)/2
	return b.pointAt(argument, b.Spread.LowerBoxEdge)
}

// ValuesWithRuler implements boxplot.RectElement.
func (b BoxElem) ValuesWithRuler() []boxplot.PlotPoint {
	return []boxplot.PlotPoint{
		b.pointAt(b.Argument, b.Spread.UpperWhisker),
		b.pointAt(b.Argument, b.Spread.LowerWhisker),
		b.pointAt(b.Argument, b.Spread.UpperBoxEdge),
		b.pointAt(b.Argument, b.Spread.LowerBoxEdge),
		b.pointAt(b.Argument, b.Spread.CenterLine),
	}
}

// Orientation implements boxplot.RectElement.
func (b BoxElem) Orientation() boxplot.Orientation { return b.Orient }

// CornerValue implements boxplot.RectElement.
func (b BoxElem) CornerValue() boxplot.PlotPoint {
	return b.pointAt(b.Argument, b.Spread.LowerBoxEdge)
}

// DefaultValuesFormat implements boxplot.RectElement. The precision is
// derived from the transform's value-axis scale. The mapping of spread
// values to labels is fixed; callers wanting different labels supply an
// element formatter on the parent.
func (b BoxElem) DefaultValuesFormat(tr boxplot.Transform) string {
	scale := tr.DValueDPos()
	s := scale[1]
	if b.Orient == boxplot.Horizontal {
		s = scale[0]
	}
	decimals := boxplot.ScaleDecimals(s)

	return fmt.Sprintf(
		"Max = %.*f\nQuartile 3 = %.*f\nMedian = %.*f\nQuartile 1 = %.*f\nMin = %.*f",
		decimals, b.Spread.LowerBoxEdge,
		decimals, b.Spread.UpperBoxEdge,
		decimals, b.Spread.UpperWhisker,
		decimals, b.Spread.LowerWhisker,
		decimals, b.Spread.CenterLine,
	)
}
