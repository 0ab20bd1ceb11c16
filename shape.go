package boxplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Shape

// A Shape is a single drawable primitive in screen coordinates. Elements
// append Shapes to a caller-owned batch; the host plot draws the batch in
// append order.
type Shape interface {
	Draw(c draw.Canvas)
}

// ----------------------------------------------------------------------------
// RectShape

// RectShape is a filled and stroked rectangle with square corners.
// The border is drawn inside the rectangle.
type RectShape struct {
	Rect   vg.Rectangle
	Fill   color.Color
	Stroke draw.LineStyle
}

// Draw implements Shape.Draw.
func (r RectShape) Draw(c draw.Canvas) {
	if r.Fill != nil {
		c.SetColor(r.Fill)
		c.Fill(r.Rect.Path())
	}

	if r.Stroke.Color == nil || r.Stroke.Width <= 0 {
		return
	}
	w := 0.499 * r.Stroke.Width
	rect := r.Rect
	rect.Min.X += w
	rect.Min.Y += w
	rect.Max.X -= w
	rect.Max.Y -= w
	c.SetColor(r.Stroke.Color)
	c.SetLineWidth(r.Stroke.Width)
	c.SetLineDash(r.Stroke.Dashes, r.Stroke.DashOffs)
	c.Stroke(rect.Path())
}

// ----------------------------------------------------------------------------
// LineShape

// LineShape is a straight line segment between two canvas points.
type LineShape struct {
	P0, P1 vg.Point
	Stroke draw.LineStyle
}

// Draw implements Shape.Draw. The segment is clipped to the canvas.
func (l LineShape) Draw(c draw.Canvas) {
	if l.Stroke.Color == nil || l.Stroke.Width <= 0 {
		return
	}
	c.StrokeLines(l.Stroke, c.ClipLinesXY([]vg.Point{l.P0, l.P1})...)
}

// ----------------------------------------------------------------------------
// TextShape

// TextShape is a (possibly multi-line) text label anchored at a canvas
// point.
type TextShape struct {
	Pos   vg.Point
	Text  string
	Style draw.TextStyle
}

// Draw implements Shape.Draw.
func (t TextShape) Draw(c draw.Canvas) {
	if t.Text == "" || t.Style.Color == nil {
		return
	}
	c.FillText(t.Style, t.Pos, t.Text)
}

// ----------------------------------------------------------------------------
// Cursor

// A Cursor is a guide position produced while hovering an element. The
// host plot may mirror cursors into linked plots, so unlike a ruler
// LineShape a Cursor carries only the position, not the styling.
type Cursor struct {
	// Horizontal indicates a guide running parallel to the X axis.
	Horizontal bool

	// Pos is the Y canvas coordinate of a horizontal guide and the X
	// coordinate of a vertical one.
	Pos vg.Length
}
