package boxplot

import (
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Transform

// A Transform maps plot coordinates to screen coordinates. It is the
// capability an element needs to turn its data into drawable shapes;
// elements never look at the screen frame directly.
type Transform interface {
	// PositionFromPoint maps the plot coordinate p to a canvas point.
	PositionFromPoint(p PlotPoint) vg.Point

	// RectFromValues maps the axis-aligned rectangle spanned by the two
	// plot coordinates a and b to a canonical screen rectangle.
	RectFromValues(a, b PlotPoint) vg.Rectangle

	// DValueDPos returns how many plot units one screen unit covers,
	// separately for the X and the Y axis.
	DValueDPos() [2]float64
}

// ----------------------------------------------------------------------------
// PlotTransform

// PlotTransform is the standard linear Transform: it maps Bounds onto
// Frame. Both axes grow in the same direction as the canvas, i.e. larger
// plot values map to larger canvas coordinates.
type PlotTransform struct {
	// Frame is the screen area the plot occupies.
	Frame vg.Rectangle

	// Bounds is the plot coordinate range shown inside Frame.
	Bounds PlotBounds
}

var _ Transform = PlotTransform{}

// PositionFromPoint maps the plot coordinate p to a canvas point.
// Points outside Bounds map outside Frame; no clipping is done here.
func (t PlotTransform) PositionFromPoint(p PlotPoint) vg.Point {
	return vg.Point{
		X: lerp(p.X, t.Bounds.Min.X, t.Bounds.Max.X, t.Frame.Min.X, t.Frame.Max.X),
		Y: lerp(p.Y, t.Bounds.Min.Y, t.Bounds.Max.Y, t.Frame.Min.Y, t.Frame.Max.Y),
	}
}

// PointFromPosition is the inverse of PositionFromPoint.
func (t PlotTransform) PointFromPosition(pos vg.Point) PlotPoint {
	dx := float64(t.Frame.Max.X - t.Frame.Min.X)
	dy := float64(t.Frame.Max.Y - t.Frame.Min.Y)
	return PlotPoint{
		X: t.Bounds.Min.X + t.Bounds.Width()*float64(pos.X-t.Frame.Min.X)/dx,
		Y: t.Bounds.Min.Y + t.Bounds.Height()*float64(pos.Y-t.Frame.Min.Y)/dy,
	}
}

// RectFromValues maps the rectangle spanned by a and b to the screen.
// The result is in canonical form even if the plot coordinates are
// inverted.
func (t PlotTransform) RectFromValues(a, b PlotPoint) vg.Rectangle {
	return CanonicRectangle(vg.Rectangle{
		Min: t.PositionFromPoint(a),
		Max: t.PositionFromPoint(b),
	})
}

// DValueDPos returns the plot units covered by one screen unit on the X
// and the Y axis. A degenerate frame yields non-finite scales which
// propagate into formatting; this is accepted.
func (t PlotTransform) DValueDPos() [2]float64 {
	return [2]float64{
		t.Bounds.Width() / float64(t.Frame.Max.X-t.Frame.Min.X),
		t.Bounds.Height() / float64(t.Frame.Max.Y-t.Frame.Min.Y),
	}
}

// lerp maps x from the interval [a0,a1] linearly to [b0,b1].
func lerp(x, a0, a1 float64, b0, b1 vg.Length) vg.Length {
	return b0 + vg.Length((x-a0)/(a1-a0))*(b1-b0)
}

// CanonicRectangle returns the canonical form of r, i.e. its Min point
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}
