package boxplot

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Orientation

// Orientation determines which screen axis serves as the argument axis of
// an element: the argument axis is X for Vertical elements and Y for
// Horizontal ones. The value axis is the respective other one.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the name of o.
func (o Orientation) String() string {
	return []string{"vertical", "horizontal"}[int(o)]
}

// ----------------------------------------------------------------------------
// PlotPoint

// A PlotPoint is a position in plot (data) coordinates.
type PlotPoint struct {
	X, Y float64
}

func (p PlotPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// ----------------------------------------------------------------------------
// PlotBounds

// PlotBounds is a (potentially degenerate) axis-aligned rectangle in plot
// coordinates. All four edges of an unset PlotBounds are NaN indicating
// that the edge is not yet determined.
type PlotBounds struct {
	Min, Max PlotPoint
}

// NewPlotBounds returns unset bounds.
func NewPlotBounds() PlotBounds {
	nan := math.NaN()
	return PlotBounds{
		Min: PlotPoint{nan, nan},
		Max: PlotPoint{nan, nan},
	}
}

// Valid reports whether all edges of b are set.
func (b PlotBounds) Valid() bool {
	return !math.IsNaN(b.Min.X) && !math.IsNaN(b.Max.X) &&
		!math.IsNaN(b.Min.Y) && !math.IsNaN(b.Max.Y)
}

// Width returns the extent of b along the X axis.
func (b PlotBounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the extent of b along the Y axis.
func (b PlotBounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Extend expands b just enough to include the given points.
// NaN coordinates are ignored.
func (b *PlotBounds) Extend(points ...PlotPoint) {
	for _, p := range points {
		if !math.IsNaN(p.X) {
			if !(b.Min.X < p.X) {
				b.Min.X = p.X
			}
			if !(b.Max.X > p.X) {
				b.Max.X = p.X
			}
		}
		if !math.IsNaN(p.Y) {
			if !(b.Min.Y < p.Y) {
				b.Min.Y = p.Y
			}
			if !(b.Max.Y > p.Y) {
				b.Max.Y = p.Y
			}
		}
	}
}

// Union expands b to cover c.
func (b *PlotBounds) Union(c PlotBounds) {
	b.Extend(c.Min, c.Max)
}

// Equal reports whether b and c agree on every edge, treating NaN edges
// as equal to each other.
func (b PlotBounds) Equal(c PlotBounds) bool {
	eq := func(x, y float64) bool {
		if math.IsNaN(x) {
			return math.IsNaN(y)
		}
		return x == y
	}
	return eq(b.Min.X, c.Min.X) && eq(b.Max.X, c.Max.X) &&
		eq(b.Min.Y, c.Min.Y) && eq(b.Max.Y, c.Max.Y)
}
