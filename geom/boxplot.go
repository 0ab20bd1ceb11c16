package geom

import (
	"github.com/hvogt/boxplot"
)

// ----------------------------------------------------------------------------
// BoxPlot

// BoxPlot groups box elements into one diagram-level item sharing a name,
// a highlight state and an optional label formatter. It does not lay the
// elements out; each element carries its own argument position.
type BoxPlot struct {
	// Label is the display name of the whole group.
	Label string

	// Elems are the individual boxes.
	Elems []BoxElem

	// Highlighted marks the whole group as hovered.
	Highlighted bool

	// ElementFormatter produces the hover label for an element of this
	// group. If nil, the default values summary is used.
	ElementFormatter func(*BoxElem, *BoxPlot) string
}

// NewBoxPlot groups the given elements under a common name.
func NewBoxPlot(name string, elems []BoxElem) *BoxPlot {
	return &BoxPlot{Label: name, Elems: elems}
}

// Vertical makes X the argument axis of every element.
func (p *BoxPlot) Vertical() *BoxPlot {
	for i := range p.Elems {
		p.Elems[i] = p.Elems[i].Vertical()
	}
	return p
}

// Horizontal makes Y the argument axis of every element.
func (p *BoxPlot) Horizontal() *BoxPlot {
	for i := range p.Elems {
		p.Elems[i] = p.Elems[i].Horizontal()
	}
	return p
}

// AddShapes appends the drawable primitives of all elements to shapes,
// in element order.
func (p *BoxPlot) AddShapes(tr boxplot.Transform, shapes *[]boxplot.Shape) {
	for _, e := range p.Elems {
		e.AddShapes(tr, p.Highlighted, shapes)
	}
}

// AllDataBounds returns the plot region claimed by all elements, for
// scale auto-fitting.
func (p *BoxPlot) AllDataBounds() boxplot.PlotBounds {
	bounds := boxplot.NewPlotBounds()
	for _, e := range p.Elems {
		bounds.Extend(e.BoundsMin(), e.BoundsMax())
	}
	return bounds
}
