package boxplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Highlighting

// HighlightedColor adjusts an element's stroke and fill for display under
// pointer focus: the stroke becomes twice as wide and both colors are
// lightened. Fully transparent colors stay transparent.
func HighlightedColor(stroke draw.LineStyle, fill color.Color) (draw.LineStyle, color.Color) {
	stroke.Width *= 2
	stroke.Color = lighten(stroke.Color, 0.4)
	return stroke, lighten(fill, 0.4)
}

// lighten moves col towards white by the fraction f, keeping its alpha.
func lighten(col color.Color, f float64) color.Color {
	if col == nil {
		return nil
	}
	r, g, b, a := col.RGBA()
	// The components are alpha-premultiplied, so opaque white is
	// (a, a, a, a).
	toward := func(v uint32) uint16 {
		return uint16(float64(v) + f*(float64(a)-float64(v)))
	}
	return color.RGBA64{
		R: toward(r),
		G: toward(g),
		B: toward(b),
		A: uint16(a),
	}
}

// ----------------------------------------------------------------------------
// Ruler and label styles

// DefaultRulerStyle returns the line style used for alignment rulers.
func DefaultRulerStyle() draw.LineStyle {
	return draw.LineStyle{
		Color: color.Gray16{0x8888},
		Width: vg.Length(0.5),
	}
}

// DefaultLabelStyle returns the text style used for hover labels with the
// given font size. It panics if the font cannot be located, like all font
// lookups on the vg layer do.
func DefaultLabelStyle(size vg.Length) draw.TextStyle {
	font, err := vg.MakeFont("Helvetica", size)
	if err != nil {
		panic(err)
	}
	return draw.TextStyle{
		Color:  color.Black,
		Font:   font,
		XAlign: draw.XLeft,
		YAlign: draw.YBottom,
	}
}
