package boxplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg/draw"
)

func TestHighlightedColor(t *testing.T) {
	stroke := draw.LineStyle{
		Color: color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		Width: 1.5,
	}
	fill := color.RGBA{R: 0x80, A: 0xff}

	hs, hf := HighlightedColor(stroke, fill)

	if hs.Width != 3 {
		t.Errorf("highlighted stroke width = %v, want 3", hs.Width)
	}

	r0, g0, b0, a0 := stroke.Color.RGBA()
	r1, g1, b1, a1 := hs.Color.RGBA()
	if a1 != a0 {
		t.Errorf("highlighting changed stroke alpha: %d -> %d", a0, a1)
	}
	if r1 <= r0 || g1 <= g0 || b1 <= b0 {
		t.Errorf("highlighted stroke %v not lighter than %v", hs.Color, stroke.Color)
	}

	fr0, _, _, fa0 := fill.RGBA()
	fr1, fg1, fb1, fa1 := hf.RGBA()
	if fa1 != fa0 {
		t.Errorf("highlighting changed fill alpha: %d -> %d", fa0, fa1)
	}
	if fr1 <= fr0 || fg1 == 0 || fb1 == 0 {
		t.Errorf("highlighted fill %v not lighter than %v", hf, fill)
	}
}

func TestHighlightedColorTransparent(t *testing.T) {
	stroke := draw.LineStyle{Color: color.Transparent, Width: 1}

	hs, hf := HighlightedColor(stroke, color.Transparent)

	if _, _, _, a := hs.Color.RGBA(); a != 0 {
		t.Errorf("transparent stroke became visible: alpha %d", a)
	}
	if _, _, _, a := hf.RGBA(); a != 0 {
		t.Errorf("transparent fill became visible: alpha %d", a)
	}
}

func TestHighlightedColorNil(t *testing.T) {
	hs, hf := HighlightedColor(draw.LineStyle{Width: 2}, nil)
	if hs.Color != nil || hf != nil {
		t.Errorf("nil colors must stay nil, got %v, %v", hs.Color, hf)
	}
	if hs.Width != 4 {
		t.Errorf("width = %v, want 4", hs.Width)
	}
}
