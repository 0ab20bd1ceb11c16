package boxplot

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
)

func testTransform() PlotTransform {
	return PlotTransform{
		Frame: vg.Rectangle{
			Min: vg.Point{X: 100, Y: 50},
			Max: vg.Point{X: 600, Y: 450},
		},
		Bounds: PlotBounds{
			Min: PlotPoint{0, 0},
			Max: PlotPoint{10, 40},
		},
	}
}

var positionFromPointTests = []struct {
	p    PlotPoint
	want vg.Point
}{
	{PlotPoint{0, 0}, vg.Point{X: 100, Y: 50}},
	{PlotPoint{10, 40}, vg.Point{X: 600, Y: 450}},
	{PlotPoint{5, 20}, vg.Point{X: 350, Y: 250}},
	{PlotPoint{5, 10}, vg.Point{X: 350, Y: 150}},
	{PlotPoint{-5, 60}, vg.Point{X: -150, Y: 650}}, // outside bounds, no clipping
}

func TestPositionFromPoint(t *testing.T) {
	tr := testTransform()
	for i, tc := range positionFromPointTests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got := tr.PositionFromPoint(tc.p)
			if got != tc.want {
				t.Errorf("PositionFromPoint(%v) = %v, want %v",
					tc.p, got, tc.want)
			}
		})
	}
}

func TestPointFromPositionRoundtrip(t *testing.T) {
	tr := testTransform()
	for _, p := range []PlotPoint{{0, 0}, {10, 40}, {3, 17}, {-2, 55}} {
		got := tr.PointFromPosition(tr.PositionFromPoint(p))
		if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
			t.Errorf("roundtrip of %v = %v", p, got)
		}
	}
}

func TestRectFromValuesCanonical(t *testing.T) {
	tr := testTransform()

	// Corners given in inverted order still yield a canonical rectangle.
	got := tr.RectFromValues(PlotPoint{8, 30}, PlotPoint{2, 10})
	want := vg.Rectangle{
		Min: vg.Point{X: 200, Y: 150},
		Max: vg.Point{X: 500, Y: 350},
	}
	if got != want {
		t.Errorf("RectFromValues = %v, want %v", got, want)
	}
}

func TestDValueDPos(t *testing.T) {
	tr := testTransform()
	got := tr.DValueDPos()
	if got[0] != 10.0/500 || got[1] != 40.0/400 {
		t.Errorf("DValueDPos = %v, want [0.02 0.1]", got)
	}
}

func TestCanonicRectangle(t *testing.T) {
	r := vg.Rectangle{
		Min: vg.Point{X: 5, Y: 1},
		Max: vg.Point{X: 2, Y: 7},
	}
	got := CanonicRectangle(r)
	if got.Min.X != 2 || got.Max.X != 5 || got.Min.Y != 1 || got.Max.Y != 7 {
		t.Errorf("CanonicRectangle(%v) = %v", r, got)
	}
}
