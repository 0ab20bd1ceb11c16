// Package main renders a demo box plot to a PNG file.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hvogt/boxplot"
	"github.com/hvogt/boxplot/geom"
)

var (
	outputPath string
	width      float64
	height     float64
	horizontal bool
	hover      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boxdemo",
		Short: "Render a demo box plot to a PNG file",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "boxdemo.png", "Output PNG path")
	rootCmd.Flags().Float64Var(&width, "width", 600, "Canvas width in points")
	rootCmd.Flags().Float64Var(&height, "height", 400, "Canvas height in points")
	rootCmd.Flags().BoolVar(&horizontal, "horizontal", false, "Lay the boxes out along the Y axis")
	rootCmd.Flags().IntVar(&hover, "hover", 2, "Element to decorate with rulers and text, -1 for none")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	plot := demoPlot()
	if horizontal {
		plot.Horizontal()
	}

	img := vgimg.New(vg.Length(width), vg.Length(height))
	dc := draw.New(img)
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	frame := dc.Rectangle
	frame.Min.X += 20
	frame.Min.Y += 20
	frame.Max.X -= 20
	frame.Max.Y -= 20

	tr := boxplot.PlotTransform{
		Frame:  frame,
		Bounds: widen(dataBounds(plot), 0.08),
	}

	var shapes []boxplot.Shape
	plot.AddShapes(tr, &shapes)

	if hover >= 0 && hover < len(plot.Elems) {
		cfg := &boxplot.PlotConfig{
			Transform: tr,
			Frame:     frame,
			ShowX:     true,
			ShowY:     true,
			Ruler:     boxplot.DefaultRulerStyle(),
			Label:     boxplot.DefaultLabelStyle(10),
		}
		var cursors []boxplot.Cursor
		plot.Elems[hover].AddRulersAndText(plot, cfg, &shapes, &cursors)
	}

	for _, s := range shapes {
		s.Draw(dc)
	}

	w, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return w.Close()
}

func demoPlot() *geom.BoxPlot {
	spreads := []geom.SpreadValues{
		geom.NewSpreadValues(2.1, 3.2, 1.2, 4.8, 5.9),
		geom.NewSpreadValues(3.0, 4.1, 2.2, 5.5, 7.1),
		geom.NewSpreadValues(2.6, 3.5, 1.6, 5.0, 6.6),
		geom.NewSpreadValues(4.2, 5.0, 3.1, 6.4, 8.3),
		geom.NewSpreadValues(3.4, 4.4, 2.4, 5.8, 7.4),
	}

	elems := make([]geom.BoxElem, len(spreads))
	for i, s := range spreads {
		elems[i] = geom.NewBoxElem(float64(i+1), s).
			WithName(fmt.Sprintf("day %d", i+1)).
			WithBoxWidth(0.5).
			WithWhiskerWidth(0.25).
			WithStroke(draw.LineStyle{Color: color.Black, Width: 1}).
			WithFill(plotutil.Color(i))
	}
	return geom.NewBoxPlot("demo", elems)
}

// dataBounds is the region covered by the boxes including the whisker
// extremes, which the elements' auto-fit bounds leave out.
func dataBounds(p *geom.BoxPlot) boxplot.PlotBounds {
	bounds := p.AllDataBounds()
	for _, e := range p.Elems {
		bounds.Extend(e.ValuesWithRuler()...)
	}
	return bounds
}

// widen pads bounds on all sides by the fraction f of their size.
func widen(b boxplot.PlotBounds, f float64) boxplot.PlotBounds {
	dx, dy := f*b.Width(), f*b.Height()
	b.Min.X -= dx
	b.Max.X += dx
	b.Min.Y -= dy
	b.Max.Y += dy
	return b
}
