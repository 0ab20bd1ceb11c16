// Package boxplot provides the plot-level infrastructure to position, draw
// and inspect box-and-whisker (or candlestick) elements on a 2-D plotting
// surface.
//
// It builds on gonum.org/v1/plot's vg layer: all screen geometry is
// expressed through vg.Point and vg.Rectangle and all actual drawing
// happens on a vg/draw.Canvas.
//
// Coordinates
//
// Two coordinate systems are used throughout:
//   - Plot coordinates: the logical (argument, value) space the data
//     lives in, represented by PlotPoint.
//   - Screen coordinates: canvas positions in vg.Length units.
//
// A Transform maps between the two. Elements never draw themselves
// directly; they append Shape primitives (filled rectangles, line
// segments, text) to a caller-owned batch which the host plot renders in
// append order, so later shapes are drawn on top of earlier ones.
//
// Elements
//
// The concrete elements live in the geom subpackage. Every rectangular
// element kind satisfies the RectElement interface so the host plot can
// hit-test it, draw alignment rulers and hover cursors for it and format
// its values without knowing the concrete kind.
package boxplot
