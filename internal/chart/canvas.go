package chart

import (
	"io"
	"math"
)

// ArrowHead - arrow head size in data units. The head is part of the arrow length,
// so the tip lands exactly on the target point.
type ArrowHead struct {
	Width  float64
	Length float64
}

// DefaultArrowHead is used for step arrows
var DefaultArrowHead = ArrowHead{Width: 0.3, Length: 0.5}

// Polygon returns the head triangle of the arrow from -> to: the tip and the two
// base corners. ok is false when from and to coincide.
func (h ArrowHead) Polygon(from, to Point) (tip, left, right Point, ok bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Point{}, Point{}, Point{}, false
	}
	ux, uy := dx/length, dy/length
	headLength := h.Length
	if headLength > length {
		headLength = length
	}
	base := Point{X: to.X - ux*headLength, Y: to.Y - uy*headLength}
	half := h.Width / 2
	left = Point{X: base.X - uy*half, Y: base.Y + ux*half}
	right = Point{X: base.X + uy*half, Y: base.Y - ux*half}
	return to, left, right, true
}

// Canvas is the drawing surface a chart is rendered onto. Coordinates are
// in data units. Implementations buffer everything and write the finished
// document on Render.
type Canvas interface {
	SetTitle(title string)
	SetAxisLabels(x, y string)
	SetAxisLimits(b Bounds)
	// Scatter draws one marker per point. name identifies the series in the legend.
	Scatter(name string, points []Point, c Color, opacity float64) error
	Arrow(from, to Point, c Color, head ArrowHead) error
	Line(name string, points []Point, c Color) error
	Text(at Point, text string, c Color, size float64) error
	ShowLegend()
	Render(w io.Writer) error
	// MediaType of the document written by Render
	MediaType() string
}
