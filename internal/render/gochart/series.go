package gochart

import (
	gochart "github.com/wcharczuk/go-chart/v2"

	"rsrsi-chart/internal/chart"
)

// pixel maps a data point into the canvas box
func pixel(p chart.Point, canvasBox gochart.Box, xrange, yrange gochart.Range) (int, int) {
	return canvasBox.Left + xrange.Translate(p.X), canvasBox.Bottom - yrange.Translate(p.Y)
}

// arrowSeries draws a single arrow with a filled head
type arrowSeries struct {
	from, to chart.Point
	head     chart.ArrowHead
	style    gochart.Style
}

func (s arrowSeries) GetName() string             { return "" }
func (s arrowSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (s arrowSeries) GetStyle() gochart.Style     { return s.style }
func (s arrowSeries) Validate() error             { return nil }

func (s arrowSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	tip, left, right, ok := s.head.Polygon(s.from, s.to)
	if !ok {
		return
	}
	style := s.style.InheritFrom(defaults)
	base := chart.Point{X: (left.X + right.X) / 2, Y: (left.Y + right.Y) / 2}

	r.SetStrokeColor(style.GetStrokeColor())
	r.SetStrokeWidth(style.GetStrokeWidth())
	x0, y0 := pixel(s.from, canvasBox, xrange, yrange)
	x1, y1 := pixel(base, canvasBox, xrange, yrange)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
	r.ResetStyle()

	r.SetStrokeColor(style.GetStrokeColor())
	r.SetFillColor(style.GetFillColor())
	r.SetStrokeWidth(style.GetStrokeWidth())
	tx, ty := pixel(tip, canvasBox, xrange, yrange)
	lx, ly := pixel(left, canvasBox, xrange, yrange)
	rx, ry := pixel(right, canvasBox, xrange, yrange)
	r.MoveTo(tx, ty)
	r.LineTo(lx, ly)
	r.LineTo(rx, ry)
	r.Close()
	r.FillStroke()
	r.ResetStyle()
}

// textSeries draws a label centered on a data point
type textSeries struct {
	at    chart.Point
	text  string
	style gochart.Style
}

func (s textSeries) GetName() string             { return "" }
func (s textSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (s textSeries) GetStyle() gochart.Style     { return s.style }
func (s textSeries) Validate() error             { return nil }

func (s textSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	style := s.style.InheritFrom(defaults)
	box := gochart.Draw.MeasureText(r, s.text, style)
	x, y := pixel(s.at, canvasBox, xrange, yrange)
	gochart.Draw.Text(r, s.text, x-box.Width()/2, y+box.Height()/2, style)
}
