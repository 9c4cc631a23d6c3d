package gonum

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"rsrsi-chart/internal/chart"
)

// arrow implements plot.Plotter. The shaft stops at the head base and the
// head is a filled triangle sized in data units.
type arrow struct {
	from, to chart.Point
	head     chart.ArrowHead
	color    chart.Color
	style    draw.LineStyle
}

func (a *arrow) Plot(c draw.Canvas, plt *plot.Plot) {
	tip, left, right, ok := a.head.Polygon(a.from, a.to)
	if !ok {
		return
	}
	trX, trY := plt.Transforms(&c)
	pt := func(p chart.Point) vg.Point {
		return vg.Point{X: trX(p.X), Y: trY(p.Y)}
	}

	base := chart.Point{X: (left.X + right.X) / 2, Y: (left.Y + right.Y) / 2}
	from, end := pt(a.from), pt(base)
	c.StrokeLine2(a.style, from.X, from.Y, end.X, end.Y)
	c.FillPolygon(a.color, []vg.Point{pt(tip), pt(left), pt(right)})
}
