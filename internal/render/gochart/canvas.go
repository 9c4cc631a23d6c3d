// Package gochart draws charts as PNG or SVG images with go-chart
package gochart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rsrsi-chart/internal/chart"
)

const (
	dotWidth    = 4
	padding     = 40
	legendWidth = 3
)

var providers = map[string]struct {
	provider  gochart.RendererProvider
	mediaType string
}{
	"png": {provider: gochart.PNG, mediaType: "image/png"},
	"svg": {provider: gochart.SVG, mediaType: "image/svg+xml"},
}

// Canvas collects go-chart series. Markers are continuous series with the
// stroke disabled, arrows and labels are custom series.
type Canvas struct {
	width, height  int
	format         string
	title          string
	xLabel, yLabel string
	bounds         chart.Bounds
	legend         bool
	series         []gochart.Series
	legendSeries   []gochart.Series
}

// New returns a canvas of width x height pixels. format is png or svg.
func New(width, height int, format string) (*Canvas, error) {
	if _, ok := providers[format]; !ok {
		return nil, fmt.Errorf("gochart: unsupported format %q", format)
	}
	return &Canvas{width: width, height: height, format: format}, nil
}

func (c *Canvas) SetTitle(title string)        { c.title = title }
func (c *Canvas) SetAxisLabels(x, y string)    { c.xLabel, c.yLabel = x, y }
func (c *Canvas) SetAxisLimits(b chart.Bounds) { c.bounds = b }
func (c *Canvas) ShowLegend()                  { c.legend = true }
func (c *Canvas) MediaType() string            { return providers[c.format].mediaType }

func (c *Canvas) Scatter(name string, points []chart.Point, clr chart.Color, opacity float64) error {
	xs, ys := split(points)
	c.series = append(c.series, gochart.ContinuousSeries{
		Name: name,
		Style: gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotColor:    toDrawing(clr, opacity),
			DotWidth:    dotWidth,
		},
		XValues: xs,
		YValues: ys,
	})
	c.legendSeries = append(c.legendSeries, gochart.ContinuousSeries{
		Name:    name,
		Style:   gochart.Style{StrokeColor: toDrawing(clr, 1), StrokeWidth: legendWidth},
		XValues: xs,
		YValues: ys,
	})
	return nil
}

func (c *Canvas) Arrow(from, to chart.Point, clr chart.Color, head chart.ArrowHead) error {
	c.series = append(c.series, arrowSeries{
		from: from,
		to:   to,
		head: head,
		style: gochart.Style{
			StrokeColor: toDrawing(clr, 1),
			StrokeWidth: 1,
			FillColor:   toDrawing(clr, 1),
		},
	})
	return nil
}

func (c *Canvas) Line(name string, points []chart.Point, clr chart.Color) error {
	xs, ys := split(points)
	c.series = append(c.series, gochart.ContinuousSeries{
		Name:    name,
		Style:   gochart.Style{StrokeColor: toDrawing(clr, 1), StrokeWidth: 1.5},
		XValues: xs,
		YValues: ys,
	})
	return nil
}

func (c *Canvas) Text(at chart.Point, text string, clr chart.Color, size float64) error {
	c.series = append(c.series, textSeries{
		at:    at,
		text:  text,
		style: gochart.Style{FontColor: toDrawing(clr, 1), FontSize: size},
	})
	return nil
}

func (c *Canvas) Render(w io.Writer) error {
	graph := gochart.Chart{
		Title:  c.title,
		Width:  c.width,
		Height: c.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: padding, Left: padding, Right: padding, Bottom: padding},
		},
		XAxis: gochart.XAxis{
			Name:  c.xLabel,
			Range: &gochart.ContinuousRange{Min: c.bounds.MinRS, Max: c.bounds.MaxRS},
		},
		YAxis: gochart.YAxis{
			Name:  c.yLabel,
			Range: &gochart.ContinuousRange{Min: c.bounds.MinRSI, Max: c.bounds.MaxRSI},
		},
		Series: c.series,
	}
	if c.legend {
		graph.Elements = []gochart.Renderable{gochart.Legend(&gochart.Chart{Series: c.legendSeries})}
	}

	if err := graph.Render(providers[c.format].provider, w); err != nil {
		return fmt.Errorf("gochart: %w", err)
	}
	return nil
}

func toDrawing(clr chart.Color, opacity float64) drawing.Color {
	n := clr.NRGBA(opacity)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func split(points []chart.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
