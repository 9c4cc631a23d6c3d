// Package echarts draws charts as interactive HTML pages with go-echarts
package echarts

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"rsrsi-chart/internal/chart"
)

const (
	MediaType  = "text/html; charset=utf-8"
	markerSize = 10
)

// segment - a straight mark line in data coordinates
type segment struct {
	from, to chart.Point
}

type label struct {
	at   chart.Point
	text string
	size float64
}

// group - one scatter series with the arrows and labels drawn in its color
type group struct {
	name    string
	color   chart.Color
	opacity float64
	points  []chart.Point
	arrows  []segment
	labels  []label
}

type line struct {
	name   string
	color  chart.Color
	points []chart.Point
}

// Canvas collects drawing calls and renders a single page with one scatter chart.
// Arrows become mark lines and labels become mark points of the series drawn
// in the same color.
type Canvas struct {
	width, height  int
	title          string
	xLabel, yLabel string
	bounds         chart.Bounds
	legend         bool
	groups         []*group
	lines          []line
}

// New returns a canvas of width x height pixels
func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (c *Canvas) SetTitle(title string)        { c.title = title }
func (c *Canvas) SetAxisLabels(x, y string)    { c.xLabel, c.yLabel = x, y }
func (c *Canvas) SetAxisLimits(b chart.Bounds) { c.bounds = b }
func (c *Canvas) ShowLegend()                  { c.legend = true }
func (c *Canvas) MediaType() string            { return MediaType }

func (c *Canvas) Scatter(name string, points []chart.Point, color chart.Color, opacity float64) error {
	c.groups = append(c.groups, &group{name: name, color: color, opacity: opacity, points: points})
	return nil
}

// Arrow adds the shaft up to the head base and the head outline as mark lines,
// so the head keeps its size in data units
func (c *Canvas) Arrow(from, to chart.Point, color chart.Color, head chart.ArrowHead) error {
	tip, left, right, ok := head.Polygon(from, to)
	if !ok {
		return nil
	}
	base := chart.Point{X: (left.X + right.X) / 2, Y: (left.Y + right.Y) / 2}
	g := c.groupFor(color)
	g.arrows = append(g.arrows,
		segment{from: from, to: base},
		segment{from: tip, to: left},
		segment{from: tip, to: right},
		segment{from: left, to: right},
	)
	return nil
}

func (c *Canvas) Line(name string, points []chart.Point, color chart.Color) error {
	c.lines = append(c.lines, line{name: name, color: color, points: points})
	return nil
}

func (c *Canvas) Text(at chart.Point, text string, color chart.Color, size float64) error {
	g := c.groupFor(color)
	g.labels = append(g.labels, label{at: at, text: text, size: size})
	return nil
}

// groupFor returns the latest series in color, adding an empty one if there is none
func (c *Canvas) groupFor(color chart.Color) *group {
	if n := len(c.groups); n > 0 && c.groups[n-1].color == color {
		return c.groups[n-1]
	}
	g := &group{color: color, opacity: 1}
	c.groups = append(c.groups, g)
	return g
}

func (c *Canvas) Render(w io.Writer) error {
	if err := c.build().Render(w); err != nil {
		return fmt.Errorf("render echarts page: %w", err)
	}
	return nil
}

// Options returns the chart options as JSON
func (c *Canvas) Options() ([]byte, error) {
	scatter := c.build()
	scatter.Validate()
	return json.Marshal(scatter.JSON())
}

func (c *Canvas) build() *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       c.title,
			Width:           fmt.Sprintf("%dpx", c.width),
			Height:          fmt.Sprintf("%dpx", c.height),
			ChartID:         "rsrsi",
			BackgroundColor: "#ffffff",
		}),
		charts.WithTitleOpts(opts.Title{Title: c.title, Left: "center"}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(c.legend),
			Data:   c.legendNames(),
			Orient: "vertical",
			Right:  "0",
			Top:    "middle",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithGridOpts(opts.Grid{Left: "5%", Right: "5%", Top: "8%", Bottom: "5%", ContainLabel: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:         "value",
			Name:         c.xLabel,
			NameLocation: "middle",
			NameGap:      30,
			Min:          c.bounds.MinRS,
			Max:          c.bounds.MaxRS,
			SplitLine:    &opts.SplitLine{Show: opts.Bool(false)},
			AxisLabel:    &opts.AxisLabel{},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:         "value",
			Name:         c.yLabel,
			NameLocation: "middle",
			NameGap:      40,
			Min:          c.bounds.MinRSI,
			Max:          c.bounds.MaxRSI,
			SplitLine:    &opts.SplitLine{Show: opts.Bool(false)},
			AxisLabel:    &opts.AxisLabel{},
		}),
	)

	for _, g := range c.groups {
		scatter.AddSeries(g.name, scatterData(g), g.seriesOpts()...)
	}

	if len(c.lines) > 0 {
		lines := charts.NewLine()
		for _, l := range c.lines {
			lines.AddSeries(l.name, lineData(l.points),
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: l.color.Hex(), Width: 1}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: l.color.Hex()}),
			)
		}
		scatter.Overlap(lines)
	}
	return scatter
}

func (c *Canvas) legendNames() []string {
	names := make([]string, 0, len(c.groups))
	for _, g := range c.groups {
		if g.name != "" {
			names = append(names, g.name)
		}
	}
	return names
}

func (g *group) seriesOpts() []charts.SeriesOpts {
	seriesOpts := []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:   g.color.Hex(),
			Opacity: opts.Float(float32(g.opacity)),
		}),
	}

	if len(g.arrows) > 0 {
		items := make([]opts.MarkLineNameCoordItem, 0, len(g.arrows))
		for _, a := range g.arrows {
			items = append(items, opts.MarkLineNameCoordItem{
				Coordinate0: []interface{}{a.from.X, a.from.Y},
				Coordinate1: []interface{}{a.to.X, a.to.Y},
			})
		}
		seriesOpts = append(seriesOpts,
			charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				Symbol:    []string{"none", "none"},
				LineStyle: &opts.LineStyle{Color: g.color.Hex(), Width: 1.5, Type: "solid"},
				Label:     &opts.Label{Show: opts.Bool(false)},
			}),
			charts.WithMarkLineNameCoordItemOpts(items...),
		)
	}

	if len(g.labels) > 0 {
		items := make([]opts.MarkPointNameCoordItem, 0, len(g.labels))
		for _, l := range g.labels {
			items = append(items, opts.MarkPointNameCoordItem{
				Name:       l.text,
				Coordinate: []interface{}{l.at.X, l.at.Y},
				Symbol:     "circle",
				SymbolSize: 1,
				Label: &opts.Label{
					Show:      opts.Bool(true),
					Color:     g.color.Hex(),
					FontSize:  float32(l.size * 4 / 3),
					Position:  "inside",
					Formatter: "{b}",
				},
			})
		}
		seriesOpts = append(seriesOpts, charts.WithMarkPointNameCoordItemOpts(items...))
	}
	return seriesOpts
}

func scatterData(g *group) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(g.points))
	for _, p := range g.points {
		data = append(data, opts.ScatterData{
			Name:       g.name,
			Value:      []float64{p.X, p.Y},
			Symbol:     "circle",
			SymbolSize: markerSize,
		})
	}
	return data
}

func lineData(points []chart.Point) []opts.LineData {
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
	}
	return data
}
