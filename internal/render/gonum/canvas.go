// Package gonum draws charts as PNG, SVG or PDF images with gonum/plot
package gonum

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"rsrsi-chart/internal/chart"
)

var mediaTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

type legendEntry struct {
	name  string
	thumb plot.Thumbnailer
}

// Canvas buffers plotters and lays them out on a fresh plot on every Render
type Canvas struct {
	width, height  int
	format         string
	title          string
	xLabel, yLabel string
	bounds         chart.Bounds
	legend         bool
	plotters       []plot.Plotter
	entries        []legendEntry
}

// New returns a canvas of width x height pixels at 96 dpi. format is one of png, svg, pdf.
func New(width, height int, format string) (*Canvas, error) {
	if _, ok := mediaTypes[format]; !ok {
		return nil, fmt.Errorf("gonum: unsupported format %q", format)
	}
	return &Canvas{width: width, height: height, format: format}, nil
}

func (c *Canvas) SetTitle(title string)        { c.title = title }
func (c *Canvas) SetAxisLabels(x, y string)    { c.xLabel, c.yLabel = x, y }
func (c *Canvas) SetAxisLimits(b chart.Bounds) { c.bounds = b }
func (c *Canvas) ShowLegend()                  { c.legend = true }
func (c *Canvas) MediaType() string            { return mediaTypes[c.format] }

func (c *Canvas) Scatter(name string, points []chart.Point, clr chart.Color, opacity float64) error {
	s, err := plotter.NewScatter(xys(points))
	if err != nil {
		return err
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  clr.NRGBA(opacity),
		Radius: vg.Points(3),
		Shape:  draw.CircleGlyph{},
	}
	c.plotters = append(c.plotters, s)
	c.entries = append(c.entries, legendEntry{name: name, thumb: s})
	return nil
}

func (c *Canvas) Arrow(from, to chart.Point, clr chart.Color, head chart.ArrowHead) error {
	c.plotters = append(c.plotters, &arrow{
		from:  from,
		to:    to,
		head:  head,
		color: clr,
		style: draw.LineStyle{Color: clr, Width: vg.Points(1)},
	})
	return nil
}

func (c *Canvas) Line(_ string, points []chart.Point, clr chart.Color) error {
	l, err := plotter.NewLine(xys(points))
	if err != nil {
		return err
	}
	l.LineStyle = draw.LineStyle{Color: clr, Width: vg.Points(1.5)}
	c.plotters = append(c.plotters, l)
	return nil
}

func (c *Canvas) Text(at chart.Point, txt string, clr chart.Color, size float64) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: at.X, Y: at.Y}},
		Labels: []string{txt},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = clr
		labels.TextStyle[i].Font.Size = vg.Points(size)
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	c.plotters = append(c.plotters, labels)
	return nil
}

func (c *Canvas) Render(w io.Writer) error {
	p := plot.New()
	p.Title.Text = c.title
	p.X.Label.Text = c.xLabel
	p.Y.Label.Text = c.yLabel
	p.BackgroundColor = color.White
	p.Add(c.plotters...)

	p.X.Min, p.X.Max = c.bounds.MinRS, c.bounds.MaxRS
	p.Y.Min, p.Y.Max = c.bounds.MinRSI, c.bounds.MaxRSI
	p.X.Padding, p.Y.Padding = 0, 0

	if c.legend {
		p.Legend.Top = true
		for _, e := range c.entries {
			p.Legend.Add(e.name, e.thumb)
		}
	}

	writer, err := p.WriterTo(pixels(c.width), pixels(c.height), c.format)
	if err != nil {
		return fmt.Errorf("gonum: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("gonum: write %s: %w", c.format, err)
	}
	return nil
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

func xys(points []chart.Point) plotter.XYs {
	data := make(plotter.XYs, len(points))
	for i, p := range points {
		data[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return data
}
