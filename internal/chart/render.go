package chart

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"rsrsi-chart/internal/dataset"
)

// Track - the windowed points of one series and its color
type Track struct {
	Name   string
	Points []Point
	Color  Color
}

// RS returns x coordinates of the track
func (t Track) RS() []float64 {
	values := make([]float64, len(t.Points))
	for i, p := range t.Points {
		values[i] = p.X
	}
	return values
}

// RSI returns y coordinates of the track
func (t Track) RSI() []float64 {
	values := make([]float64, len(t.Points))
	for i, p := range t.Points {
		values[i] = p.Y
	}
	return values
}

// Spec is everything needed to draw a chart, independent of the canvas
type Spec struct {
	Title  string
	Bounds Bounds
	Tracks []Track
}

// Window returns the last n points of the series, or all of them if n <= 0
// or the series is shorter. The result shares memory with s.
func Window(s dataset.Series, n int) dataset.Series {
	if n <= 0 || n >= s.Len() {
		return s
	}
	from := s.Len() - n
	return dataset.Series{RS: s.RS[from:], RSI: s.RSI[from:]}
}

// Build validates the dataset and lays out tracks and bounds. Nothing is drawn
// when the dataset is invalid.
func Build(ds dataset.Dataset, assigner ColorAssigner, opts Options) (*Spec, error) {
	if err := ds.Validate(opts.RSIKey); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(ds))
	for i, entry := range ds {
		window := Window(entry.Series, opts.Window)
		points := make([]Point, window.Len())
		for j := range points {
			points[j] = Point{X: window.RS[j], Y: window.RSI[j]}
		}
		tracks = append(tracks, Track{Name: entry.Name, Points: points, Color: assigner.Color(i)})
	}

	spec := &Spec{Title: opts.Title, Tracks: tracks}
	if spec.Title == "" {
		spec.Title = DefaultTitle
	}
	if opts.FixedBounds {
		spec.Bounds = FixedBounds
	} else {
		spec.Bounds = DynamicBounds(tracks, opts.Padding)
	}
	return spec, nil
}

// Draw puts spec onto canvas. Per series: markers, then arrows or a connecting
// line, then the label next to the oldest windowed point.
func Draw(spec *Spec, canvas Canvas, opts Options) error {
	canvas.SetTitle(spec.Title)
	canvas.SetAxisLabels(XAxisLabel, YAxisLabel)
	canvas.SetAxisLimits(spec.Bounds)

	for _, track := range spec.Tracks {
		log.Debug().
			Str("series", track.Name).
			Floats64("rsi", track.RSI()).
			Str("color", track.Color.Hex()).
			Msg("plotting series")

		if err := canvas.Scatter(track.Name, track.Points, track.Color, MarkerOpacity); err != nil {
			return fmt.Errorf("series %q: scatter: %w", track.Name, err)
		}
		if opts.Arrows {
			for i := 0; i+1 < len(track.Points); i++ {
				if err := canvas.Arrow(track.Points[i], track.Points[i+1], track.Color, DefaultArrowHead); err != nil {
					return fmt.Errorf("series %q: arrow %d: %w", track.Name, i, err)
				}
			}
		} else if len(track.Points) > 1 {
			if err := canvas.Line(track.Name, track.Points, LineColor); err != nil {
				return fmt.Errorf("series %q: line: %w", track.Name, err)
			}
		}
		if opts.Labels {
			at := track.Points[0].Add(LabelOffset)
			if err := canvas.Text(at, track.Name, track.Color, LabelFontSize); err != nil {
				return fmt.Errorf("series %q: label: %w", track.Name, err)
			}
		}
	}

	if opts.Legend {
		canvas.ShowLegend()
	}
	return nil
}

// Render builds the chart for ds and draws it onto canvas
func Render(ds dataset.Dataset, canvas Canvas, assigner ColorAssigner, opts Options) (*Spec, error) {
	spec, err := Build(ds, assigner, opts)
	if err != nil {
		return nil, err
	}
	if err := Draw(spec, canvas, opts); err != nil {
		return nil, err
	}
	return spec, nil
}
