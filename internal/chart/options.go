package chart

import (
	"fmt"

	"rsrsi-chart/internal/dataset"
)

// Chart modes
const (
	ModeTrajectory = "trajectory"
	ModeOverview   = "overview"
)

const (
	DefaultTitle   = "RSI vs RS Chart"
	XAxisLabel     = "RS Value"
	YAxisLabel     = "RSI Value"
	DefaultWindow  = 6
	DefaultPadding = 1.0
	MarkerOpacity  = 0.7
	LabelFontSize  = 8.0
)

// LabelOffset is added to the first point of a window to place the series label
var LabelOffset = Point{X: 0.5, Y: 0.2}

// Options control what is drawn for each series
type Options struct {
	Title string
	// RSIKey selects the RSI sequence paired with RS
	RSIKey string
	// Window - number of trailing points kept per series, all of them if <= 0
	Window      int
	Padding     float64
	FixedBounds bool
	// Arrows connects consecutive points with colored arrows, otherwise with a plain line
	Arrows bool
	Labels bool
	Legend bool
}

// ModeOptions returns the preset for mode
func ModeOptions(mode string) (Options, error) {
	switch mode {
	case ModeTrajectory, "":
		return Options{
			Title:   DefaultTitle,
			RSIKey:  dataset.KeyRSIEMA,
			Window:  DefaultWindow,
			Padding: DefaultPadding,
			Arrows:  true,
			Labels:  true,
		}, nil
	case ModeOverview:
		return Options{
			Title:       DefaultTitle,
			RSIKey:      dataset.KeyRSI,
			FixedBounds: true,
			Legend:      true,
		}, nil
	default:
		return Options{}, fmt.Errorf("unknown chart mode: %q", mode)
	}
}
