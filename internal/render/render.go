// Package render picks a drawing backend for a chart
package render

import (
	"fmt"

	"rsrsi-chart/internal/chart"
	"rsrsi-chart/internal/render/echarts"
	"rsrsi-chart/internal/render/gochart"
	"rsrsi-chart/internal/render/gonum"
)

const (
	BackendEcharts = "echarts"
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

// New returns an empty canvas. format is ignored by the echarts backend,
// which always produces an HTML page.
func New(backend string, width, height int, format string) (chart.Canvas, error) {
	switch backend {
	case BackendEcharts, "":
		return echarts.New(width, height), nil
	case BackendGonum:
		canvas, err := gonum.New(width, height, format)
		if err != nil {
			return nil, err
		}
		return canvas, nil
	case BackendGoChart:
		canvas, err := gochart.New(width, height, format)
		if err != nil {
			return nil, err
		}
		return canvas, nil
	default:
		return nil, fmt.Errorf("unknown render backend: %q", backend)
	}
}
