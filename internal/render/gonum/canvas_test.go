package gonum

import (
	"bytes"
	"testing"

	"rsrsi-chart/internal/chart"
	"rsrsi-chart/internal/dataset"
)

func sample() dataset.Dataset {
	return dataset.Dataset{
		{Name: "A", Series: dataset.Series{RS: []float64{10, 20, 30}, RSI: []float64{40, 50, 60}}},
		{Name: "B", Series: dataset.Series{RS: []float64{25, 22}, RSI: []float64{45, 41}}},
	}
}

func TestCanvas_Render(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		mode      string
		wantMagic []byte
		wantType  string
	}{
		{name: "png trajectory", format: "png", mode: chart.ModeTrajectory, wantMagic: []byte("\x89PNG"), wantType: "image/png"},
		{name: "svg overview", format: "svg", mode: chart.ModeOverview, wantMagic: []byte("<?xml"), wantType: "image/svg+xml"},
		{name: "pdf trajectory", format: "pdf", mode: chart.ModeTrajectory, wantMagic: []byte("%PDF"), wantType: "application/pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas, err := New(640, 480, tt.format)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			opts, err := chart.ModeOptions(tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := chart.Render(sample(), canvas, chart.Tab20, opts); err != nil {
				t.Fatalf("chart.Render() error = %v", err)
			}

			var buf bytes.Buffer
			if err := canvas.Render(&buf); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), tt.wantMagic) {
				t.Errorf("output starts with %q, want %q", buf.Bytes()[:8], tt.wantMagic)
			}
			if got := canvas.MediaType(); got != tt.wantType {
				t.Errorf("MediaType() = %v, want %v", got, tt.wantType)
			}
		})
	}
}

func TestCanvas_Plotters(t *testing.T) {
	canvas, err := New(640, 480, "png")
	if err != nil {
		t.Fatal(err)
	}
	opts, _ := chart.ModeOptions(chart.ModeTrajectory)
	if _, err := chart.Render(sample(), canvas, chart.Tab20, opts); err != nil {
		t.Fatal(err)
	}

	var arrows, others int
	for _, p := range canvas.plotters {
		if _, ok := p.(*arrow); ok {
			arrows++
		} else {
			others++
		}
	}
	// 2 scatters and 2 labels
	if arrows != 3 || others != 4 {
		t.Errorf("got %d arrows and %d other plotters, want 3 and 4", arrows, others)
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	if _, err := New(640, 480, "bmp"); err == nil {
		t.Error("New() expected error for bmp")
	}
}
