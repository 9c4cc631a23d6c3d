package echarts

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"rsrsi-chart/internal/chart"
	"rsrsi-chart/internal/dataset"
)

const segmentsPerArrow = 4

type coord struct {
	Coord []float64 `json:"coord"`
}

type decodedOptions struct {
	Title struct {
		Text string `json:"text"`
	} `json:"title"`
	Legend struct {
		Show *bool    `json:"show"`
		Data []string `json:"data"`
	} `json:"legend"`
	XAxis []struct {
		Type string  `json:"type"`
		Name string  `json:"name"`
		Min  float64 `json:"min"`
		Max  float64 `json:"max"`
	} `json:"xAxis"`
	YAxis []struct {
		Name string  `json:"name"`
		Min  float64 `json:"min"`
		Max  float64 `json:"max"`
	} `json:"yAxis"`
	Series []struct {
		Name string `json:"name"`
		Type string `json:"type"`
		Data []struct {
			Value []float64 `json:"value"`
		} `json:"data"`
		ItemStyle struct {
			Color   string  `json:"color"`
			Opacity float64 `json:"opacity"`
		} `json:"itemStyle"`
		MarkLine *struct {
			Data      [][]coord `json:"data"`
			Symbol    []string  `json:"symbol"`
			LineStyle struct {
				Color string `json:"color"`
			} `json:"lineStyle"`
		} `json:"markLine"`
		MarkPoint *struct {
			Data []struct {
				Name  string    `json:"name"`
				Coord []float64 `json:"coord"`
			} `json:"data"`
		} `json:"markPoint"`
	} `json:"series"`
}

func renderOptions(t *testing.T, ds dataset.Dataset, mode string) decodedOptions {
	t.Helper()
	opts, err := chart.ModeOptions(mode)
	if err != nil {
		t.Fatal(err)
	}
	canvas := New(800, 600)
	if _, err := chart.Render(ds, canvas, chart.Tab20, opts); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	raw, err := canvas.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	var decoded decodedOptions
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal options: %v\n%s", err, raw)
	}
	return decoded
}

func TestCanvas_Trajectory(t *testing.T) {
	ds := dataset.Dataset{{Name: "A", Series: dataset.Series{RS: []float64{10, 20, 30}, RSI: []float64{40, 50, 60}}}}
	got := renderOptions(t, ds, chart.ModeTrajectory)

	if got.Title.Text != chart.DefaultTitle {
		t.Errorf("title = %q", got.Title.Text)
	}
	if len(got.XAxis) != 1 || got.XAxis[0].Type != "value" || got.XAxis[0].Min != 9 || got.XAxis[0].Max != 31 {
		t.Errorf("xAxis = %+v", got.XAxis)
	}
	if got.XAxis[0].Name != chart.XAxisLabel || got.YAxis[0].Name != chart.YAxisLabel {
		t.Errorf("axis names = %q, %q", got.XAxis[0].Name, got.YAxis[0].Name)
	}
	if len(got.YAxis) != 1 || got.YAxis[0].Min != 39 || got.YAxis[0].Max != 61 {
		t.Errorf("yAxis = %+v", got.YAxis)
	}
	if got.Legend.Show == nil || *got.Legend.Show {
		t.Errorf("legend show = %v, want false", got.Legend.Show)
	}
	if len(got.Series) != 1 {
		t.Fatalf("got %d series, want 1", len(got.Series))
	}

	s := got.Series[0]
	if s.Name != "A" || s.Type != "scatter" || len(s.Data) != 3 {
		t.Errorf("series = %+v", s)
	}
	if s.ItemStyle.Color != "#1f77b4" {
		t.Errorf("series color = %q", s.ItemStyle.Color)
	}
	if s.MarkLine == nil || len(s.MarkLine.Data) != 2*segmentsPerArrow {
		t.Fatalf("markLine = %+v, want 2 arrows", s.MarkLine)
	}
	if !reflect.DeepEqual(s.MarkLine.Symbol, []string{"none", "none"}) {
		t.Errorf("markLine symbol = %v", s.MarkLine.Symbol)
	}
	if s.MarkLine.LineStyle.Color != "#1f77b4" {
		t.Errorf("arrow color = %q", s.MarkLine.LineStyle.Color)
	}
	shaft := s.MarkLine.Data[0]
	if !reflect.DeepEqual(shaft[0].Coord, []float64{10, 40}) {
		t.Errorf("first arrow starts at %v, want [10 40]", shaft[0].Coord)
	}
	tip := s.MarkLine.Data[1][0].Coord
	if !reflect.DeepEqual(tip, []float64{20, 50}) {
		t.Errorf("first arrow tip = %v, want [20 50]", tip)
	}
	if s.MarkPoint == nil || len(s.MarkPoint.Data) != 1 || s.MarkPoint.Data[0].Name != "A" {
		t.Fatalf("markPoint = %+v, want label A", s.MarkPoint)
	}
}

func TestCanvas_Overview(t *testing.T) {
	ds := dataset.Dataset{
		{Name: "A", Series: dataset.Series{RS: []float64{10, 20, 30}, RSI: []float64{40, 50, 60}}},
		{Name: "B", Series: dataset.Series{RS: []float64{70, 80}, RSI: []float64{45, 55}}},
	}
	got := renderOptions(t, ds, chart.ModeOverview)

	if got.XAxis[0].Min != 0 || got.XAxis[0].Max != 100 || got.YAxis[0].Min != 35 || got.YAxis[0].Max != 100 {
		t.Errorf("axes = %+v %+v", got.XAxis, got.YAxis)
	}
	if got.Legend.Show == nil || !*got.Legend.Show || !reflect.DeepEqual(got.Legend.Data, []string{"A", "B"}) {
		t.Errorf("legend = %+v", got.Legend)
	}
	var scatters, lines int
	for _, s := range got.Series {
		switch s.Type {
		case "scatter":
			scatters++
			if s.MarkLine != nil || s.MarkPoint != nil {
				t.Errorf("series %s has arrows or labels", s.Name)
			}
		case "line":
			lines++
		}
	}
	if scatters != 2 || lines != 2 {
		t.Errorf("got %d scatter and %d line series, want 2 and 2", scatters, lines)
	}
}

func TestCanvas_Render(t *testing.T) {
	canvas := New(640, 480)
	canvas.SetTitle("Sectors")
	canvas.SetAxisLimits(chart.FixedBounds)
	if err := canvas.Scatter("XLK", []chart.Point{{X: 50, Y: 60}}, chart.Tab20.Color(3), 0.7); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := canvas.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	page := buf.String()
	for _, want := range []string{"<html", "Sectors", "XLK", "640px", "480px"} {
		if !strings.Contains(page, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
	if canvas.MediaType() != MediaType {
		t.Errorf("MediaType() = %q", canvas.MediaType())
	}
}

func TestCanvas_ArrowHead(t *testing.T) {
	type args struct {
		from, to chart.Point
		head     chart.ArrowHead
	}
	tests := []struct {
		name      string
		args      args
		wantShaft [2]chart.Point
		wantTip   chart.Point
		wantLeft  chart.Point
		wantRight chart.Point
	}{
		{
			name:      "default head",
			args:      args{from: chart.Point{X: 0, Y: 0}, to: chart.Point{X: 10, Y: 0}, head: chart.DefaultArrowHead},
			wantShaft: [2]chart.Point{{X: 0, Y: 0}, {X: 9.5, Y: 0}},
			wantTip:   chart.Point{X: 10, Y: 0},
			wantLeft:  chart.Point{X: 9.5, Y: 0.15},
			wantRight: chart.Point{X: 9.5, Y: -0.15},
		},
		{
			name:      "large head",
			args:      args{from: chart.Point{X: 0, Y: 0}, to: chart.Point{X: 0, Y: 10}, head: chart.ArrowHead{Width: 3, Length: 4}},
			wantShaft: [2]chart.Point{{X: 0, Y: 0}, {X: 0, Y: 6}},
			wantTip:   chart.Point{X: 0, Y: 10},
			wantLeft:  chart.Point{X: -1.5, Y: 6},
			wantRight: chart.Point{X: 1.5, Y: 6},
		},
		{
			name:      "head clamped to a short arrow",
			args:      args{from: chart.Point{X: 1, Y: 1}, to: chart.Point{X: 1.2, Y: 1}, head: chart.DefaultArrowHead},
			wantShaft: [2]chart.Point{{X: 1, Y: 1}, {X: 1, Y: 1}},
			wantTip:   chart.Point{X: 1.2, Y: 1},
			wantLeft:  chart.Point{X: 1, Y: 1.15},
			wantRight: chart.Point{X: 1, Y: 0.85},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := New(640, 480)
			if err := canvas.Arrow(tt.args.from, tt.args.to, chart.LineColor, tt.args.head); err != nil {
				t.Fatalf("Arrow() error = %v", err)
			}
			g := canvas.groups[0]
			if len(g.arrows) != segmentsPerArrow {
				t.Fatalf("got %d segments, want %d", len(g.arrows), segmentsPerArrow)
			}
			want := []segment{
				{from: tt.wantShaft[0], to: tt.wantShaft[1]},
				{from: tt.wantTip, to: tt.wantLeft},
				{from: tt.wantTip, to: tt.wantRight},
				{from: tt.wantLeft, to: tt.wantRight},
			}
			for i, got := range g.arrows {
				if !closeTo(got.from, want[i].from) || !closeTo(got.to, want[i].to) {
					t.Errorf("segment %d = %v, want %v", i, got, want[i])
				}
			}
		})
	}
}

func TestCanvas_ArrowZeroLength(t *testing.T) {
	canvas := New(640, 480)
	p := chart.Point{X: 5, Y: 5}
	if err := canvas.Arrow(p, p, chart.LineColor, chart.DefaultArrowHead); err != nil {
		t.Fatalf("Arrow() error = %v", err)
	}
	if len(canvas.groups) != 0 {
		t.Errorf("zero length arrow added %d groups", len(canvas.groups))
	}
}

func TestCanvas_ArrowHeadSizeChangesOutput(t *testing.T) {
	options := func(head chart.ArrowHead) string {
		canvas := New(640, 480)
		if err := canvas.Arrow(chart.Point{X: 10, Y: 40}, chart.Point{X: 20, Y: 50}, chart.LineColor, head); err != nil {
			t.Fatal(err)
		}
		raw, err := canvas.Options()
		if err != nil {
			t.Fatal(err)
		}
		return string(raw)
	}
	if options(chart.DefaultArrowHead) == options(chart.ArrowHead{Width: 3, Length: 4}) {
		t.Error("arrow head size does not change the chart options")
	}
}

func closeTo(a, b chart.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
