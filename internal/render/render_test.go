package render

import (
	"testing"
)

func TestNew(t *testing.T) {
	type args struct {
		backend string
		format  string
	}
	tests := []struct {
		name      string
		args      args
		wantMedia string
		wantErr   bool
	}{
		{name: "echarts", args: args{backend: BackendEcharts}, wantMedia: "text/html; charset=utf-8"},
		{name: "default backend", args: args{backend: ""}, wantMedia: "text/html; charset=utf-8"},
		{name: "gonum pdf", args: args{backend: BackendGonum, format: "pdf"}, wantMedia: "application/pdf"},
		{name: "gochart svg", args: args{backend: BackendGoChart, format: "svg"}, wantMedia: "image/svg+xml"},
		{name: "gochart pdf", args: args{backend: BackendGoChart, format: "pdf"}, wantErr: true},
		{name: "unknown", args: args{backend: "ascii"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.args.backend, 800, 600, tt.args.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && got.MediaType() != tt.wantMedia {
				t.Errorf("New() media type = %v, want %v", got.MediaType(), tt.wantMedia)
			}
		})
	}
}
