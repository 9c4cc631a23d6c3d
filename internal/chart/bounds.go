package chart

import (
	"math"

	"rsrsi-chart/internal/utils"
)

// Point - a single (RS, RSI) observation, RS on the x axis
type Point struct {
	X, Y float64
}

// Add returns the point shifted by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Bounds - visible axis ranges
type Bounds struct {
	MinRS, MaxRS   float64
	MinRSI, MaxRSI float64
}

// FixedBounds are used when the axis limits do not depend on the data
var FixedBounds = Bounds{MinRS: 0, MaxRS: 100, MinRSI: 35, MaxRSI: 100}

// DynamicBounds covers every point of tracks, padded by padding on each side
// of both axes
func DynamicBounds(tracks []Track, padding float64) Bounds {
	b := Bounds{
		MinRS: math.Inf(1), MaxRS: math.Inf(-1),
		MinRSI: math.Inf(1), MaxRSI: math.Inf(-1),
	}
	for _, track := range tracks {
		loX, hiX := utils.MinMax(track.RS())
		loY, hiY := utils.MinMax(track.RSI())
		b.MinRS, b.MaxRS = math.Min(b.MinRS, loX), math.Max(b.MaxRS, hiX)
		b.MinRSI, b.MaxRSI = math.Min(b.MinRSI, loY), math.Max(b.MaxRSI, hiY)
	}
	b.MinRS -= padding
	b.MaxRS += padding
	b.MinRSI -= padding
	b.MaxRSI += padding
	return b
}

// Contains reports whether p lies within the bounds, edges included
func (b Bounds) Contains(p Point) bool {
	return utils.IsBetweenIncl(p.X, b.MinRS, b.MaxRS) &&
		utils.IsBetweenIncl(p.Y, b.MinRSI, b.MaxRSI)
}
