package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// golden ratio conjugate, (sqrt(5) - 1) / 2
const goldenRatioConjugate = 0.618033988749895

// Color policies
const (
	PolicyAuto    = "auto"
	PolicyPalette = "palette"
	PolicyGolden  = "golden"
)

// Color - an opaque RGB color with components in [0, 1]
type Color struct {
	R, G, B float64
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel16(c.R), channel16(c.G), channel16(c.B), 0xffff
}

// NRGBA returns the 8-bit color with the given opacity in [0, 1]
func (c Color) NRGBA(opacity float64) color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: channel8(opacity)}
}

// Hex returns the color as "#rrggbb". Colors closer than one 8-bit step share a code.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

func channel8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 0xff))
}

func channel16(v float64) uint32 {
	return uint32(math.Round(clamp01(v) * 0xffff))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ParseHex parses "#rrggbb"
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("bad hex color: %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad hex color: %q", s)
	}
	return Color{
		R: float64(v>>16&0xff) / 0xff,
		G: float64(v>>8&0xff) / 0xff,
		B: float64(v&0xff) / 0xff,
	}, nil
}

func mustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSV converts hue, saturation and value, all in [0, 1], to RGB
func HSV(h, s, v float64) Color {
	h = h - math.Floor(h)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return Color{v, t, p}
	case 1:
		return Color{q, v, p}
	case 2:
		return Color{p, v, t}
	case 3:
		return Color{p, q, v}
	case 4:
		return Color{t, p, v}
	default:
		return Color{v, p, q}
	}
}

// ColorAssigner maps the ordinal index of a series to its color.
// Implementations are deterministic.
type ColorAssigner interface {
	Color(index int) Color
}

// GoldenRatio rotates the hue by the golden ratio conjugate per series at full
// saturation and value, which keeps consecutive colors far apart on the hue circle
type GoldenRatio struct{}

// Hue returns the hue in [0, 1) used for the series at index
func (GoldenRatio) Hue(index int) float64 {
	return math.Mod(float64(index)*goldenRatioConjugate, 1.0)
}

func (g GoldenRatio) Color(index int) Color {
	return HSV(g.Hue(index), 1, 1)
}

// Palette cycles through a fixed list of colors. Indexes past the end wrap around.
type Palette []Color

func (p Palette) Color(index int) Color {
	return p[index%len(p)]
}

// Tab20 - the 20 color qualitative palette
var Tab20 = Palette{
	mustParseHex("#1f77b4"), mustParseHex("#aec7e8"),
	mustParseHex("#ff7f0e"), mustParseHex("#ffbb78"),
	mustParseHex("#2ca02c"), mustParseHex("#98df8a"),
	mustParseHex("#d62728"), mustParseHex("#ff9896"),
	mustParseHex("#9467bd"), mustParseHex("#c5b0d5"),
	mustParseHex("#8c564b"), mustParseHex("#c49c94"),
	mustParseHex("#e377c2"), mustParseHex("#f7b6d2"),
	mustParseHex("#7f7f7f"), mustParseHex("#c7c7c7"),
	mustParseHex("#bcbd22"), mustParseHex("#dbdb8d"),
	mustParseHex("#17becf"), mustParseHex("#9edae5"),
}

// LineColor is used for plain connecting lines regardless of the series color
var LineColor = mustParseHex("#1f77b4")

// NewColorAssigner returns the assigner for policy. With PolicyAuto the palette is used
// while every series can get its own palette color, the golden ratio rotation otherwise.
func NewColorAssigner(policy string, numSeries int) (ColorAssigner, error) {
	switch policy {
	case PolicyPalette:
		return Tab20, nil
	case PolicyGolden:
		return GoldenRatio{}, nil
	case PolicyAuto, "":
		if numSeries <= len(Tab20) {
			return Tab20, nil
		}
		return GoldenRatio{}, nil
	default:
		return nil, fmt.Errorf("unknown color policy: %q", policy)
	}
}
