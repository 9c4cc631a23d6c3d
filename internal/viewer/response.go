package viewer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rsrsi-chart/internal/chart"
)

type response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Payload any    `json:"payload"`
}

func respond(c *gin.Context, status int, message string, payload any) {
	c.JSON(status, response{
		Status:  status,
		Message: message,
		Payload: payload,
	})
}

// Summary describes what is on the chart
type Summary struct {
	Title  string          `json:"title"`
	Bounds Bounds          `json:"bounds"`
	Series []SeriesSummary `json:"series"`
}

type Bounds struct {
	MinRS  float64 `json:"min_rs"`
	MaxRS  float64 `json:"max_rs"`
	MinRSI float64 `json:"min_rsi"`
	MaxRSI float64 `json:"max_rsi"`
}

type SeriesSummary struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	RS    []float64 `json:"rs"`
	RSI   []float64 `json:"rsi"`
}

// Summarize builds the summary of a laid out chart
func Summarize(spec *chart.Spec) Summary {
	summary := Summary{
		Title: spec.Title,
		Bounds: Bounds{
			MinRS:  spec.Bounds.MinRS,
			MaxRS:  spec.Bounds.MaxRS,
			MinRSI: spec.Bounds.MinRSI,
			MaxRSI: spec.Bounds.MaxRSI,
		},
		Series: make([]SeriesSummary, 0, len(spec.Tracks)),
	}
	for _, track := range spec.Tracks {
		summary.Series = append(summary.Series, SeriesSummary{
			Name:  track.Name,
			Color: track.Color.Hex(),
			RS:    track.RS(),
			RSI:   track.RSI(),
		})
	}
	return summary
}

func (s *Server) getSummary(c *gin.Context) {
	respond(c, http.StatusOK, "ok", s.summary)
}
