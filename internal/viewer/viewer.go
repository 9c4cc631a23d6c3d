// Package viewer serves a rendered chart to the browser and blocks until the
// page is closed
package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"rsrsi-chart/internal/chart"
)

const (
	// DefaultGrace - how long the viewer waits for the page to reconnect
	// after the last websocket is gone
	DefaultGrace    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	addr      string
	document  []byte
	mediaType string
	summary   Summary
	engine    *gin.Engine
	grace     time.Duration

	mu        sync.Mutex
	conns     int
	timer     *time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// New renders canvas once and prepares the routes that serve the result
func New(addr string, canvas chart.Canvas, spec *chart.Spec) (*Server, error) {
	var buf bytes.Buffer
	if err := canvas.Render(&buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	s := &Server{
		addr:      addr,
		document:  buf.Bytes(),
		mediaType: canvas.MediaType(),
		summary:   Summarize(spec),
		grace:     DefaultGrace,
		done:      make(chan struct{}),
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.GET("/", s.getPage)
	s.engine.GET("/chart", s.getChart)
	s.engine.GET("/ws", s.watch)
	api := s.engine.Group("/api")
	{
		api.GET("/chart", s.getSummary)
	}
	return s, nil
}

// Handler returns the HTTP handler with all routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Done is closed once the page has been dismissed
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Show serves the chart and blocks until the page is dismissed, ctx is
// cancelled or the server fails
func (s *Server) Show(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	srv := &http.Server{Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("url", "http://"+listener.Addr().String()+"/").Msg("chart is ready, close the page to exit")

	select {
	case <-s.done:
		log.Info().Msg("chart dismissed")
	case <-ctx.Done():
		log.Info().Msg("interrupted")
	case err := <-errCh:
		return fmt.Errorf("serve chart: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}
