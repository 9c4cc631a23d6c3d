package viewer

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// watch holds the websocket of an open page until the browser closes it
func (s *Server) watch(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	s.connected()
	defer s.disconnected()

	for {
		mt, _, err := conn.ReadMessage()
		if err != nil || mt == websocket.CloseMessage {
			break
		}
	}
}

func (s *Server) connected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Server) disconnected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns--
	if s.conns == 0 {
		s.timer = time.AfterFunc(s.grace, s.dismiss)
	}
}

func (s *Server) dismiss() {
	s.mu.Lock()
	idle := s.conns == 0
	s.mu.Unlock()
	if idle {
		s.closeOnce.Do(func() { close(s.done) })
	}
}
