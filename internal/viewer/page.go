package viewer

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// dismissScript keeps a websocket open while the page is shown. The viewer
// exits when it closes.
const dismissScript = `
<script type="text/javascript">
    (function () {
        const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
        window.addEventListener("beforeunload", function () { ws.close(); });
    })();
</script>
`

var imageTemplate = template.Must(template.New("image").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
    <style>
        body { margin: 0; background: #ffffff; display: flex; justify-content: center; }
        img, object { max-width: 100%; height: auto; }
    </style>
</head>
<body>
{{ if .PDF }}<object data="/chart" type="application/pdf" width="100%" height="900"></object>{{ else }}<img src="/chart" alt="{{ .Title }}">{{ end }}
</body>
</html>
`))

func (s *Server) isHTML() bool {
	return strings.HasPrefix(s.mediaType, "text/html")
}

// page returns the document shown at "/": the chart itself when it is HTML,
// otherwise a page embedding the image
func (s *Server) page() ([]byte, error) {
	var buf bytes.Buffer
	if s.isHTML() {
		buf.Write(s.document)
	} else {
		err := imageTemplate.Execute(&buf, struct {
			Title string
			PDF   bool
		}{
			Title: s.summary.Title,
			PDF:   s.mediaType == "application/pdf",
		})
		if err != nil {
			return nil, err
		}
	}
	buf.WriteString(dismissScript)
	return buf.Bytes(), nil
}

func (s *Server) getPage(c *gin.Context) {
	body, err := s.page()
	if err != nil {
		respond(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (s *Server) getChart(c *gin.Context) {
	c.Data(http.StatusOK, s.mediaType, s.document)
}
