package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"svg-plotter/internal/dto"
	"svg-plotter/internal/render"
	"svg-plotter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func newTestServer(t *testing.T) (*httptest.Server, string) {
	gin.SetMode(gin.TestMode)
	plotService := service.NewPlotService(zeroSource{}, render.DefaultCanvas())
	h := NewPreviewHandler(plotService, "")

	r := gin.New()
	r.GET("/ws/plot", h.HandleConnection)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/plot"
}

func exchange(t *testing.T, conn *websocket.Conn, input string) map[string]json.RawMessage {
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(input)))
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(msg, &out))
	return out
}

func TestPreview_SequentialSubmissions(t *testing.T) {
	_, url := newTestServer(t)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// 1. 合法输入
	out := exchange(t, conn, "R 10 10 50 50\nC 100 100 20")
	assert.JSONEq(t, `"result"`, string(out["type"]))
	var shapes []dto.ShapeDTO
	require.NoError(t, json.Unmarshal(out["shapes"], &shapes))
	require.Len(t, shapes, 2)
	assert.Equal(t, "#000000", shapes[0].Fill)

	// 2. 非法输入
	out = exchange(t, conn, "R 1 2 3")
	assert.JSONEq(t, `"error"`, string(out["type"]))
	assert.JSONEq(t, `"Invalid input at line 1"`, string(out["error"]))
	assert.JSONEq(t, `[1]`, string(out["lines"]))

	// 3. 空输入
	out = exchange(t, conn, " ")
	assert.JSONEq(t, `"Input is empty."`, string(out["error"]))
	_, hasLines := out["lines"]
	assert.False(t, hasLines)
}

func TestPreview_RejectsForeignOrigin(t *testing.T) {
	h := NewPreviewHandler(service.NewPlotService(zeroSource{}, render.DefaultCanvas()), "http://localhost:3000")
	req := httptest.NewRequest("GET", "/ws/plot", nil)
	req.Header.Set("Origin", "http://evil.example")
	assert.False(t, h.upgrader.CheckOrigin(req))

	req.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, h.upgrader.CheckOrigin(req))
}
