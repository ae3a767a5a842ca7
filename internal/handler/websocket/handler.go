package websocket

import (
	"net/http"

	"svg-plotter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// PreviewHandler 负责处理实时预览的 WebSocket 升级请求
type PreviewHandler struct {
	upgrader    websocket.Upgrader
	plotService *service.PlotService
}

// NewPreviewHandler 创建 PreviewHandler 实例。
// allowedOrigin 为空时允许所有来源。
func NewPreviewHandler(plotService *service.PlotService, allowedOrigin string) *PreviewHandler {
	if plotService == nil {
		panic("PlotService cannot be nil for PreviewHandler")
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" || allowedOrigin == "*" {
				return true
			}
			origin := r.Header.Get("Origin")
			// 非浏览器客户端不带 Origin
			return origin == "" || origin == allowedOrigin
		},
	}

	return &PreviewHandler{
		upgrader:    upgrader,
		plotService: plotService,
	}
}

// HandleConnection 处理 WebSocket 连接请求
// URL 预期格式: /ws/plot
func (h *PreviewHandler) HandleConnection(c *gin.Context) {
	logCtx := logrus.WithField("client_ip", c.ClientIP())

	// 1. 升级 HTTP 连接到 WebSocket
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 方法会自动发送 HTTP 错误响应，所以这里只需要记录日志
		logCtx.WithError(err).Warn("WS Handler: Failed to upgrade connection")
		return
	}
	logCtx.Info("WS Handler: Connection upgraded to WebSocket")

	// 2. 创建会话并启动读写 goroutine
	s := newSession(conn, h.plotService, logCtx)
	s.Run()
}
