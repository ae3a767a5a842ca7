package websocket

import (
	"context"
	"encoding/json"
	"time"

	"svg-plotter/internal/dto"
	"svg-plotter/internal/service"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 64 << 10
)

// 消息类型
const (
	typeResult = "result"
	typeError  = "error"
)

// session 代表一个预览连接。
// 每个文本帧就是一次提交，读循环处理完一帧后才会读取下一帧。
type session struct {
	conn        *websocket.Conn
	plotService *service.PlotService
	send        chan []byte
	done        chan struct{} // writePump 退出时关闭
	logCtx      *logrus.Entry
}

func newSession(conn *websocket.Conn, plotService *service.PlotService, logCtx *logrus.Entry) *session {
	return &session{
		conn:        conn,
		plotService: plotService,
		send:        make(chan []byte, 16),
		done:        make(chan struct{}),
		logCtx:      logCtx,
	}
}

// Run 启动会话的读写 goroutine
func (s *session) Run() {
	go s.writePump()
	go s.readPump()
}

// readPump 读取提交、调用 Service，并把结果放入 send 通道。
func (s *session) readPump() {
	defer func() {
		close(s.send) // 通知 writePump 退出
		s.logCtx.Info("readPump exited")
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logCtx.WithError(err).Warn("WebSocket read error (unexpected close)")
			} else {
				s.logCtx.Debug("WebSocket connection closed normally or read error")
			}
			return
		}
		if messageType != websocket.TextMessage {
			s.logCtx.Debugf("Received non-text message type: %d", messageType)
			continue
		}

		reply, err := s.handle(context.Background(), string(message))
		if err != nil {
			s.logCtx.WithError(err).Error("Failed to marshal reply")
			return
		}
		select {
		case s.send <- reply:
		case <-s.done:
			return
		}
	}
}

// handle 处理一次提交并返回要发送的 JSON 消息
func (s *session) handle(ctx context.Context, input string) ([]byte, error) {
	result, err := s.plotService.Draw(ctx, input)
	if err != nil {
		return json.Marshal(dto.ErrorDTO{
			Type:    typeError,
			Message: service.UserMessage(err),
			Lines:   service.InvalidLines(err),
		})
	}
	return json.Marshal(dto.ResultDTO{
		Type: typeResult,
		PlotResponse: dto.PlotResponse{
			Shapes: dto.FromShapes(result.Shapes),
			SVG:    result.SVG,
		},
	})
}

// writePump 将 send 通道中的消息写到连接，并定期发送 Ping。
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(s.done)
		s.conn.Close()
		s.logCtx.Info("writePump exited")
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 读循环已结束
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				s.logCtx.WithError(err).Warn("Failed to write message to websocket")
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logCtx.WithError(err).Warn("Failed to send ping message")
				return
			}
		}
	}
}
