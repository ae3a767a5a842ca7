package http

import (
	_ "embed"
	"io"
	"net/http"

	"svg-plotter/internal/dto"
	"svg-plotter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MaxInputBytes 限制单次提交的大小
const MaxInputBytes = 64 << 10

//go:embed static/index.html
var indexHTML []byte

// PlotHandler 封装了绘图相关的 HTTP 处理逻辑
type PlotHandler struct {
	plotService *service.PlotService
}

// NewPlotHandler 创建 PlotHandler 实例
func NewPlotHandler(plotService *service.PlotService) *PlotHandler {
	if plotService == nil {
		panic("PlotService cannot be nil for PlotHandler")
	}
	return &PlotHandler{plotService: plotService}
}

// Index 返回绘图页面
func (h *PlotHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// Draw 处理 JSON 格式的绘图提交，返回图形列表和 SVG
func (h *PlotHandler) Draw(c *gin.Context) {
	// 1. 绑定输入 JSON
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxInputBytes)
	var req dto.PlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Draw: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, dto.ErrorDTO{Message: "Invalid request body"})
		return
	}

	// 2. 调用 Service 层
	result, err := h.plotService.Draw(c.Request.Context(), req.Input)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	// 3. 成功响应
	SuccessResponse(c, http.StatusOK, dto.PlotResponse{
		Shapes: dto.FromShapes(result.Shapes),
		SVG:    result.SVG,
	})
}

// DrawSVG 处理纯文本格式的提交，直接返回 SVG 文档
func (h *PlotHandler) DrawSVG(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxInputBytes))
	if err != nil {
		logrus.WithError(err).Warn("Handler.DrawSVG: Failed to read request body")
		ErrorResponse(c, http.StatusRequestEntityTooLarge, dto.ErrorDTO{Message: "Request body too large"})
		return
	}

	result, err := h.plotService.Draw(c.Request.Context(), string(body))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", []byte(result.SVG))
}

// Check 只校验输入，不渲染
func (h *PlotHandler) Check(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxInputBytes)
	var req dto.PlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Check: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, dto.ErrorDTO{Message: "Invalid request body"})
		return
	}
	if err := h.plotService.Check(c.Request.Context(), req.Input); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
