package service

import (
	"context"
	"errors"
	"fmt"

	"svg-plotter/internal/domain"
	"svg-plotter/internal/plot"
	"svg-plotter/internal/render"

	"github.com/sirupsen/logrus"
)

// DrawResult 是一次提交成功后的结果: 图形列表和渲染好的 SVG 文档
type DrawResult struct {
	Shapes []domain.Shape
	SVG    string
}

// PlotService 负责把用户提交的命令文本转换为图形并渲染。
// 它本身不保存任何提交之间的状态。
type PlotService struct {
	src    plot.RandomSource
	canvas render.Canvas
}

// NewPlotService 创建 PlotService 实例。
func NewPlotService(src plot.RandomSource, canvas render.Canvas) *PlotService {
	if src == nil {
		panic("RandomSource cannot be nil for PlotService")
	}
	if canvas.Width <= 0 || canvas.Height <= 0 {
		panic("canvas size must be positive for PlotService")
	}
	return &PlotService{src: src, canvas: canvas}
}

// Canvas 返回渲染使用的画布尺寸
func (s *PlotService) Canvas() render.Canvas { return s.canvas }

// Draw 处理一次绘图提交。
// 返回的错误为 ErrEmptyInput、ErrInvalidInput (包装 *plot.InvalidLineError) 或 ErrInternalServer。
func (s *PlotService) Draw(ctx context.Context, input string) (*DrawResult, error) {
	lineCount := len(plot.SplitLines(input))
	logCtx := logrus.WithField("line_count", lineCount)

	// 1. 校验并解释
	shapes, err := plot.Compose(input, s.src)
	if err != nil {
		return nil, mapPlotError(err, logCtx)
	}
	logCtx = logCtx.WithField("shape_count", len(shapes))

	// 2. 渲染 SVG
	out, err := render.RenderString(s.canvas, shapes)
	if err != nil {
		logCtx.WithError(err).Error("Failed to render shapes")
		return nil, ErrInternalServer
	}

	logCtx.Debug("Submission drawn successfully")
	return &DrawResult{Shapes: shapes, SVG: out}, nil
}

// Check 只做校验，不生成颜色也不渲染
func (s *PlotService) Check(ctx context.Context, input string) error {
	if err := plot.Check(input); err != nil {
		return mapPlotError(err, logrus.WithField("line_count", len(plot.SplitLines(input))))
	}
	return nil
}

// mapPlotError 将 plot 包的错误映射为服务层错误
func mapPlotError(err error, logCtx *logrus.Entry) error {
	var invalid *plot.InvalidLineError
	switch {
	case errors.Is(err, plot.ErrEmptyInput):
		logCtx.Debug("Empty submission")
		return ErrEmptyInput
	case errors.As(err, &invalid):
		logCtx.WithField("invalid_lines", invalid.Lines).Debug("Submission rejected by validator")
		return fmt.Errorf("%w: %w", ErrInvalidInput, invalid)
	default:
		// 校验通过后解释失败属于内部契约错误，不是用户输入问题
		logCtx.WithError(err).Error("Validated submission could not be interpreted")
		return ErrInternalServer
	}
}
