// Package render 把图形描述绘制成 SVG 文档。
package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"svg-plotter/internal/domain"
)

const (
	// DefaultWidth 和 DefaultHeight 与页面上画布的尺寸一致
	DefaultWidth  = 250
	DefaultHeight = 250
)

// Canvas 描述输出 SVG 的尺寸
type Canvas struct {
	Width  int
	Height int
}

// DefaultCanvas 返回默认尺寸的画布
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultWidth, Height: DefaultHeight}
}

// errWriter 记录第一次写入错误，svgo 本身会忽略写入错误
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// Render 按顺序把每个图形写成一个 SVG 元素，后面的图形覆盖在前面的之上。
func Render(w io.Writer, c Canvas, shapes []domain.Shape) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("render: invalid canvas size %dx%d", c.Width, c.Height)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(c.Width, c.Height)
	for i, s := range shapes {
		if err := drawShape(canvas, s); err != nil {
			return fmt.Errorf("render: shape %d: %w", i, err)
		}
	}
	canvas.End()
	return ew.err
}

// RenderString 渲染为字符串
func RenderString(c Canvas, shapes []domain.Shape) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, c, shapes); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func drawShape(canvas *svg.SVG, s domain.Shape) error {
	fill := fmt.Sprintf(`fill="%s"`, s.Fill)
	switch s.Kind {
	case domain.KindRect:
		if s.Rect == nil {
			return fmt.Errorf("missing rect geometry")
		}
		canvas.Rect(s.Rect.X, s.Rect.Y, s.Rect.Width, s.Rect.Height, fill)
	case domain.KindCircle:
		if s.Circle == nil {
			return fmt.Errorf("missing circle geometry")
		}
		canvas.Circle(s.Circle.CX, s.Circle.CY, s.Circle.Radius, fill)
	case domain.KindLine:
		if s.Line == nil {
			return fmt.Errorf("missing line geometry")
		}
		// 线段没有填充区域，颜色作为描边
		canvas.Line(s.Line.X1, s.Line.Y1, s.Line.X2, s.Line.Y2, "stroke:"+string(s.Fill))
	case domain.KindPolygon:
		if s.Polygon == nil || len(s.Polygon.Points) < 3 {
			return fmt.Errorf("polygon needs at least 3 points")
		}
		xs := make([]int, len(s.Polygon.Points))
		ys := make([]int, len(s.Polygon.Points))
		for i, p := range s.Polygon.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, fill)
	default:
		return fmt.Errorf("unsupported shape kind %q", s.Kind)
	}
	return nil
}
