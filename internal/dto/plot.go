package dto

import "svg-plotter/internal/domain"

// PlotRequest 表示一次绘图提交 (HTTP 与 WebSocket 共用)
type PlotRequest struct {
	Input string `json:"input"`
}

// ShapeDTO 是图形描述的扁平 JSON 形式，只输出与 Kind 对应的字段
type ShapeDTO struct {
	Kind   string         `json:"kind"`
	Fill   string         `json:"fill"`
	X      *int           `json:"x,omitempty"`
	Y      *int           `json:"y,omitempty"`
	Width  *int           `json:"width,omitempty"`
	Height *int           `json:"height,omitempty"`
	CX     *int           `json:"cx,omitempty"`
	CY     *int           `json:"cy,omitempty"`
	R      *int           `json:"r,omitempty"`
	X1     *int           `json:"x1,omitempty"`
	Y1     *int           `json:"y1,omitempty"`
	X2     *int           `json:"x2,omitempty"`
	Y2     *int           `json:"y2,omitempty"`
	Points []domain.Point `json:"points,omitempty"`
}

// PlotResponse 表示绘图成功的响应
type PlotResponse struct {
	Shapes []ShapeDTO `json:"shapes"`
	SVG    string     `json:"svg"`
}

// ResultDTO 是 WebSocket 上成功结果的消息
type ResultDTO struct {
	Type string `json:"type"`
	PlotResponse
}

// ErrorDTO 表示发送给客户端的错误消息数据结构
// Lines 只在语法错误时出现
type ErrorDTO struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"error"`
	Lines   []int  `json:"lines,omitempty"`
}

func intPtr(v int) *int { return &v }

// FromShape 将 domain.Shape 转换为 ShapeDTO
func FromShape(s domain.Shape) ShapeDTO {
	out := ShapeDTO{Kind: string(s.Kind), Fill: string(s.Fill)}
	switch {
	case s.Rect != nil:
		out.X, out.Y = intPtr(s.Rect.X), intPtr(s.Rect.Y)
		out.Width, out.Height = intPtr(s.Rect.Width), intPtr(s.Rect.Height)
	case s.Circle != nil:
		out.CX, out.CY, out.R = intPtr(s.Circle.CX), intPtr(s.Circle.CY), intPtr(s.Circle.Radius)
	case s.Line != nil:
		out.X1, out.Y1 = intPtr(s.Line.X1), intPtr(s.Line.Y1)
		out.X2, out.Y2 = intPtr(s.Line.X2), intPtr(s.Line.Y2)
	case s.Polygon != nil:
		out.Points = s.Polygon.Points
	}
	return out
}

// FromShapes 批量转换，保证返回非 nil 切片 (JSON 中为 [] 而不是 null)
func FromShapes(shapes []domain.Shape) []ShapeDTO {
	out := make([]ShapeDTO, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, FromShape(s))
	}
	return out
}
