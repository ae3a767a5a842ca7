// Package domain 定义了绘图命令解析后得到的图形数据结构。
package domain

// Kind 表示图形的种类。
type Kind string

const (
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindLine    Kind = "line"
	KindPolygon Kind = "polygon"
)

// Color 是 "#RRGGBB" 形式的十六进制颜色字符串。
type Color string

// Point 是多边形的一个顶点。
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect 矩形: 左上角坐标与宽高
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Circle 圆形: 圆心与半径
type Circle struct {
	CX     int
	CY     int
	Radius int
}

// Line 线段: 起点与终点
type Line struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Polygon 多边形: 按输入顺序排列的顶点 (至少 3 个)
type Polygon struct {
	Points []Point
}

// Shape 是一个可直接交给渲染层的图形描述。
// 根据 Kind 只有一个几何字段非空。
type Shape struct {
	Kind    Kind
	Fill    Color
	Rect    *Rect
	Circle  *Circle
	Line    *Line
	Polygon *Polygon
}

// NewRect 创建矩形描述
func NewRect(x, y, width, height int, fill Color) Shape {
	return Shape{Kind: KindRect, Fill: fill, Rect: &Rect{X: x, Y: y, Width: width, Height: height}}
}

// NewCircle 创建圆形描述
func NewCircle(cx, cy, radius int, fill Color) Shape {
	return Shape{Kind: KindCircle, Fill: fill, Circle: &Circle{CX: cx, CY: cy, Radius: radius}}
}

// NewLine 创建线段描述
func NewLine(x1, y1, x2, y2 int, stroke Color) Shape {
	return Shape{Kind: KindLine, Fill: stroke, Line: &Line{X1: x1, Y1: y1, X2: x2, Y2: y2}}
}

// NewPolygon 创建多边形描述
func NewPolygon(points []Point, fill Color) Shape {
	return Shape{Kind: KindPolygon, Fill: fill, Polygon: &Polygon{Points: points}}
}
