package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"svg-plotter/internal/domain"
)

// Interpret 将一行已通过校验、且末尾已追加颜色的命令转换为图形描述。
// 解释器不重复校验语法；遇到未知标记时返回包装了 ErrUnknownTag 的错误。
// 超出 int 范围的数字串按 math.MaxInt 处理。
func Interpret(line string) (domain.Shape, error) {
	args := fields(line)
	if len(args) == 0 {
		return domain.Shape{}, fmt.Errorf("%w: empty line", ErrUnknownTag)
	}
	// 颜色总是最后一个字段
	color := domain.Color(args[len(args)-1])

	switch args[0] {
	case "R", "r":
		n, err := atoiN(args, 1, 4)
		if err != nil {
			return domain.Shape{}, err
		}
		return domain.NewRect(n[0], n[1], n[2], n[3], color), nil
	case "C", "c":
		n, err := atoiN(args, 1, 3)
		if err != nil {
			return domain.Shape{}, err
		}
		return domain.NewCircle(n[0], n[1], n[2], color), nil
	case "L", "l":
		n, err := atoiN(args, 1, 4)
		if err != nil {
			return domain.Shape{}, err
		}
		return domain.NewLine(n[0], n[1], n[2], n[3], color), nil
	case "P", "p":
		if len(args) < 2 {
			return domain.Shape{}, fmt.Errorf("%w: polygon without color", ErrMalformedLine)
		}
		// 去掉开头的标记和末尾的颜色，剩下的都是 "x,y" 坐标对
		pairs := args[1 : len(args)-1]
		points := make([]domain.Point, 0, len(pairs))
		for _, pair := range pairs {
			p, err := parsePoint(pair)
			if err != nil {
				return domain.Shape{}, err
			}
			points = append(points, p)
		}
		return domain.NewPolygon(points, color), nil
	default:
		return domain.Shape{}, fmt.Errorf("%w: %q", ErrUnknownTag, args[0])
	}
}

// atoiN 从 args[from] 开始读取 count 个整数
func atoiN(args []string, from, count int) ([]int, error) {
	if len(args) < from+count {
		return nil, fmt.Errorf("%w: expected %d numeric fields, got %d", ErrMalformedLine, count, len(args)-from)
	}
	out := make([]int, count)
	for i := 0; i < count; i++ {
		v, err := atoi(args[from+i])
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", ErrMalformedLine, from+i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parsePoint(pair string) (domain.Point, error) {
	xs, ys, ok := strings.Cut(pair, ",")
	if !ok {
		return domain.Point{}, fmt.Errorf("%w: coordinate pair %q", ErrMalformedLine, pair)
	}
	x, err := atoi(xs)
	if err != nil {
		return domain.Point{}, fmt.Errorf("%w: coordinate pair %q: %v", ErrMalformedLine, pair, err)
	}
	y, err := atoi(ys)
	if err != nil {
		return domain.Point{}, fmt.Errorf("%w: coordinate pair %q: %v", ErrMalformedLine, pair, err)
	}
	return domain.Point{X: x, Y: y}, nil
}

// atoi 解析非负十进制数字串，超出范围时饱和到 math.MaxInt
func atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && s != "" && s[0] != '-' {
		return math.MaxInt, nil
	}
	return v, err
}
