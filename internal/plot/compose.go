// Package plot 实现绘图命令的校验、解释与颜色分配。
// 这里的函数都是纯函数: 只接收和返回普通数据，不持有任何状态。
package plot

import (
	"fmt"

	"svg-plotter/internal/domain"
)

// Compose 把一次提交的原始文本转换为图形列表:
// 判空 -> 切分行 -> 校验 -> 为每个非空行追加随机颜色 -> 逐行解释。
// 任何一行校验失败时不返回任何图形。
func Compose(input string, src RandomSource) ([]domain.Shape, error) {
	if err := Check(input); err != nil {
		return nil, err
	}

	lines := SplitLines(input)

	shapes := make([]domain.Shape, 0, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		annotated := line + " " + string(NewColor(src))
		shape, err := Interpret(annotated)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}
