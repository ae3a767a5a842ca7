package plot

import (
	"math/rand"

	"svg-plotter/internal/domain"
)

const hexDigits = "0123456789ABCDEF"

// RandomSource 是颜色生成所用的随机源，测试中可以注入确定性的实现。
// *rand.Rand 满足该接口。
type RandomSource interface {
	Intn(n int) int
}

// globalSource 使用 math/rand 的包级函数 (进程级共享随机源)
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// DefaultSource 返回进程级共享随机源，不做任何播种
func DefaultSource() RandomSource {
	return globalSource{}
}

// NewColor 生成一个随机的 "#RRGGBB" 颜色，每一位独立均匀地取自 0-F。
// 不保证不同行之间颜色不重复。
func NewColor(src RandomSource) domain.Color {
	b := make([]byte, 7)
	b[0] = '#'
	for i := 1; i < len(b); i++ {
		b[i] = hexDigits[src.Intn(len(hexDigits))]
	}
	return domain.Color(b)
}
