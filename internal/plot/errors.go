package plot

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput 表示提交的文本去掉首尾空白后为空
	ErrEmptyInput = errors.New("Input is empty.")
	// ErrUnknownTag 表示解释器遇到了校验器不认识的图形标记。
	// 校验通过的输入不应触发它，出现即说明校验与解释之间的约定被破坏。
	ErrUnknownTag = errors.New("plot: unknown shape tag")
	// ErrMalformedLine 表示已通过校验的行仍无法转换为数值 (例如整数溢出)
	ErrMalformedLine = errors.New("plot: malformed command line")
)

// InvalidLineError 记录所有未通过语法校验的行号 (从 1 开始, 升序)。
type InvalidLineError struct {
	Lines []int
}

func (e *InvalidLineError) Error() string {
	nums := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		nums[i] = strconv.Itoa(n)
	}
	return "Invalid input at line " + strings.Join(nums, ",")
}
