package plot

import (
	"regexp"
	"strings"
	"unicode"
)

// ws 是分隔符空白字符集: ASCII 空白加 \v、Unicode Zs 类、行/段分隔符和 BOM。
// isSpace 必须与它保持一致。
const ws = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// 每种图形一条语法，行首标记不区分大小写。
// 多边形至少 3 个坐标对，坐标对内部用逗号连接且不能有空白。
var grammars = []*regexp.Regexp{
	regexp.MustCompile(`^[rR]` + ws + `+[0-9]+` + ws + `+[0-9]+` + ws + `+[0-9]+` + ws + `+[0-9]+$`),
	regexp.MustCompile(`^[cC]` + ws + `+[0-9]+` + ws + `+[0-9]+` + ws + `+[0-9]+$`),
	regexp.MustCompile(`^[pP](` + ws + `+[0-9]+,[0-9]+){3,}$`),
	regexp.MustCompile(`^[lL]` + ws + `+[0-9]+` + ws + `+[0-9]+` + ws + `+[0-9]+` + ws + `+[0-9]+$`),
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// fields 按连续空白切分
func fields(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

// SplitLines 按 "\n" 切分原始输入，保留空行以保证行号与用户看到的一致
func SplitLines(input string) []string {
	return strings.Split(input, "\n")
}

// isBlank 判断一行是否只包含空白字符
func isBlank(line string) bool {
	return trimSpace(line) == ""
}

// MatchLine 报告单行 (非空) 是否符合任一图形语法
func MatchLine(line string) bool {
	trimmed := trimSpace(line)
	for _, g := range grammars {
		if g.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// Validate 逐行校验输入。
// 空白行直接跳过；全部通过返回 nil，否则返回 *InvalidLineError，
// 其中包含所有不合法行的行号 (从 1 开始)。
func Validate(lines []string) error {
	var bad []int
	for i, line := range lines {
		// 1. 空白行不参与校验
		if isBlank(line) {
			continue
		}
		// 2. 必须匹配四种语法之一
		if !MatchLine(line) {
			bad = append(bad, i+1)
		}
	}
	if len(bad) > 0 {
		return &InvalidLineError{Lines: bad}
	}
	return nil
}

// Check 只做判空和语法校验，不生成颜色也不解释
func Check(input string) error {
	if trimSpace(input) == "" {
		return ErrEmptyInput
	}
	return Validate(SplitLines(input))
}
