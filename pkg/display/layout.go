// Package display 负责两行文本屏幕的排版。
package display

import "strings"

// LineWidth 每行最多显示的字符数
const LineWidth = 16

// Ellipsis 第二行溢出时的截断标记，显示上占一个字符
const Ellipsis = "…"

// Wrap 将文本排成最多两行，每行不超过LineWidth个字符。
// 优先在LineWidth位置（含）之前的最后一个空格处断行，找不到空格则硬切；
// 第二行超长时截为LineWidth-1个字符加省略号。
func Wrap(text string) (line1, line2 string) {
	runes := []rune(text)
	if len(runes) <= LineWidth {
		return text, ""
	}

	split := LineWidth
	for i := LineWidth; i >= 0; i-- {
		if runes[i] == ' ' {
			split = i
			break
		}
	}

	line1 = string(runes[:split])
	rest := []rune(strings.TrimSpace(string(runes[split:])))
	if len(rest) > LineWidth {
		rest = append(rest[:LineWidth-1], []rune(Ellipsis)...)
	}
	return line1, string(rest)
}

// Width 返回文本的显示宽度（按字符计）
func Width(s string) int {
	return len([]rune(s))
}
