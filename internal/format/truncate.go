package format

import "unicode/utf8"

// Truncate は文字列を指定した長さに切り詰める。
// 切り詰めた場合は末尾に "..." を付加する。
func Truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		if maxLen <= 0 {
			return ""
		}
		if len(s) <= maxLen {
			return s
		}
		return s[:maxLen]
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen-3]) + "..."
}

// PadRight は文字列を右側にパディングする。
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}

	padding := make([]rune, width-len(runes))
	for i := range padding {
		padding[i] = ' '
	}
	return s + string(padding)
}

// PadLeft は文字列を左側にパディングする。
func PadLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}

	padding := make([]rune, width-len(runes))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}
