package ui

import "github.com/gdamore/tcell/v2"

// 色定義
var (
	// Status colors
	ColorSuccess = tcell.ColorGreen
	ColorWarning = tcell.ColorYellow
	ColorError   = tcell.ColorRed
	ColorInfo    = tcell.ColorTeal

	// Text colors
	ColorText      = tcell.ColorWhite
	ColorTextMuted = tcell.ColorGray
	ColorHeader    = tcell.ColorYellow

	// Border colors
	ColorBorder      = tcell.ColorWhite
	ColorBorderFocus = tcell.ColorBlue

	// Domain colors
	ColorPresent     = tcell.ColorGreen
	ColorAbsent      = tcell.ColorRed
	ColorCredentials = tcell.ColorYellow
	ColorMissingForm = tcell.ColorYellow
)

// IndicatorMissingForm は入学申込書未登録のインジケータ文字
const IndicatorMissingForm = '!'

// StyleBold は太字スタイルを適用した文字列を返す。
func StyleBold(text string) string {
	return "[::b]" + text + "[::-]"
}

// StyleSuccess は成功スタイルを適用した文字列を返す。
func StyleSuccess(text string) string {
	return "[green]" + text + "[-]"
}

// StyleError はエラースタイルを適用した文字列を返す。
func StyleError(text string) string {
	return "[red]" + text + "[-]"
}

// StyleWarning は警告スタイルを適用した文字列を返す。
func StyleWarning(text string) string {
	return "[yellow]" + text + "[-]"
}

// StyleInfo は情報スタイルを適用した文字列を返す。
func StyleInfo(text string) string {
	return "[teal]" + text + "[-]"
}

// StyleMuted は薄い色のスタイルを適用した文字列を返す。
func StyleMuted(text string) string {
	return "[gray]" + text + "[-]"
}
