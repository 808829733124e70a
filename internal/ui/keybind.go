package ui

import "github.com/gdamore/tcell/v2"

// キーバインド定義
var (
	// Navigation keys
	KeyTab      = tcell.KeyTab
	KeyBacktab  = tcell.KeyBacktab
	KeyEnter    = tcell.KeyEnter
	KeyEscape   = tcell.KeyEsc
	KeyPageUp   = tcell.KeyPgUp
	KeyPageDown = tcell.KeyPgDn

	// Action keys
	KeyCreate  = tcell.KeyF2
	KeyDelete  = tcell.KeyF4
	KeyRefresh = tcell.KeyF5
	KeyFilter  = tcell.KeyF6
	KeyHelp    = tcell.KeyF1
	KeyQuit    = tcell.KeyCtrlQ
)

// Rune keys
const (
	RuneCreate   = 'n'
	RuneDelete   = 'd'
	RuneRefresh  = 'r'
	RuneFilter   = '/'
	RuneUpload   = 'u'
	RuneDownload = 'w'
	RuneGenerate = 'g'
	RuneShare    = 's'
	RuneMarks    = 'm'
	RuneHelp     = '?'
	RuneQuit     = 'q'
)

// KeyBinding はキーバインドの情報を表す。
type KeyBinding struct {
	Key         tcell.Key
	Rune        rune
	Description string
}

// DefaultStatusHints はステータスバーに常時表示するキーバインドを返す。
func DefaultStatusHints() []KeyBinding {
	return []KeyBinding{
		{Key: KeyHelp, Description: "Help"},
		{Rune: RuneQuit, Description: "Back"},
		{Key: KeyQuit, Description: "Exit"},
	}
}

// FormatKeyBindingHint はキーバインドのヒント文字列を生成する。
func FormatKeyBindingHint(bindings []KeyBinding) string {
	hints := ""
	for i, b := range bindings {
		if i > 0 {
			hints += " | "
		}
		if b.Key != 0 {
			hints += keyToString(b.Key) + ": " + b.Description
		} else {
			hints += string(b.Rune) + ": " + b.Description
		}
	}
	return hints
}

// keyToString はキーコードを文字列に変換する。
func keyToString(key tcell.Key) string {
	switch key {
	case tcell.KeyF1:
		return "F1"
	case tcell.KeyF2:
		return "F2"
	case tcell.KeyF4:
		return "F4"
	case tcell.KeyF5:
		return "F5"
	case tcell.KeyF6:
		return "F6"
	case tcell.KeyUp:
		return "↑"
	case tcell.KeyDown:
		return "↓"
	case tcell.KeyPgUp:
		return "PgUp"
	case tcell.KeyPgDn:
		return "PgDn"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBacktab:
		return "Shift+Tab"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEsc:
		return "Esc"
	case tcell.KeyCtrlQ:
		return "Ctrl+Q"
	default:
		return "?"
	}
}
