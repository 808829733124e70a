// Package format はフォーマットユーティリティを提供する。
package format

import (
	"fmt"
	"time"
)

// DateLayout はAPIとの日付交換形式（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// displayLayout は画面表示用の日付形式
const displayLayout = "02 Jan 2006"

// Today は今日の日付をYYYY-MM-DD形式で返す。
func Today() string {
	return time.Now().Format(DateLayout)
}

// DisplayDate はYYYY-MM-DD形式の日付を "02 Jan 2006" 形式に変換する。
// 解析できない場合は入力をそのまま返す。
func DisplayDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayLayout)
}

// Percent は割合を "85%" 形式にフォーマットする。
func Percent(percentage int) string {
	return fmt.Sprintf("%d%%", percentage)
}

// Marks は得点を "42.5 / 50" 形式にフォーマットする。
// 整数の得点は小数点を付けずに表示する。
func Marks(obtained float64, max int) string {
	if obtained == float64(int(obtained)) {
		return fmt.Sprintf("%d / %d", int(obtained), max)
	}
	return fmt.Sprintf("%.1f / %d", obtained, max)
}

// PresenceMark は出欠を "P" / "A" にフォーマットする。
func PresenceMark(present bool) string {
	if present {
		return "P"
	}
	return "A"
}

// Bytes はバイト数を人間が読みやすい形式にフォーマットする。
// 例: 1024 -> "1.00 KB", 1048576 -> "1.00 MB"
func Bytes(bytes int64) string {
	const (
		_          = iota
		kb float64 = 1 << (10 * iota)
		mb
		gb
	)

	b := float64(bytes)

	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GB", b/gb)
	case b >= mb:
		return fmt.Sprintf("%.2f MB", b/mb)
	case b >= kb:
		return fmt.Sprintf("%.2f KB", b/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
