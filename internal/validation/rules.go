// Package validation は入力フォームの検証を提供する。
// バックエンドでも同じ検証が行われるが、往復せずに誤りを指摘するため
// クライアント側でも検証する。
package validation

import (
	"fmt"
	"regexp"
	"time"
)

// ClassLevels は選択可能なクラス（学年）の一覧
var ClassLevels = []string{"7th", "8th", "9th", "10th", "11th", "12th"}

// Subjects は選択可能な科目の一覧
var Subjects = []string{"Mathematics", "Physics", "Chemistry", "Biology"}

// MaxMarksLimit はテスト満点の上限
const MaxMarksLimit = 1000

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// DateLayout は日付入力の形式（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// InputError は入力検証エラーを表す。
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidClassLevel はクラスが選択肢に含まれるかを返す。
func ValidClassLevel(classLevel string) bool {
	for _, c := range ClassLevels {
		if c == classLevel {
			return true
		}
	}
	return false
}

// ValidSubject は科目が選択肢に含まれるかを返す。
func ValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// ValidDate は日付がYYYY-MM-DD形式の実在する日付かを返す。
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
