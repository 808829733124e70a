// Package logging はログ関連のユーティリティを提供する。
package logging

// MaskToken は認証トークンをマスキングする。
// 先頭4文字 + マスク + 末尾4文字のみを残す。
// 例: eyJhbGciOiJIUzI1NiJ9 → eyJh************NiJ9
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskToken(token string, enabled bool) string {
	if !enabled {
		return token
	}
	return MaskPartial(token, 4, 4, '*')
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix {
		return s
	}

	result := make([]rune, length)
	copy(result, runes[:keepPrefix])
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result[i] = maskChar
	}
	copy(result[length-keepSuffix:], runes[length-keepSuffix:])

	return string(result)
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// Token はトークンをマスキングする。
func (m *Masker) Token(token string) string {
	return MaskToken(token, m.enabled)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
