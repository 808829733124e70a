package session

// Decision はルートガードの判定結果を表す。
type Decision int

const (
	// Render は画面を表示する
	Render Decision = iota
	// RedirectToLogin はログイン画面へ戻す
	RedirectToLogin
)

// Check は認証状態と必要ロールから表示可否を判定する純粋関数。
// requiredが空の場合はログイン済みであれば任意のロールを許可する。
// ロール不一致は未ログインと同じ扱いでログイン画面へ戻す。
// 独立した「禁止」状態は持たない。
func Check(isAuthenticated bool, current Role, required Role) Decision {
	if !isAuthenticated {
		return RedirectToLogin
	}
	if required != "" && current != required {
		return RedirectToLogin
	}
	return Render
}
