// Package session はログインセッションの永続化・状態管理・認可判定を提供する。
package session

// Role はログイン種別を表す。
type Role string

const (
	// RoleAdmin は管理者
	RoleAdmin Role = "admin"
	// RoleStudent は生徒
	RoleStudent Role = "student"
)

// Valid はRoleが既知の値かどうかを返す。
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// Session は永続化される (token, role) の組を表す。
// tokenとroleは必ず同時に設定・消去される。片方のみの状態は存在しない。
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Present はセッションが存在するかどうかを返す。
func (s Session) Present() bool {
	return s.Token != "" && s.Role.Valid()
}
