package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store はセッションのファイル永続化を提供する。
// トークンの有効期限は管理しない。期限切れはバックエンドが
// リクエストを拒否することでのみ検出される。
type Store struct {
	path string
}

// NewStore は新しいStoreを生成する。
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load は保存されたセッションを読み込む。
// ファイルが存在しない・読めない・壊れている場合は空のSessionを返し、失敗しない。
func (s *Store) Load() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}
	}
	// tokenとroleの片方だけ残った状態はセッションなし扱いにする
	if !sess.Present() {
		return Session{}
	}
	return sess
}

// Save はセッションを保存する。
// 一時ファイルへの書き込み+renameにより、読み手が
// token/roleの片方だけ更新された状態を観測しないようにする。
func (s *Store) Save(token string, role Role) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(Session{Token: token, Role: role})
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear は保存されたセッションを削除する。
// ファイルが存在しない場合もエラーにしない。
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
