// Package audit は監査ログ機能を提供する。
package audit

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Operation は監査ログの操作種別を表す。
type Operation string

const (
	// OpLogin はログイン操作
	OpLogin Operation = "login"
	// OpLogout はログアウト操作
	OpLogout Operation = "logout"
	// OpCreate は作成操作
	OpCreate Operation = "create"
	// OpDelete は削除操作
	OpDelete Operation = "delete"
	// OpUpload はアップロード操作
	OpUpload Operation = "upload"
	// OpDownload はダウンロード操作
	OpDownload Operation = "download"
	// OpMark は出欠・得点の記録操作
	OpMark Operation = "mark"
	// OpGenerate はPDF生成操作
	OpGenerate Operation = "generate"
	// OpShare は共有リンク取得操作
	OpShare Operation = "share"
	// OpSelect はクラス切替操作
	OpSelect Operation = "select"
)

// TargetType は監査ログの対象種別を表す。
type TargetType string

const (
	// TargetStudent は生徒
	TargetStudent TargetType = "student"
	// TargetAttendance は出欠記録
	TargetAttendance TargetType = "attendance"
	// TargetNote は授業ノート
	TargetNote TargetType = "note"
	// TargetTest はテスト
	TargetTest TargetType = "test"
	// TargetResult はテスト結果
	TargetResult TargetType = "result"
	// TargetClass はクラス
	TargetClass TargetType = "class"
	// TargetSession はログインセッション
	TargetSession TargetType = "session"
)

// Entry は監査ログエントリを表す。
type Entry struct {
	Time       string     `json:"time"`              // RFC3339形式のタイムスタンプ
	Level      string     `json:"level"`             // ログレベル（常に"INFO"）
	App        string     `json:"app"`               // アプリケーション名（常に"pcc-console"）
	EventID    string     `json:"event_id"`          // イベントID（常に"AUDIT_LOG"）
	Msg        string     `json:"msg"`               // メッセージ
	Operation  Operation  `json:"operation"`         // 操作種別
	TargetType TargetType `json:"target_type"`       // 対象種別
	TargetKey  string     `json:"target_key"`        // 対象キー（生徒の入学番号、テストID等）
	Actor      string     `json:"actor"`             // 操作者のロール（admin/student）
	Details    string     `json:"details,omitempty"` // 追加詳細情報
}

// Logger は監査ログを出力する。
type Logger struct {
	writer io.Writer
	actor  string
	mu     sync.Mutex
}

// NewLogger は新しいLoggerを生成する。
func NewLogger(actor string) *Logger {
	return &Logger{
		writer: os.Stdout,
		actor:  actor,
	}
}

// NewLoggerWithWriter は指定されたWriterを使用するLoggerを生成する。
func NewLoggerWithWriter(writer io.Writer, actor string) *Logger {
	return &Logger{
		writer: writer,
		actor:  actor,
	}
}

// SetActor は操作者のロールを切り替える。ログイン・ログアウト時に呼ばれる。
func (l *Logger) SetActor(actor string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.actor = actor
}

// Log は監査ログエントリを出力する。
func (l *Logger) Log(op Operation, targetType TargetType, targetKey, msg string) {
	l.LogWithDetails(op, targetType, targetKey, msg, "")
}

// LogWithDetails は詳細情報付きで監査ログエントリを出力する。
func (l *Logger) LogWithDetails(op Operation, targetType TargetType, targetKey, msg, details string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		Time:       time.Now().UTC().Format(time.RFC3339),
		Level:      "INFO",
		App:        "pcc-console",
		EventID:    "AUDIT_LOG",
		Msg:        msg,
		Operation:  op,
		TargetType: targetType,
		TargetKey:  targetKey,
		Actor:      l.actor,
		Details:    details,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = l.writer.Write(append(data, '\n'))
}

// LogLogin はログイン成功のログを出力する。
func (l *Logger) LogLogin(role string) {
	l.Log(OpLogin, TargetSession, role, "logged in as "+role)
}

// LogLogout はログアウトのログを出力する。
func (l *Logger) LogLogout() {
	l.Log(OpLogout, TargetSession, "", "logged out")
}

// LogCreate はCREATE操作のログを出力する。
func (l *Logger) LogCreate(targetType TargetType, targetKey string) {
	l.Log(OpCreate, targetType, targetKey, string(targetType)+" created")
}

// LogDelete はDELETE操作のログを出力する。
func (l *Logger) LogDelete(targetType TargetType, targetKey string) {
	l.Log(OpDelete, targetType, targetKey, string(targetType)+" deleted")
}

// LogUpload はアップロード操作のログを出力する。
func (l *Logger) LogUpload(targetType TargetType, targetKey, filename string) {
	l.LogWithDetails(OpUpload, targetType, targetKey, string(targetType)+" uploaded", filename)
}

// LogMark は出欠・得点の記録のログを出力する。
func (l *Logger) LogMark(targetType TargetType, targetKey, details string) {
	l.LogWithDetails(OpMark, targetType, targetKey, string(targetType)+" recorded", details)
}
