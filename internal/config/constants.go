package config

// 定数
const (
	// AppName はアプリケーション名
	AppName = "pcc-console"
	// SessionFileName はセッションファイル名
	SessionFileName = "session.json"
)
