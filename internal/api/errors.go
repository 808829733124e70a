package api

import (
	"errors"
	"fmt"
	"net/http"
)

// センチネルエラー
var (
	// ErrInvalidResponse はバックエンドからのレスポンスが不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from server")
)

// NetworkErrorMessage は応答が得られなかった場合の表示メッセージ
const NetworkErrorMessage = "No response from server. Please check your network connection."

// APIError はサーバーがエラーステータスを返した場合のエラーを表す
type APIError struct {
	StatusCode int
	Message    string // サーバー提供のmessageフィールド（JSONボディから取得できた場合のみ）
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %d", e.StatusCode)
}

// UserMessage は画面表示用のメッセージを返す。
// サーバー提供メッセージを優先し、なければステータスに応じた汎用メッセージを返す。
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return genericMessage(e.StatusCode)
}

// IsAuthError は認証エラーかどうかを判定する
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound は対象が存在しないエラーかどうかを判定する
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError はサーバーエラーかどうかを判定する
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError は応答が得られなかった場合（ネットワーク障害等）のエラーを表す
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// genericMessage はHTTPステータスに対応する汎用メッセージを返す。
func genericMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "Session expired or unauthorized. Please log in again."
	case status == http.StatusForbidden:
		return "You do not have permission to perform this action."
	case status == http.StatusNotFound:
		return "Requested resource was not found."
	case status >= 500:
		return fmt.Sprintf("Server error (%d). Please try again later.", status)
	default:
		return fmt.Sprintf("Request failed (%d). Please try again.", status)
	}
}

// UserMessage はエラーを画面表示用のメッセージに変換する。
// 優先順位: サーバー提供メッセージ → ステータスに応じた汎用メッセージ →
// ネットワーク障害メッセージ。
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return NetworkErrorMessage
	}
	if errors.Is(err, ErrInvalidResponse) {
		return "Invalid response from server."
	}
	return err.Error()
}
