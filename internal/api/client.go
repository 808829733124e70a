// Package api はバックエンドREST APIへの単一の出口を提供する。
// 全リクエストに保存済みトークンをBearerとして付与し、
// エラー分類（サーバー応答あり/なし）を一箇所に集約する。
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/omkar381/pcc-console/internal/config"
	"github.com/omkar381/pcc-console/internal/logging"
	"github.com/omkar381/pcc-console/internal/session"
)

// Client はバックエンドAPIクライアントの実装
type Client struct {
	http     *resty.Client
	baseURL  string
	sessions *session.Store
	masker   *logging.Masker
}

// NewClient は新しいClientを生成する。
func NewClient(cfg *config.Config, sessions *session.Store) *Client {
	client := &Client{
		baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		sessions: sessions,
		masker:   logging.NewMasker(cfg.LogMaskToken),
	}

	httpClient := resty.New().SetTimeout(cfg.RequestTimeout)

	// 保存済みトークンがあれば全リクエストにBearerとして付与する。
	// エンドポイントごとの除外リストは持たない。認証不要のエンドポイントは
	// サーバー側でヘッダーを無視する。
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		token := ""
		if sess := sessions.Load(); sess.Present() {
			req.SetHeader(HeaderAuthorization, BearerPrefix+sess.Token)
			token = client.masker.Token(sess.Token)
		}
		req.SetHeader(HeaderTraceID, uuid.NewString())

		slog.Debug("api request",
			"method", req.Method,
			"url", req.URL,
			"trace_id", req.Header.Get(HeaderTraceID),
			"token", token,
		)
		return nil
	})

	// 診断ログ。リクエストの結果やエラーには影響しない。
	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		slog.Debug("api response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"latency_ms", resp.Time().Milliseconds(),
		)
		return nil
	})

	client.http = httpClient
	return client
}

// BaseURL は設定されたバックエンドのベースURLを返す。
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON はGETリクエストを発行してJSONレスポンスをデコードする。
func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(c.baseURL + path)
	if err != nil {
		return &ConnectionError{Cause: err}
	}
	return c.decode(resp, out)
}

// postJSON はPOSTリクエストを発行してJSONレスポンスをデコードする。
// outがnilの場合はレスポンスボディを読み捨てる。
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader(HeaderContentType, ContentTypeJSON).SetBody(body)
	}
	resp, err := req.Post(c.baseURL + path)
	if err != nil {
		return &ConnectionError{Cause: err}
	}
	return c.decode(resp, out)
}

// postMultipart はmultipart/form-dataのPOSTリクエストを発行する。
// filesはフィールド名→ファイルパスの対応。
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, files map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(fields) > 0 {
		req.SetMultipartFormData(fields)
	}
	for field, file := range files {
		req.SetFile(field, file)
	}
	resp, err := req.Post(c.baseURL + path)
	if err != nil {
		return &ConnectionError{Cause: err}
	}
	return c.decode(resp, out)
}

// delete はDELETEリクエストを発行する。
func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(c.baseURL + path)
	if err != nil {
		return &ConnectionError{Cause: err}
	}
	return c.decode(resp, nil)
}

// decode はレスポンスを検証してJSONをデコードする。
func (c *Client) decode(resp *resty.Response, out any) error {
	if !resp.IsSuccess() {
		return c.apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// apiError はエラーレスポンスをAPIErrorに変換する。
// JSONボディのmessageフィールドのみをサーバー提供メッセージとして扱う。
// HTMLエラーページ等はContent-Typeで弾き、ステータスに応じた
// 汎用メッセージに落とす。
func (c *Client) apiError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if strings.Contains(resp.Header().Get(HeaderContentType), ContentTypeJSON) {
		var body errorBody
		if err := json.Unmarshal(resp.Body(), &body); err == nil {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
