package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/omkar381/pcc-console/internal/model"
)

// ListNotes はノート一覧を取得する。subjectが空でなければ科目で絞り込む。
// 管理者・生徒の双方から利用される。
func (c *Client) ListNotes(ctx context.Context, subject string) ([]model.Note, error) {
	var query map[string]string
	if subject != "" {
		query = map[string]string{"subject": subject}
	}
	var out []model.Note
	if err := c.getJSON(ctx, "/api/notes", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadNote はノートPDFをアップロードする。
func (c *Client) UploadNote(ctx context.Context, input NoteUploadInput) error {
	fields := map[string]string{
		"title":   input.Title,
		"subject": input.Subject,
	}
	files := map[string]string{"file": input.FilePath}
	return c.postMultipart(ctx, "/api/admin/notes", fields, files, nil)
}

// DeleteNote はノートを削除する。
func (c *Client) DeleteNote(ctx context.Context, noteID int) error {
	return c.delete(ctx, "/api/admin/notes/"+strconv.Itoa(noteID))
}

// NoteDownloadURL はノートのダウンロードURLを返す。
// ダウンロードはブラウザ等の外部経路でも開けるよう、
// トークンをクエリパラメータで渡す。
func (c *Client) NoteDownloadURL(noteID int) string {
	u := c.baseURL + "/api/notes/" + strconv.Itoa(noteID) + "/download"
	if sess := c.sessions.Load(); sess.Present() {
		u += "?token=" + url.QueryEscape(sess.Token)
	}
	return u
}

// DownloadNote はノートPDFを取得してdestPathに保存する。
func (c *Client) DownloadNote(ctx context.Context, noteID int, destPath string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetOutput(destPath).
		Get(c.baseURL + "/api/notes/" + strconv.Itoa(noteID) + "/download")
	if err != nil {
		return &ConnectionError{Cause: err}
	}
	if !resp.IsSuccess() {
		return c.apiError(resp)
	}
	return nil
}
