package api

import (
	"context"
	"fmt"

	"github.com/omkar381/pcc-console/internal/model"
)

// LoginStudent は生徒として認証し、発行されたトークンを返す。
func (c *Client) LoginStudent(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/api/student/login", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidResponse)
	}
	return out.Token, nil
}

// StudentAttendance はログイン中の生徒自身の出欠履歴を取得する。
func (c *Client) StudentAttendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	if err := c.getJSON(ctx, "/api/student/attendance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StudentTests はログイン中の生徒自身のテスト結果一覧を取得する。
func (c *Client) StudentTests(ctx context.Context) ([]model.StudentTestResult, error) {
	var out []model.StudentTestResult
	if err := c.getJSON(ctx, "/api/student/tests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
