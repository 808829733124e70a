package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/omkar381/pcc-console/internal/model"
)

// LoginAdmin は管理者として認証し、発行されたトークンを返す。
func (c *Client) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/api/admin/login", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidResponse)
	}
	return out.Token, nil
}

// ListStudents は全生徒の一覧を取得する。
func (c *Client) ListStudents(ctx context.Context) ([]model.Student, error) {
	var out []model.Student
	if err := c.getJSON(ctx, "/api/admin/students", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListClassStudents は選択中クラスの生徒一覧を取得する。
func (c *Client) ListClassStudents(ctx context.Context) ([]model.Student, error) {
	var out []model.Student
	if err := c.getJSON(ctx, "/api/admin/class-students", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStudent は生徒を登録し、バックエンドが発行した認証情報を返す。
// 入学申込書PDFが指定されていれば同時にアップロードする。
func (c *Client) CreateStudent(ctx context.Context, input CreateStudentInput) (*StudentCredentials, error) {
	fields := map[string]string{
		"name":        input.Name,
		"email":       input.Email,
		"phone":       input.Phone,
		"school_name": input.SchoolName,
		"class_level": input.ClassLevel,
	}
	files := map[string]string{}
	if input.AdmissionFormPath != "" {
		files["admission_form"] = input.AdmissionFormPath
	}

	var out StudentCredentials
	if err := c.postMultipart(ctx, "/api/admin/students", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAdmissionForm は既存の生徒に入学申込書PDFを添付する。
func (c *Client) UploadAdmissionForm(ctx context.Context, studentID int, filePath string) error {
	path := "/api/admin/students/" + strconv.Itoa(studentID) + "/admission-form"
	files := map[string]string{"admission_form": filePath}
	return c.postMultipart(ctx, path, nil, files, nil)
}

// SubmitAttendance は指定日の出欠を一括登録する。
func (c *Client) SubmitAttendance(ctx context.Context, date string, entries []AttendanceEntry) error {
	return c.postJSON(ctx, "/api/admin/attendance", attendanceRequest{Date: date, Attendance: entries}, nil)
}

// CreateTest はテストを作成し、採番されたテストIDを返す。
func (c *Client) CreateTest(ctx context.Context, input CreateTestInput) (int, error) {
	var out createTestResponse
	if err := c.postJSON(ctx, "/api/admin/tests", input, &out); err != nil {
		return 0, err
	}
	return out.TestID, nil
}

// ListTests は全テストの一覧を取得する。
func (c *Client) ListTests(ctx context.Context) ([]model.Test, error) {
	var out []model.Test
	if err := c.getJSON(ctx, "/api/admin/tests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListClassTests は選択中クラスのテスト一覧を取得する。
func (c *Client) ListClassTests(ctx context.Context) ([]model.Test, error) {
	var out []model.Test
	if err := c.getJSON(ctx, "/api/admin/class-tests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitResults はテスト結果を一括登録する。
func (c *Client) SubmitResults(ctx context.Context, testID int, entries []ResultEntry) error {
	path := "/api/admin/tests/" + strconv.Itoa(testID) + "/results"
	return c.postJSON(ctx, path, resultsRequest{Results: entries}, nil)
}

// GenerateResultsPDF はテスト結果PDFの生成を要求し、
// 生成されたPDFのベースURLからの相対パスを返す。
// 生成はサーバー側で副作用を伴うためPOSTで要求する。
func (c *Client) GenerateResultsPDF(ctx context.Context, testID int) (string, error) {
	var out generatePDFResponse
	path := "/api/admin/generate-test-results-pdf/" + strconv.Itoa(testID)
	if err := c.postJSON(ctx, path, nil, &out); err != nil {
		return "", err
	}
	if out.PDFURL == "" {
		return "", fmt.Errorf("%w: empty pdf_url", ErrInvalidResponse)
	}
	return out.PDFURL, nil
}

// ShareResultsWhatsApp はテスト結果のWhatsApp共有リンクを取得する。
func (c *Client) ShareResultsWhatsApp(ctx context.Context, testID int) (*WhatsAppShare, error) {
	var out WhatsAppShare
	path := "/api/admin/share-results-whatsapp/" + strconv.Itoa(testID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentClass は選択中のクラスを取得する。未選択の場合は空文字列を返す。
func (c *Client) CurrentClass(ctx context.Context) (string, error) {
	var out currentClassResponse
	if err := c.getJSON(ctx, "/api/admin/current-class", nil, &out); err != nil {
		return "", err
	}
	return out.SelectedClass, nil
}

// SelectClass は操作対象のクラスを切り替える。
func (c *Client) SelectClass(ctx context.Context, classLevel string) error {
	return c.postJSON(ctx, "/api/admin/select-class", selectClassRequest{ClassLevel: classLevel}, nil)
}
