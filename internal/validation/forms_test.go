package validation

import (
	"errors"
	"testing"

	"github.com/omkar381/pcc-console/internal/api"
)

// validStudentInput は有効な生徒登録入力を返すヘルパー。
func validStudentInput() api.CreateStudentInput {
	return api.CreateStudentInput{
		Name:       "Asha Kulkarni",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		SchoolName: "City High School",
		ClassLevel: "10th",
	}
}

func TestValidateStudent(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*api.CreateStudentInput)
		wantField string // 空ならエラーなし
	}{
		{"valid", func(in *api.CreateStudentInput) {}, ""},
		{"empty name", func(in *api.CreateStudentInput) { in.Name = "  " }, "name"},
		{"bad email", func(in *api.CreateStudentInput) { in.Email = "not-an-email" }, "email"},
		{"email optional", func(in *api.CreateStudentInput) { in.Email = "" }, ""},
		{"phone too short", func(in *api.CreateStudentInput) { in.Phone = "12345" }, "phone"},
		{"phone with letters", func(in *api.CreateStudentInput) { in.Phone = "98765abcde" }, "phone"},
		{"phone optional", func(in *api.CreateStudentInput) { in.Phone = "" }, ""},
		{"empty school", func(in *api.CreateStudentInput) { in.SchoolName = "" }, "school_name"},
		{"unknown class", func(in *api.CreateStudentInput) { in.ClassLevel = "13th" }, "class_level"},
		{"form not pdf", func(in *api.CreateStudentInput) { in.AdmissionFormPath = "/tmp/form.docx" }, "admission_form"},
		{"form pdf ok", func(in *api.CreateStudentInput) { in.AdmissionFormPath = "/tmp/Form.PDF" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validStudentInput()
			tt.mutate(&input)
			err := ValidateStudent(input)
			checkInputError(t, err, tt.wantField)
		})
	}
}

func TestValidateTest(t *testing.T) {
	valid := api.CreateTestInput{
		Name:       "Unit Test 1",
		Subject:    "Physics",
		ClassLevel: "10th",
		Date:       "2026-09-01",
		MaxMarks:   50,
	}

	tests := []struct {
		name      string
		mutate    func(*api.CreateTestInput)
		wantField string
	}{
		{"valid", func(in *api.CreateTestInput) {}, ""},
		{"empty name", func(in *api.CreateTestInput) { in.Name = "" }, "name"},
		{"unknown subject", func(in *api.CreateTestInput) { in.Subject = "History" }, "subject"},
		{"unknown class", func(in *api.CreateTestInput) { in.ClassLevel = "6th" }, "class_level"},
		{"bad date format", func(in *api.CreateTestInput) { in.Date = "01-09-2026" }, "date"},
		{"impossible date", func(in *api.CreateTestInput) { in.Date = "2026-02-30" }, "date"},
		{"zero max marks", func(in *api.CreateTestInput) { in.MaxMarks = 0 }, "max_marks"},
		{"max marks over limit", func(in *api.CreateTestInput) { in.MaxMarks = 1001 }, "max_marks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			err := ValidateTest(input)
			checkInputError(t, err, tt.wantField)
		})
	}
}

func TestValidateMarks(t *testing.T) {
	tests := []struct {
		name    string
		marks   float64
		max     int
		wantErr bool
	}{
		{"zero ok", 0, 50, false},
		{"full marks ok", 50, 50, false},
		{"half marks ok", 42.5, 50, false},
		{"negative", -1, 50, true},
		{"over max", 50.5, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMarks(tt.marks, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMarks(%v, %d) = %v, wantErr %v", tt.marks, tt.max, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNote(t *testing.T) {
	valid := api.NoteUploadInput{
		Title:    "Optics basics",
		Subject:  "Physics",
		FilePath: "/tmp/optics.pdf",
	}

	tests := []struct {
		name      string
		mutate    func(*api.NoteUploadInput)
		wantField string
	}{
		{"valid", func(in *api.NoteUploadInput) {}, ""},
		{"empty title", func(in *api.NoteUploadInput) { in.Title = "" }, "title"},
		{"unknown subject", func(in *api.NoteUploadInput) { in.Subject = "" }, "subject"},
		{"no file", func(in *api.NoteUploadInput) { in.FilePath = "" }, "file"},
		{"not pdf", func(in *api.NoteUploadInput) { in.FilePath = "/tmp/optics.txt" }, "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			err := ValidateNote(input)
			checkInputError(t, err, tt.wantField)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("admin", "secret"); err != nil {
		t.Errorf("valid login: %v", err)
	}
	checkInputError(t, ValidateLogin("", "secret"), "username")
	checkInputError(t, ValidateLogin("admin", ""), "password")
}

func TestValidateAttendanceDate(t *testing.T) {
	if err := ValidateAttendanceDate("2026-09-01"); err != nil {
		t.Errorf("valid date: %v", err)
	}
	checkInputError(t, ValidateAttendanceDate("today"), "date")
}

// checkInputError はInputErrorのフィールドを検証するヘルパー。
func checkInputError(t *testing.T, err error, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("error type = %T, want *InputError", err)
	}
	if inputErr.Field != wantField {
		t.Errorf("field = %q, want %q", inputErr.Field, wantField)
	}
}
