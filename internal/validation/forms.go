package validation

import (
	"strings"

	"github.com/omkar381/pcc-console/internal/api"
)

// ValidateLogin はログイン入力を検証する。
func ValidateLogin(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &InputError{Field: "username", Message: "Username is required"}
	}
	if password == "" {
		return &InputError{Field: "password", Message: "Password is required"}
	}
	return nil
}

// ValidateStudent は生徒登録フォームの入力を検証する。
func ValidateStudent(input api.CreateStudentInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &InputError{Field: "name", Message: "Name is required"}
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		return &InputError{Field: "email", Message: "Invalid email address"}
	}
	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		return &InputError{Field: "phone", Message: "Phone must be 10 digits"}
	}
	if strings.TrimSpace(input.SchoolName) == "" {
		return &InputError{Field: "school_name", Message: "School name is required"}
	}
	if !ValidClassLevel(input.ClassLevel) {
		return &InputError{Field: "class_level", Message: "Select a class"}
	}
	if input.AdmissionFormPath != "" && !strings.HasSuffix(strings.ToLower(input.AdmissionFormPath), ".pdf") {
		return &InputError{Field: "admission_form", Message: "Admission form must be a PDF file"}
	}
	return nil
}

// ValidateTest はテスト作成フォームの入力を検証する。
func ValidateTest(input api.CreateTestInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &InputError{Field: "name", Message: "Test name is required"}
	}
	if !ValidSubject(input.Subject) {
		return &InputError{Field: "subject", Message: "Select a subject"}
	}
	if !ValidClassLevel(input.ClassLevel) {
		return &InputError{Field: "class_level", Message: "Select a class"}
	}
	if !ValidDate(input.Date) {
		return &InputError{Field: "date", Message: "Date must be YYYY-MM-DD"}
	}
	if input.MaxMarks < 1 || input.MaxMarks > MaxMarksLimit {
		return &InputError{Field: "max_marks", Message: "Max marks must be between 1 and 1000"}
	}
	return nil
}

// ValidateMarks は得点入力を検証する。
func ValidateMarks(marks float64, maxMarks int) error {
	if marks < 0 {
		return &InputError{Field: "marks", Message: "Marks cannot be negative"}
	}
	if marks > float64(maxMarks) {
		return &InputError{Field: "marks", Message: "Marks cannot exceed max marks"}
	}
	return nil
}

// ValidateNote はノートアップロードフォームの入力を検証する。
func ValidateNote(input api.NoteUploadInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return &InputError{Field: "title", Message: "Title is required"}
	}
	if !ValidSubject(input.Subject) {
		return &InputError{Field: "subject", Message: "Select a subject"}
	}
	if strings.TrimSpace(input.FilePath) == "" {
		return &InputError{Field: "file", Message: "File is required"}
	}
	if !strings.HasSuffix(strings.ToLower(input.FilePath), ".pdf") {
		return &InputError{Field: "file", Message: "File must be a PDF"}
	}
	return nil
}

// ValidateAttendanceDate は出欠登録の日付入力を検証する。
func ValidateAttendanceDate(date string) error {
	if !ValidDate(date) {
		return &InputError{Field: "date", Message: "Date must be YYYY-MM-DD"}
	}
	return nil
}
