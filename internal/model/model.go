// Package model はバックエンドAPIと共有するデータモデルを定義する。
package model

import "math"

// Student は生徒情報を表す。
type Student struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	AdmissionNumber  string `json:"admission_number"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	SchoolName       string `json:"school_name"`
	ClassLevel       string `json:"class_level"`
	AdmissionDate    string `json:"admission_date"`     // YYYY-MM-DD
	HasAdmissionForm bool   `json:"has_admission_form"` // 入学申込書PDFの登録有無
}

// AttendanceRecord は1日分の出欠記録を表す。
type AttendanceRecord struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Present bool   `json:"present"`
}

// AttendanceSummary は出欠記録の集計を表す。
type AttendanceSummary struct {
	TotalClasses int
	Attended     int
	Percentage   int // 四捨五入した出席率（0-100）
}

// Summarize は出欠記録から集計を計算する。
// 記録が空の場合は出席率0とする。
func Summarize(records []AttendanceRecord) AttendanceSummary {
	summary := AttendanceSummary{TotalClasses: len(records)}
	for _, r := range records {
		if r.Present {
			summary.Attended++
		}
	}
	if summary.TotalClasses > 0 {
		summary.Percentage = int(math.Round(float64(summary.Attended) / float64(summary.TotalClasses) * 100))
	}
	return summary
}

// Note は授業ノート（配布資料）を表す。
type Note struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	UploadDate string `json:"upload_date"`
}

// Test はテストを表す。
type Test struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	ClassLevel string `json:"class_level"`
	Date       string `json:"date"` // YYYY-MM-DD
	MaxMarks   int    `json:"max_marks"`
}

// TestResult は1人の生徒のテスト結果入力を表す。
type TestResult struct {
	StudentID     int     `json:"student_id"`
	MarksObtained float64 `json:"marks_obtained"`
}

// StudentTestResult は生徒側から見たテスト結果を表す。
type StudentTestResult struct {
	TestName      string  `json:"test_name"`
	Subject       string  `json:"subject"`
	Date          string  `json:"date"`
	MarksObtained float64 `json:"marks_obtained"`
	MaxMarks      int     `json:"max_marks"`
}

// Percentage は得点率（0-100）を返す。満点が0の場合は0を返す。
func (r StudentTestResult) Percentage() float64 {
	if r.MaxMarks <= 0 {
		return 0
	}
	return r.MarksObtained / float64(r.MaxMarks) * 100
}
