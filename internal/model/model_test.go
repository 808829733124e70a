package model

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		records []AttendanceRecord
		want    AttendanceSummary
	}{
		{
			name:    "empty",
			records: nil,
			want:    AttendanceSummary{TotalClasses: 0, Attended: 0, Percentage: 0},
		},
		{
			name: "all present",
			records: []AttendanceRecord{
				{Date: "2026-08-01", Present: true},
				{Date: "2026-08-02", Present: true},
			},
			want: AttendanceSummary{TotalClasses: 2, Attended: 2, Percentage: 100},
		},
		{
			name: "two thirds rounds up",
			records: []AttendanceRecord{
				{Date: "2026-08-01", Present: true},
				{Date: "2026-08-02", Present: true},
				{Date: "2026-08-03", Present: false},
			},
			want: AttendanceSummary{TotalClasses: 3, Attended: 2, Percentage: 67},
		},
		{
			name: "one third rounds down",
			records: []AttendanceRecord{
				{Date: "2026-08-01", Present: true},
				{Date: "2026-08-02", Present: false},
				{Date: "2026-08-03", Present: false},
			},
			want: AttendanceSummary{TotalClasses: 3, Attended: 1, Percentage: 33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStudentTestResultPercentage(t *testing.T) {
	tests := []struct {
		name   string
		result StudentTestResult
		want   float64
	}{
		{"full marks", StudentTestResult{MarksObtained: 100, MaxMarks: 100}, 100},
		{"half marks", StudentTestResult{MarksObtained: 40, MaxMarks: 80}, 50},
		{"zero max marks", StudentTestResult{MarksObtained: 10, MaxMarks: 0}, 0},
		{"zero marks", StudentTestResult{MarksObtained: 0, MaxMarks: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Percentage(); got != tt.want {
				t.Errorf("Percentage() = %v, want %v", got, tt.want)
			}
		})
	}
}
