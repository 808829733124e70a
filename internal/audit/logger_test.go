package audit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogEntryFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "admin")

	logger.LogCreate(TargetStudent, "PCC2026001")

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if entry.App != "pcc-console" {
		t.Errorf("app = %q", entry.App)
	}
	if entry.EventID != "AUDIT_LOG" {
		t.Errorf("event_id = %q", entry.EventID)
	}
	if entry.Operation != OpCreate || entry.TargetType != TargetStudent {
		t.Errorf("entry = %+v", entry)
	}
	if entry.TargetKey != "PCC2026001" || entry.Actor != "admin" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Time == "" {
		t.Error("time is empty")
	}
}

func TestLogLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "admin")

	logger.LogLogin("admin")
	logger.LogMark(TargetAttendance, "2026-09-01", "12 students")
	logger.LogLogout()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, line := range lines {
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestSetActor(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "")

	logger.SetActor("student")
	logger.LogUpload(TargetNote, "5", "optics.pdf")

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if entry.Actor != "student" {
		t.Errorf("actor = %q, want student", entry.Actor)
	}
	if entry.Details != "optics.pdf" {
		t.Errorf("details = %q", entry.Details)
	}
}
