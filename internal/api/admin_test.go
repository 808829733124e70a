package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omkar381/pcc-console/internal/session"
)

func TestLoginAdmin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/login" {
			t.Errorf("path = %s, want /api/admin/login", r.URL.Path)
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Username != "admin" || req.Password != "secret" {
			t.Errorf("request = %+v", req)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{"token": "admin-token-xyz"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	token, err := client.LoginAdmin(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}
	if token != "admin-token-xyz" {
		t.Errorf("token = %q, want admin-token-xyz", token)
	}
}

func TestLoginAdminEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	_, err := client.LoginAdmin(context.Background(), "admin", "secret")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestCreateStudent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "Asha Kulkarni" {
			t.Errorf("name = %q", got)
		}
		if got := r.FormValue("class_level"); got != "10th" {
			t.Errorf("class_level = %q", got)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{"admission_number": "PCC2026001", "username": "asha.pcc2026001", "password": "gen-pass"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	creds, err := client.CreateStudent(context.Background(), CreateStudentInput{
		Name:       "Asha Kulkarni",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		SchoolName: "City High School",
		ClassLevel: "10th",
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if creds.AdmissionNumber != "PCC2026001" {
		t.Errorf("AdmissionNumber = %q", creds.AdmissionNumber)
	}
	if creds.Username != "asha.pcc2026001" || creds.Password != "gen-pass" {
		t.Errorf("credentials = %+v", creds)
	}
}

func TestSubmitAttendance(t *testing.T) {
	var gotBody attendanceRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/attendance" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	entries := []AttendanceEntry{
		{StudentID: 1, Present: true},
		{StudentID: 2, Present: false},
	}
	if err := client.SubmitAttendance(context.Background(), "2026-09-01", entries); err != nil {
		t.Fatalf("SubmitAttendance: %v", err)
	}
	if gotBody.Date != "2026-09-01" {
		t.Errorf("date = %q", gotBody.Date)
	}
	if len(gotBody.Attendance) != 2 || !gotBody.Attendance[0].Present || gotBody.Attendance[1].Present {
		t.Errorf("attendance = %+v", gotBody.Attendance)
	}
}

func TestCreateTest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CreateTestInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Unit Test 1" || req.MaxMarks != 50 {
			t.Errorf("request = %+v", req)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{"test_id": 7}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	id, err := client.CreateTest(context.Background(), CreateTestInput{
		Name:       "Unit Test 1",
		Subject:    "Physics",
		ClassLevel: "10th",
		Date:       "2026-09-01",
		MaxMarks:   50,
	})
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if id != 7 {
		t.Errorf("test_id = %d, want 7", id)
	}
}

func TestSubmitResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/tests/7/results" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req resultsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Results) != 1 || req.Results[0].MarksObtained != 42.5 {
			t.Errorf("results = %+v", req.Results)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	err := client.SubmitResults(context.Background(), 7, []ResultEntry{{StudentID: 3, MarksObtained: 42.5}})
	if err != nil {
		t.Fatalf("SubmitResults: %v", err)
	}
}

func TestGenerateResultsPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 生成は副作用を伴う操作なのでPOSTでなければならない
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/admin/generate-test-results-pdf/7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{"pdf_url": "/static/results/test_7.pdf"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	pdfURL, err := client.GenerateResultsPDF(context.Background(), 7)
	if err != nil {
		t.Fatalf("GenerateResultsPDF: %v", err)
	}
	if pdfURL != "/static/results/test_7.pdf" {
		t.Errorf("pdf_url = %q", pdfURL)
	}
}

func TestShareResultsWhatsApp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/share-results-whatsapp/7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`{"whatsapp_link": "https://chat.whatsapp.com/abc", "whatsapp_share_link": "https://wa.me/?text=results"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	share, err := client.ShareResultsWhatsApp(context.Background(), 7)
	if err != nil {
		t.Fatalf("ShareResultsWhatsApp: %v", err)
	}
	if share.GroupLink != "https://chat.whatsapp.com/abc" {
		t.Errorf("GroupLink = %q", share.GroupLink)
	}
	if share.ShareLink != "https://wa.me/?text=results" {
		t.Errorf("ShareLink = %q", share.ShareLink)
	}
}

func TestCurrentClassAndSelect(t *testing.T) {
	selected := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		switch r.URL.Path {
		case "/api/admin/current-class":
			json.NewEncoder(w).Encode(currentClassResponse{SelectedClass: selected})
		case "/api/admin/select-class":
			var req selectClassRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			selected = req.ClassLevel
			w.Write([]byte(`{"message": "ok"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	got, err := client.CurrentClass(context.Background())
	if err != nil {
		t.Fatalf("CurrentClass: %v", err)
	}
	if got != "" {
		t.Errorf("initial class = %q, want empty", got)
	}

	if err := client.SelectClass(context.Background(), "9th"); err != nil {
		t.Fatalf("SelectClass: %v", err)
	}
	got, err = client.CurrentClass(context.Background())
	if err != nil {
		t.Fatalf("CurrentClass: %v", err)
	}
	if got != "9th" {
		t.Errorf("class after select = %q, want 9th", got)
	}
}

func TestListStudentsDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`[{"id": 1, "name": "Asha Kulkarni", "admission_number": "PCC2026001", "class_level": "10th", "has_admission_form": true}]`))
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv)
	if err := store.Save("tok", session.RoleAdmin); err != nil {
		t.Fatalf("Save: %v", err)
	}

	students, err := client.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("len = %d, want 1", len(students))
	}
	if students[0].AdmissionNumber != "PCC2026001" || !students[0].HasAdmissionForm {
		t.Errorf("student = %+v", students[0])
	}
}
