package api

// errorBody はエラーレスポンスのJSONボディを表す。
type errorBody struct {
	Message string `json:"message"`
}

// loginRequest はログインリクエストを表す。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse はログインレスポンスを表す。
type loginResponse struct {
	Token string `json:"token"`
}

// CreateStudentInput は生徒登録の入力を表す。
type CreateStudentInput struct {
	Name              string
	Email             string
	Phone             string
	SchoolName        string
	ClassLevel        string
	AdmissionFormPath string // 入学申込書PDFのパス（省略可）
}

// StudentCredentials は生徒登録時にバックエンドが発行する認証情報を表す。
type StudentCredentials struct {
	AdmissionNumber string `json:"admission_number"`
	Username        string `json:"username"`
	Password        string `json:"password"`
}

// AttendanceEntry は出欠登録の1エントリを表す。
type AttendanceEntry struct {
	StudentID int  `json:"student_id"`
	Present   bool `json:"present"`
}

// attendanceRequest は出欠登録リクエストを表す。
type attendanceRequest struct {
	Date       string            `json:"date"` // YYYY-MM-DD
	Attendance []AttendanceEntry `json:"attendance"`
}

// CreateTestInput はテスト作成の入力を表す。
type CreateTestInput struct {
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	ClassLevel string `json:"class_level"`
	Date       string `json:"date"` // YYYY-MM-DD
	MaxMarks   int    `json:"max_marks"`
}

// createTestResponse はテスト作成レスポンスを表す。
type createTestResponse struct {
	TestID int `json:"test_id"`
}

// resultsRequest はテスト結果登録リクエストを表す。
type resultsRequest struct {
	Results []ResultEntry `json:"results"`
}

// ResultEntry はテスト結果登録の1エントリを表す。
type ResultEntry struct {
	StudentID     int     `json:"student_id"`
	MarksObtained float64 `json:"marks_obtained"`
}

// generatePDFResponse はPDF生成レスポンスを表す。
type generatePDFResponse struct {
	PDFURL string `json:"pdf_url"` // ベースURLからの相対パス
}

// WhatsAppShare はWhatsApp共有リンクの組を表す。
type WhatsAppShare struct {
	GroupLink string `json:"whatsapp_link"`       // グループ参加リンク
	ShareLink string `json:"whatsapp_share_link"` // 直接共有リンク
}

// NoteUploadInput はノートアップロードの入力を表す。
type NoteUploadInput struct {
	Title    string
	Subject  string
	FilePath string // アップロードするPDFのパス
}

// currentClassResponse は選択中クラスのレスポンスを表す。
type currentClassResponse struct {
	SelectedClass string `json:"selected_class"`
}

// selectClassRequest はクラス選択リクエストを表す。
type selectClassRequest struct {
	ClassLevel string `json:"class_level"`
}
