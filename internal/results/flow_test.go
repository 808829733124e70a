package results

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/omkar381/pcc-console/internal/api"
)

const testBaseURL = "http://localhost:5000"

func TestGenerateSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).Return("/static/results/test_7.pdf", nil)

	flow := NewFlow(mockAPI, testBaseURL, 7)
	if flow.State() != StateIdle {
		t.Fatalf("initial state = %v, want StateIdle", flow.State())
	}

	if err := flow.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if flow.State() != StateReady {
		t.Errorf("state = %v, want StateReady", flow.State())
	}
	if flow.Attempts() != 0 {
		t.Errorf("attempts = %d, want 0 after success", flow.Attempts())
	}
	if flow.PDFURL() != testBaseURL+"/static/results/test_7.pdf" {
		t.Errorf("PDFURL = %q", flow.PDFURL())
	}
}

func TestGenerateServerErrorShowsRetryHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).
		Return("", &api.APIError{StatusCode: 500})

	flow := NewFlow(mockAPI, testBaseURL, 7)

	if err := flow.Generate(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if flow.State() != StateFailed {
		t.Errorf("state = %v, want StateFailed", flow.State())
	}
	if flow.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", flow.Attempts())
	}
	if !strings.Contains(flow.Message(), RetryHintMessage) {
		t.Errorf("message = %q, want retry hint", flow.Message())
	}
}

func TestGenerateRetryHintStopsAfterLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).
		Return("", &api.APIError{StatusCode: 500}).
		Times(maxRetryHint)

	flow := NewFlow(mockAPI, testBaseURL, 7)
	for i := 0; i < maxRetryHint; i++ {
		flow.Generate(context.Background())
	}
	// 上限に達した後は再試行を促さない
	if strings.Contains(flow.Message(), RetryHintMessage) {
		t.Errorf("message = %q, want no retry hint after %d attempts", flow.Message(), maxRetryHint)
	}
}

func TestGenerateNoRetryHintOnClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).
		Return("", &api.APIError{StatusCode: 404, Message: "Test not found"})

	flow := NewFlow(mockAPI, testBaseURL, 7)
	flow.Generate(context.Background())

	if strings.Contains(flow.Message(), RetryHintMessage) {
		t.Errorf("message = %q, want no retry hint for 404", flow.Message())
	}
	if !strings.Contains(flow.Message(), "Test not found") {
		t.Errorf("message = %q, want server-provided message", flow.Message())
	}
}

func TestGenerateRetryAfterFailureSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	gomock.InOrder(
		mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).
			Return("", &api.ConnectionError{Cause: errors.New("refused")}),
		mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).
			Return("/static/results/test_7.pdf", nil),
	)

	flow := NewFlow(mockAPI, testBaseURL, 7)
	if err := flow.Generate(context.Background()); err == nil {
		t.Fatal("expected first attempt to fail")
	}
	if err := flow.Generate(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if flow.State() != StateReady {
		t.Errorf("state = %v, want StateReady", flow.State())
	}
	if flow.Attempts() != 0 {
		t.Errorf("attempts = %d, want 0 after success", flow.Attempts())
	}
	if flow.Message() != "" {
		t.Errorf("message = %q, want empty after success", flow.Message())
	}
}

func TestShareBlockedBeforeGenerate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	// ShareResultsWhatsAppが呼ばれないことをモックが検証する

	flow := NewFlow(mockAPI, testBaseURL, 7)
	if flow.CanShare() {
		t.Error("CanShare = true before generate")
	}
	if err := flow.PrepareShare(context.Background()); !errors.Is(err, ErrPDFNotReady) {
		t.Errorf("PrepareShare = %v, want ErrPDFNotReady", err)
	}
	if flow.ShareState() != ShareIdle {
		t.Errorf("share state = %v, want ShareIdle", flow.ShareState())
	}
}

func TestShareSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).Return("/static/results/test_7.pdf", nil)
	mockAPI.EXPECT().ShareResultsWhatsApp(gomock.Any(), 7).Return(&api.WhatsAppShare{
		GroupLink: "https://chat.whatsapp.com/abc",
		ShareLink: "https://wa.me/?text=results",
	}, nil)

	flow := NewFlow(mockAPI, testBaseURL, 7)
	if err := flow.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := flow.PrepareShare(context.Background()); err != nil {
		t.Fatalf("PrepareShare: %v", err)
	}
	if flow.ShareState() != ShareReady {
		t.Errorf("share state = %v, want ShareReady", flow.ShareState())
	}
	if flow.Share().GroupLink != "https://chat.whatsapp.com/abc" {
		t.Errorf("share = %+v", flow.Share())
	}
}

func TestShareFailureKeepsPDFReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	gomock.InOrder(
		mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).Return("/static/results/test_7.pdf", nil),
		mockAPI.EXPECT().ShareResultsWhatsApp(gomock.Any(), 7).
			Return(nil, &api.ConnectionError{Cause: errors.New("refused")}),
		mockAPI.EXPECT().ShareResultsWhatsApp(gomock.Any(), 7).Return(&api.WhatsAppShare{
			GroupLink: "https://chat.whatsapp.com/abc",
		}, nil),
	)

	flow := NewFlow(mockAPI, testBaseURL, 7)
	if err := flow.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if err := flow.PrepareShare(context.Background()); err == nil {
		t.Fatal("expected share failure")
	}
	if flow.ShareState() != ShareFailed {
		t.Errorf("share state = %v, want ShareFailed", flow.ShareState())
	}
	if flow.State() != StateReady {
		t.Errorf("pdf state = %v, want StateReady after share failure", flow.State())
	}
	if flow.Message() != api.NetworkErrorMessage {
		t.Errorf("message = %q", flow.Message())
	}

	// 共有は再試行できる
	if err := flow.PrepareShare(context.Background()); err != nil {
		t.Fatalf("share retry: %v", err)
	}
	if flow.ShareState() != ShareReady {
		t.Errorf("share state after retry = %v, want ShareReady", flow.ShareState())
	}
}

func TestGenerateAbsoluteURLKeptAsIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := NewMockPDFAPI(ctrl)
	mockAPI.EXPECT().GenerateResultsPDF(gomock.Any(), 7).
		Return("https://cdn.example.com/results/test_7.pdf", nil)

	flow := NewFlow(mockAPI, testBaseURL, 7)
	if err := flow.Generate(context.Background()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if flow.PDFURL() != "https://cdn.example.com/results/test_7.pdf" {
		t.Errorf("PDFURL = %q, want absolute URL unchanged", flow.PDFURL())
	}
}
