package results

import (
	"context"
	"errors"
	"strings"

	"github.com/omkar381/pcc-console/internal/api"
)

// State はPDF生成の状態を表す。
type State int

const (
	// StateIdle は未生成の初期状態
	StateIdle State = iota
	// StateGenerating は生成要求の応答待ち
	StateGenerating
	// StateReady は生成済みでURLが利用可能
	StateReady
	// StateFailed は生成失敗
	StateFailed
)

// ShareState はWhatsApp共有の状態を表す。
type ShareState int

const (
	// ShareIdle は共有未要求の初期状態
	ShareIdle ShareState = iota
	// SharePreparing は共有リンク取得の応答待ち
	SharePreparing
	// ShareReady は共有リンクが利用可能
	ShareReady
	// ShareFailed は共有リンク取得失敗
	ShareFailed
)

// ErrPDFNotReady はPDF未生成の状態で共有を要求した場合のエラー
var ErrPDFNotReady = errors.New("pdf is not generated yet")

// maxRetryHint は再試行の促しメッセージを表示する上限回数
const maxRetryHint = 3

// RetryHintMessage は再試行を促す追記メッセージ
const RetryHintMessage = "Retrying may help."

// Flow は1つのテストに対するPDF生成→共有のフローを管理する。
// 再試行は常にユーザー操作で行われ、Flowが自動で再試行することはない。
// 失敗回数は表示メッセージにのみ影響し、操作を妨げない。
// 並行アクセスは想定しない。UIイベントループからのみ利用する。
type Flow struct {
	api     PDFAPI
	baseURL string
	testID  int

	state      State
	shareState ShareState
	attempts   int
	pdfURL     string
	share      *api.WhatsAppShare
	message    string
}

// NewFlow は新しいFlowを生成する。
func NewFlow(pdfAPI PDFAPI, baseURL string, testID int) *Flow {
	return &Flow{
		api:     pdfAPI,
		baseURL: strings.TrimRight(baseURL, "/"),
		testID:  testID,
	}
}

// State は現在のPDF生成状態を返す。
func (f *Flow) State() State {
	return f.state
}

// ShareState は現在の共有状態を返す。
func (f *Flow) ShareState() ShareState {
	return f.shareState
}

// Attempts は最後の成功以降のPDF生成試行回数を返す。
func (f *Flow) Attempts() int {
	return f.attempts
}

// PDFURL は生成済みPDFの絶対URLを返す。未生成の場合は空文字列。
func (f *Flow) PDFURL() string {
	return f.pdfURL
}

// Share は取得済みのWhatsApp共有リンクを返す。未取得の場合はnil。
func (f *Flow) Share() *api.WhatsAppShare {
	return f.share
}

// Message は直近の失敗の表示用メッセージを返す。
func (f *Flow) Message() string {
	return f.message
}

// CanShare は共有を開始できる状態かどうかを返す。
// PDF生成が完了していない限り共有は開始できない。
func (f *Flow) CanShare() bool {
	return f.state == StateReady
}

// Generate はPDF生成を要求する。
// 成功すると試行回数をリセットし、相対パスをベースURLと結合した
// 絶対URLを保持する。失敗しても状態はFailedに留まり、
// 再度Generateを呼べばいつでも再試行できる。
func (f *Flow) Generate(ctx context.Context) error {
	f.state = StateGenerating
	f.attempts++

	rel, err := f.api.GenerateResultsPDF(ctx, f.testID)
	if err != nil {
		f.state = StateFailed
		f.message = f.failureMessage(err)
		return err
	}

	f.state = StateReady
	f.attempts = 0
	f.message = ""
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		f.pdfURL = rel
	} else {
		f.pdfURL = f.baseURL + "/" + strings.TrimLeft(rel, "/")
	}
	return nil
}

// PrepareShare はWhatsApp共有リンクの取得を要求する。
// PDF未生成の場合はErrPDFNotReadyを返し、APIを呼ばない。
func (f *Flow) PrepareShare(ctx context.Context) error {
	if !f.CanShare() {
		return ErrPDFNotReady
	}
	f.shareState = SharePreparing

	share, err := f.api.ShareResultsWhatsApp(ctx, f.testID)
	if err != nil {
		f.shareState = ShareFailed
		f.message = api.UserMessage(err)
		return err
	}

	f.shareState = ShareReady
	f.share = share
	f.message = ""
	return nil
}

// failureMessage は失敗の表示用メッセージを組み立てる。
// サーバーエラーかつ試行回数が上限未満の場合のみ再試行を促す。
func (f *Flow) failureMessage(err error) string {
	msg := api.UserMessage(err)
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.IsServerError() && f.attempts < maxRetryHint {
		msg += " " + RetryHintMessage
	}
	return msg
}
