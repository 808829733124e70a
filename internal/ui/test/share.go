package test

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/audit"
	"github.com/omkar381/pcc-console/internal/model"
	"github.com/omkar381/pcc-console/internal/results"
	"github.com/omkar381/pcc-console/internal/ui"
)

// ShareScreen は結果PDFの生成とWhatsApp共有画面を表す。
// 生成・共有とも自動では再試行せず、ユーザーのキー操作でのみ再実行する。
type ShareScreen struct {
	view        *tview.TextView
	app         *ui.App
	auditLogger *audit.Logger
	test        model.Test
	flow        *results.Flow
	busy        bool
	onBack      func()
}

// NewShareScreen は新しいShareScreenを生成する。
func NewShareScreen(app *ui.App, client *api.Client, auditLogger *audit.Logger, test model.Test) *ShareScreen {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	view.SetBorder(true).
		SetTitle(" Share Results - " + test.Name + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorBlue)

	screen := &ShareScreen{
		view:        view,
		app:         app,
		auditLogger: auditLogger,
		test:        test,
		flow:        results.NewFlow(client, client.BaseURL(), test.ID),
	}

	screen.setupKeyBindings()
	screen.render()
	return screen
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ShareScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetView は内部のtview.TextViewを返す。
func (s *ShareScreen) GetView() *tview.TextView {
	return s.view
}

func (s *ShareScreen) render() {
	content := "\n " + ui.StyleBold(s.test.Name) + "  " + s.test.Subject + " / " + s.test.ClassLevel + "\n\n"

	switch s.flow.State() {
	case results.StateIdle:
		content += " PDF: not generated\n\n Press " + ui.StyleWarning("g") + " to generate the results PDF.\n"
	case results.StateGenerating:
		content += " PDF: " + ui.StyleInfo("generating...") + "\n"
	case results.StateReady:
		content += " PDF: " + ui.StyleSuccess("ready") + "\n URL: " + s.flow.PDFURL() + "\n\n"
		switch s.flow.ShareState() {
		case results.ShareIdle:
			content += " Press " + ui.StyleWarning("s") + " to prepare WhatsApp sharing.\n"
		case results.SharePreparing:
			content += " WhatsApp: " + ui.StyleInfo("preparing...") + "\n"
		case results.ShareReady:
			share := s.flow.Share()
			content += " WhatsApp: " + ui.StyleSuccess("ready") + "\n"
			if share.GroupLink != "" {
				content += " Group link: " + share.GroupLink + "\n"
			}
			if share.ShareLink != "" {
				content += " Share link: " + share.ShareLink + "\n"
			}
		case results.ShareFailed:
			content += " WhatsApp: " + ui.StyleError("failed") + "\n " + s.flow.Message() + "\n Press " + ui.StyleWarning("s") + " to retry.\n"
		}
	case results.StateFailed:
		content += " PDF: " + ui.StyleError("failed") + "\n " + s.flow.Message() + "\n\n Press " + ui.StyleWarning("g") + " to retry.\n"
	}

	content += "\n " + ui.StyleMuted("g:Generate PDF | s:Share via WhatsApp | q:Back") + "\n"
	s.view.SetText(content)
}

// showFlowError は失敗の詳細をエラーダイアログで表示する。
func (s *ShareScreen) showFlowError(title string) {
	dialog := ui.NewErrorDialog(title, s.flow.Message(), func() {
		s.app.RemovePage("share-error")
		s.app.SetFocus(s.view)
	})
	s.app.AddPage("share-error", dialog.GetModal(), true, true)
	s.app.SetFocus(dialog.GetModal())
}

func (s *ShareScreen) handleGenerate() {
	if s.busy || s.flow.State() == results.StateGenerating {
		return
	}

	s.busy = true
	go func() {
		err := s.flow.Generate(context.Background())

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.showFlowError("Generation Failed")
			} else {
				s.auditLogger.Log(audit.OpGenerate, audit.TargetResult, strconv.Itoa(s.test.ID), "results pdf generated")
				s.app.GetStatusBar().ShowSuccess("PDF generated")
			}
			s.render()
		})
	}()
	s.render()
}

func (s *ShareScreen) handleShare() {
	if s.busy {
		return
	}
	if !s.flow.CanShare() {
		s.app.GetStatusBar().ShowWarning("Generate the PDF first")
		return
	}

	s.busy = true
	go func() {
		err := s.flow.PrepareShare(context.Background())

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.showFlowError("Share Failed")
			} else {
				s.auditLogger.Log(audit.OpShare, audit.TargetResult, strconv.Itoa(s.test.ID), "whatsapp share prepared")
				s.app.GetStatusBar().ShowSuccess("WhatsApp links ready")
			}
			s.render()
		})
	}()
	s.render()
}

func (s *ShareScreen) setupKeyBindings() {
	s.view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == ui.RuneQuit {
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}
		switch event.Rune() {
		case ui.RuneGenerate:
			s.handleGenerate()
			return nil
		case ui.RuneShare:
			s.handleShare()
			return nil
		}
		return event
	})
}
