package note

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/audit"
	"github.com/omkar381/pcc-console/internal/ui"
	"github.com/omkar381/pcc-console/internal/validation"
)

// UploadScreen はノートアップロード画面（管理者用）を表す。
type UploadScreen struct {
	form        *tview.Form
	app         *ui.App
	client      *api.Client
	auditLogger *audit.Logger
	busy        bool
	onUploaded  func()
	onCancel    func()
}

// NewUploadScreen は新しいUploadScreenを生成する。
func NewUploadScreen(app *ui.App, client *api.Client, auditLogger *audit.Logger) *UploadScreen {
	form := tview.NewForm()

	form.SetBorder(true).
		SetTitle(" Upload Note ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorBlue)

	screen := &UploadScreen{
		form:        form,
		app:         app,
		client:      client,
		auditLogger: auditLogger,
	}

	form.AddInputField("Title", "", 40, nil, nil)
	form.AddDropDown("Subject", validation.Subjects, 0, nil)
	form.AddInputField("File (PDF path)", "", 40, nil, nil)

	form.AddButton("Upload", screen.handleUpload)
	form.AddButton("Cancel", screen.handleCancel)

	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			screen.handleCancel()
			return nil
		}
		return event
	})

	return screen
}

// SetOnUploaded はアップロード成功時のコールバックを設定する。
func (s *UploadScreen) SetOnUploaded(handler func()) {
	s.onUploaded = handler
}

// SetOnCancel はキャンセル時のコールバックを設定する。
func (s *UploadScreen) SetOnCancel(handler func()) {
	s.onCancel = handler
}

// GetForm は内部のtview.Formを返す。
func (s *UploadScreen) GetForm() *tview.Form {
	return s.form
}

func (s *UploadScreen) handleUpload() {
	if s.busy {
		return
	}

	_, subject := s.form.GetFormItemByLabel("Subject").(*tview.DropDown).GetCurrentOption()
	input := api.NoteUploadInput{
		Title:    s.form.GetFormItemByLabel("Title").(*tview.InputField).GetText(),
		Subject:  subject,
		FilePath: s.form.GetFormItemByLabel("File (PDF path)").(*tview.InputField).GetText(),
	}

	if err := validation.ValidateNote(input); err != nil {
		s.app.GetStatusBar().ShowError(err.Error())
		return
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Uploading note...")

	go func() {
		err := s.client.UploadNote(context.Background(), input)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			s.auditLogger.LogUpload(audit.TargetNote, input.Title, input.FilePath)
			s.app.GetStatusBar().ShowSuccess("Note uploaded: " + input.Title)
			if s.onUploaded != nil {
				s.onUploaded()
			}
		})
	}()
}

func (s *UploadScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
