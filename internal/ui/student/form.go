package student

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/audit"
	"github.com/omkar381/pcc-console/internal/ui"
	"github.com/omkar381/pcc-console/internal/validation"
)

// FormScreen は生徒登録画面を表す。
// 登録に成功するとバックエンドが入学番号とログイン認証情報を発行する。
type FormScreen struct {
	form        *tview.Form
	app         *ui.App
	client      *api.Client
	auditLogger *audit.Logger
	busy        bool
	onCreated   func(creds *api.StudentCredentials)
	onCancel    func()
}

// NewFormScreen は新しいFormScreenを生成する。
func NewFormScreen(app *ui.App, client *api.Client, auditLogger *audit.Logger) *FormScreen {
	form := tview.NewForm()

	form.SetBorder(true).
		SetTitle(" Add Student ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorBlue)

	screen := &FormScreen{
		form:        form,
		app:         app,
		client:      client,
		auditLogger: auditLogger,
	}

	form.AddInputField("Name", "", 30, nil, nil)
	form.AddInputField("Email", "", 30, nil, nil)
	form.AddInputField("Phone", "", 15, nil, nil)
	form.AddInputField("School Name", "", 30, nil, nil)
	form.AddDropDown("Class", validation.ClassLevels, 0, nil)
	form.AddInputField("Admission Form (PDF path)", "", 40, nil, nil)

	form.AddButton("Save", screen.handleSave)
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

// SetOnCreated は登録成功時のコールバックを設定する。
// 発行された認証情報は一度しか表示されないため、呼び出し側で必ず提示する。
func (s *FormScreen) SetOnCreated(handler func(creds *api.StudentCredentials)) {
	s.onCreated = handler
}

// SetOnCancel はキャンセル時のコールバックを設定する。
func (s *FormScreen) SetOnCancel(handler func()) {
	s.onCancel = handler
}

// GetForm は内部のtview.Formを返す。
func (s *FormScreen) GetForm() *tview.Form {
	return s.form
}

func (s *FormScreen) handleSave() {
	if s.busy {
		return
	}

	_, classLevel := s.form.GetFormItemByLabel("Class").(*tview.DropDown).GetCurrentOption()
	input := api.CreateStudentInput{
		Name:              s.form.GetFormItemByLabel("Name").(*tview.InputField).GetText(),
		Email:             s.form.GetFormItemByLabel("Email").(*tview.InputField).GetText(),
		Phone:             s.form.GetFormItemByLabel("Phone").(*tview.InputField).GetText(),
		SchoolName:        s.form.GetFormItemByLabel("School Name").(*tview.InputField).GetText(),
		ClassLevel:        classLevel,
		AdmissionFormPath: s.form.GetFormItemByLabel("Admission Form (PDF path)").(*tview.InputField).GetText(),
	}

	if err := validation.ValidateStudent(input); err != nil {
		s.app.GetStatusBar().ShowError(err.Error())
		return
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Saving student...")

	go func() {
		creds, err := s.client.CreateStudent(context.Background(), input)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			s.auditLogger.LogCreate(audit.TargetStudent, creds.AdmissionNumber)
			s.app.GetStatusBar().ShowSuccess("Student created: " + creds.AdmissionNumber)
			if s.onCreated != nil {
				s.onCreated(creds)
			}
		})
	}()
}

func (s *FormScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
