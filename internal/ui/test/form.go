package test

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/audit"
	"github.com/omkar381/pcc-console/internal/format"
	"github.com/omkar381/pcc-console/internal/model"
	"github.com/omkar381/pcc-console/internal/ui"
	"github.com/omkar381/pcc-console/internal/validation"
)

// FormScreen はテスト作成画面を表す。
type FormScreen struct {
	form        *tview.Form
	app         *ui.App
	client      *api.Client
	auditLogger *audit.Logger
	busy        bool
	onCreated   func(test model.Test)
	onCancel    func()
}

// NewFormScreen は新しいFormScreenを生成する。
func NewFormScreen(app *ui.App, client *api.Client, auditLogger *audit.Logger) *FormScreen {
	form := tview.NewForm()

	form.SetBorder(true).
		SetTitle(" Create Test ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorBlue)

	screen := &FormScreen{
		form:        form,
		app:         app,
		client:      client,
		auditLogger: auditLogger,
	}

	form.AddInputField("Name", "", 30, nil, nil)
	form.AddDropDown("Subject", validation.Subjects, 0, nil)
	form.AddDropDown("Class", validation.ClassLevels, 0, nil)
	form.AddInputField("Date (YYYY-MM-DD)", format.Today(), 14, nil, nil)
	form.AddInputField("Max Marks", "100", 6, nil, nil)

	form.AddButton("Create", screen.handleCreate)
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

// SetOnCreated は作成成功時のコールバックを設定する。
// 作成直後にそのまま採点入力へ進めるよう、採番済みのテストを渡す。
func (s *FormScreen) SetOnCreated(handler func(test model.Test)) {
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

func (s *FormScreen) handleCreate() {
	if s.busy {
		return
	}

	_, subject := s.form.GetFormItemByLabel("Subject").(*tview.DropDown).GetCurrentOption()
	_, classLevel := s.form.GetFormItemByLabel("Class").(*tview.DropDown).GetCurrentOption()
	maxMarksText := s.form.GetFormItemByLabel("Max Marks").(*tview.InputField).GetText()

	maxMarks, err := strconv.Atoi(maxMarksText)
	if err != nil {
		s.app.GetStatusBar().ShowError("max_marks: Max marks must be a number")
		return
	}

	input := api.CreateTestInput{
		Name:       s.form.GetFormItemByLabel("Name").(*tview.InputField).GetText(),
		Subject:    subject,
		ClassLevel: classLevel,
		Date:       s.form.GetFormItemByLabel("Date (YYYY-MM-DD)").(*tview.InputField).GetText(),
		MaxMarks:   maxMarks,
	}

	if err := validation.ValidateTest(input); err != nil {
		s.app.GetStatusBar().ShowError(err.Error())
		return
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Creating test...")

	go func() {
		testID, err := s.client.CreateTest(context.Background(), input)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			s.auditLogger.LogCreate(audit.TargetTest, strconv.Itoa(testID))
			s.app.GetStatusBar().ShowSuccess("Test created: " + input.Name)
			if s.onCreated != nil {
				s.onCreated(model.Test{
					ID:         testID,
					Name:       input.Name,
					Subject:    input.Subject,
					ClassLevel: input.ClassLevel,
					Date:       input.Date,
					MaxMarks:   input.MaxMarks,
				})
			}
		})
	}()
}

func (s *FormScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
