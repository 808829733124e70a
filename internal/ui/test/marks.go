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

// MarksScreen は採点入力画面を表す。
// 選択中クラスの生徒ごとに得点を入力し、一括で登録する。
type MarksScreen struct {
	table       *tview.Table
	app         *ui.App
	client      *api.Client
	auditLogger *audit.Logger
	test        model.Test
	students    []model.Student
	marks       map[int]float64 // 生徒ID → 入力済み得点
	busy        bool
	onDone      func()
	onBack      func()
}

// NewMarksScreen は新しいMarksScreenを生成する。
func NewMarksScreen(app *ui.App, client *api.Client, auditLogger *audit.Logger, test model.Test) *MarksScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Enter Marks - " + test.Name + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &MarksScreen{
		table:       table,
		app:         app,
		client:      client,
		auditLogger: auditLogger,
		test:        test,
		marks:       make(map[int]float64),
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnDone は登録完了時のコールバックを設定する。
func (s *MarksScreen) SetOnDone(handler func()) {
	s.onDone = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *MarksScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *MarksScreen) GetTable() *tview.Table {
	return s.table
}

// Load は選択中クラスの生徒を読み込む。
func (s *MarksScreen) Load(ctx context.Context) error {
	students, err := s.client.ListClassStudents(ctx)
	if err != nil {
		return err
	}
	s.students = students
	s.render()
	return nil
}

func (s *MarksScreen) render() {
	s.table.Clear()

	headers := []string{"Admission#", "Name", "Marks"}
	for col, header := range headers {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(ui.ColorHeader).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1))
	}

	for i, st := range s.students {
		row := i + 1

		s.table.SetCell(row, 0, tview.NewTableCell(st.AdmissionNumber).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 1, tview.NewTableCell(format.Truncate(st.Name, 24)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		marksText := "-"
		marksColor := ui.ColorTextMuted
		if m, ok := s.marks[st.ID]; ok {
			marksText = format.Marks(m, s.test.MaxMarks)
			marksColor = ui.ColorText
		}
		s.table.SetCell(row, 2, tview.NewTableCell(marksText).
			SetTextColor(marksColor).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
	}

	s.table.SetTitle(" Enter Marks - " + s.test.Name +
		" [gray](" + strconv.Itoa(len(s.marks)) + "/" + strconv.Itoa(len(s.students)) + " entered)[-] " +
		"| Enter:Edit | F10/s:Submit ")

	if len(s.students) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *MarksScreen) editSelected() {
	row, _ := s.table.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(s.students) {
		return
	}
	st := s.students[idx]

	current := ""
	if m, ok := s.marks[st.ID]; ok {
		current = strconv.FormatFloat(m, 'f', -1, 64)
	}

	dialog := ui.NewInputDialog(
		"Marks for "+st.Name,
		"Marks (max "+strconv.Itoa(s.test.MaxMarks)+"):",
		current,
		func(value string) {
			s.app.HidePage("marks-dialog")
			s.app.RemovePage("marks-dialog")
			s.app.SetFocus(s.table)

			m, err := strconv.ParseFloat(value, 64)
			if err != nil {
				s.app.GetStatusBar().ShowError("marks: Marks must be a number")
				return
			}
			if err := validation.ValidateMarks(m, s.test.MaxMarks); err != nil {
				s.app.GetStatusBar().ShowError(err.Error())
				return
			}
			s.marks[st.ID] = m
			s.render()
			s.table.Select(row, 0)
		},
		func() {
			s.app.HidePage("marks-dialog")
			s.app.RemovePage("marks-dialog")
			s.app.SetFocus(s.table)
		},
	)

	s.app.AddPage("marks-dialog", ui.Centered(dialog.GetForm(), 50, 7), true, true)
	s.app.SetFocus(dialog.GetForm())
}

func (s *MarksScreen) handleSubmit() {
	if s.busy {
		return
	}
	if len(s.marks) == 0 {
		s.app.GetStatusBar().ShowWarning("No marks entered yet")
		return
	}

	entries := make([]api.ResultEntry, 0, len(s.marks))
	for _, st := range s.students {
		if m, ok := s.marks[st.ID]; ok {
			entries = append(entries, api.ResultEntry{StudentID: st.ID, MarksObtained: m})
		}
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Submitting results...")

	go func() {
		err := s.client.SubmitResults(context.Background(), s.test.ID, entries)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			s.auditLogger.LogMark(audit.TargetResult, strconv.Itoa(s.test.ID),
				strconv.Itoa(len(entries))+" results")
			s.app.GetStatusBar().ShowSuccess("Results saved: " + s.test.Name)
			if s.onDone != nil {
				s.onDone()
			}
		})
	}()
}

func (s *MarksScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case tcell.KeyEnter:
			s.editSelected()
			return nil
		case tcell.KeyF10:
			s.handleSubmit()
			return nil
		}

		switch event.Rune() {
		case ui.RuneShare: // 's'
			s.handleSubmit()
			return nil
		case ui.RuneQuit:
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}

		return event
	})
}
