// Package attendance は出欠の登録・閲覧画面を提供する。
package attendance

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

// MarkScreen は出欠登録画面（管理者用）を表す。
// 選択中クラスの生徒を一覧表示し、1日分の出欠をまとめて登録する。
type MarkScreen struct {
	flex        *tview.Flex
	dateForm    *tview.Form
	table       *tview.Table
	app         *ui.App
	client      *api.Client
	auditLogger *audit.Logger
	students    []model.Student
	present     map[int]bool // 生徒ID → 出席
	busy        bool
	onDone      func()
	onBack      func()
}

// NewMarkScreen は新しいMarkScreenを生成する。
func NewMarkScreen(app *ui.App, client *api.Client, auditLogger *audit.Logger) *MarkScreen {
	dateForm := tview.NewForm().
		AddInputField("Date (YYYY-MM-DD)", format.Today(), 14, nil, nil)
	dateForm.SetBorder(false)

	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(dateForm, 3, 0, false).
		AddItem(table, 0, 1, true)

	flex.SetBorder(true).
		SetTitle(" Mark Attendance ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorBlue)

	screen := &MarkScreen{
		flex:        flex,
		dateForm:    dateForm,
		table:       table,
		app:         app,
		client:      client,
		auditLogger: auditLogger,
		present:     make(map[int]bool),
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnDone は登録完了時のコールバックを設定する。
func (s *MarkScreen) SetOnDone(handler func()) {
	s.onDone = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *MarkScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetFlex は内部のtview.Flexを返す。
func (s *MarkScreen) GetFlex() *tview.Flex {
	return s.flex
}

// Load は選択中クラスの生徒を読み込む。全員出席が初期値。
func (s *MarkScreen) Load(ctx context.Context) error {
	students, err := s.client.ListClassStudents(ctx)
	if err != nil {
		return err
	}

	s.students = students
	s.present = make(map[int]bool, len(students))
	for _, st := range students {
		s.present[st.ID] = true
	}

	s.render()
	return nil
}

func (s *MarkScreen) date() string {
	return s.dateForm.GetFormItemByLabel("Date (YYYY-MM-DD)").(*tview.InputField).GetText()
}

func (s *MarkScreen) render() {
	s.table.Clear()

	headers := []string{"Admission#", "Name", "Status"}
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

		status := "Present"
		statusColor := ui.ColorPresent
		if !s.present[st.ID] {
			status = "Absent"
			statusColor = ui.ColorAbsent
		}
		s.table.SetCell(row, 2, tview.NewTableCell(status).
			SetTextColor(statusColor).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
	}

	s.table.SetTitle(" " + strconv.Itoa(len(s.students)) + " students | Space:Toggle | F10/s:Submit ")

	if len(s.students) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *MarkScreen) toggleSelected() {
	row, _ := s.table.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(s.students) {
		return
	}
	id := s.students[idx].ID
	s.present[id] = !s.present[id]
	s.render()
	s.table.Select(row, 0)
}

func (s *MarkScreen) handleSubmit() {
	if s.busy {
		return
	}

	date := s.date()
	if err := validation.ValidateAttendanceDate(date); err != nil {
		s.app.GetStatusBar().ShowError(err.Error())
		return
	}
	if len(s.students) == 0 {
		s.app.GetStatusBar().ShowWarning("No students to mark")
		return
	}

	entries := make([]api.AttendanceEntry, 0, len(s.students))
	absent := 0
	for _, st := range s.students {
		p := s.present[st.ID]
		if !p {
			absent++
		}
		entries = append(entries, api.AttendanceEntry{StudentID: st.ID, Present: p})
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Submitting attendance...")

	go func() {
		err := s.client.SubmitAttendance(context.Background(), date, entries)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			s.auditLogger.LogMark(audit.TargetAttendance, date,
				strconv.Itoa(len(entries))+" students, "+strconv.Itoa(absent)+" absent")
			s.app.GetStatusBar().ShowSuccess("Attendance saved for " + format.DisplayDate(date))
			if s.onDone != nil {
				s.onDone()
			}
		})
	}()
}

func (s *MarkScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case tcell.KeyEnter:
			s.toggleSelected()
			return nil
		case tcell.KeyF10:
			s.handleSubmit()
			return nil
		case tcell.KeyTab:
			// 日付フィールドへフォーカス移動
			s.app.SetFocus(s.dateForm)
			return nil
		}

		switch event.Rune() {
		case ' ':
			s.toggleSelected()
			return nil
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

	s.dateForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case tcell.KeyTab, tcell.KeyEnter:
			s.app.SetFocus(s.table)
			return nil
		}
		return event
	})
}
