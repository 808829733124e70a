// Package student は生徒管理画面を提供する。
package student

import (
	"context"
	"sort"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/format"
	"github.com/omkar381/pcc-console/internal/model"
	"github.com/omkar381/pcc-console/internal/ui"
)

// ListScreen は生徒一覧画面を表す。
type ListScreen struct {
	table        *tview.Table
	app          *ui.App
	client       *api.Client
	students     []model.Student
	filter       *ui.Filter
	pagination   *ui.Pagination
	onCreate     func()
	onUploadForm func(student model.Student)
	onBack       func()
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, client *api.Client) *ListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Students ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &ListScreen{
		table:      table,
		app:        app,
		client:     client,
		filter:     ui.NewFilter(),
		pagination: ui.NewPagination(ui.DefaultPageSize),
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnCreate は新規登録時のコールバックを設定する。
func (s *ListScreen) SetOnCreate(handler func()) {
	s.onCreate = handler
}

// SetOnUploadForm は入学申込書アップロード時のコールバックを設定する。
func (s *ListScreen) SetOnUploadForm(handler func(student model.Student)) {
	s.onUploadForm = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ListScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.table
}

// Load はデータを読み込む。
func (s *ListScreen) Load(ctx context.Context) error {
	students, err := s.client.ListStudents(ctx)
	if err != nil {
		return err
	}

	sort.Slice(students, func(i, j int) bool {
		return students[i].AdmissionNumber < students[j].AdmissionNumber
	})
	s.students = students

	s.render()
	return nil
}

// Refresh はデータを再読み込みする。
func (s *ListScreen) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// SetFilter はフィルタを設定する。
func (s *ListScreen) SetFilter(query string) {
	s.filter.SetQuery(query)
	s.pagination.FirstPage()
	s.render()
}

// ClearFilter はフィルタをクリアする。
func (s *ListScreen) ClearFilter() {
	s.filter.Clear()
	s.pagination.FirstPage()
	s.render()
}

// GetSelectedStudent は選択されている生徒を返す。
func (s *ListScreen) GetSelectedStudent() (model.Student, bool) {
	row, _ := s.table.GetSelection()
	filtered := s.getFilteredStudents()
	pageItems := ui.GetPageItems(filtered, s.pagination)
	idx := row - 1
	if idx < 0 || idx >= len(pageItems) {
		return model.Student{}, false
	}
	return pageItems[idx], true
}

func (s *ListScreen) getFilteredStudents() []model.Student {
	return ui.FilterItems(s.students, s.filter, func(st model.Student) []string {
		return []string{st.Name, st.AdmissionNumber, st.ClassLevel, st.SchoolName}
	})
}

func (s *ListScreen) render() {
	s.table.Clear()

	headers := []string{"", "Admission#", "Name", "Class", "Phone", "School", "Admitted"}
	for col, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(ui.ColorHeader).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1)
		if col == 0 {
			cell.SetExpansion(0)
		}
		s.table.SetCell(0, col, cell)
	}

	filtered := s.getFilteredStudents()
	pageItems := ui.GetPageItems(filtered, s.pagination)

	for i, st := range pageItems {
		row := i + 1

		// 入学申込書未登録インジケータ
		indicator := " "
		indicatorColor := ui.ColorText
		if !st.HasAdmissionForm {
			indicator = string(ui.IndicatorMissingForm)
			indicatorColor = ui.ColorMissingForm
		}
		s.table.SetCell(row, 0, tview.NewTableCell(indicator).
			SetTextColor(indicatorColor).
			SetAlign(tview.AlignCenter))

		s.table.SetCell(row, 1, tview.NewTableCell(st.AdmissionNumber).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 2, tview.NewTableCell(format.Truncate(st.Name, 24)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 3, tview.NewTableCell(st.ClassLevel).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 4, tview.NewTableCell(st.Phone).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 5, tview.NewTableCell(format.Truncate(st.SchoolName, 20)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 6, tview.NewTableCell(format.DisplayDate(st.AdmissionDate)).
			SetTextColor(ui.ColorTextMuted).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
	}

	title := " Students "
	if s.filter.Active {
		title += "[yellow](" + s.filter.FormatFilterStatus() + ")[-] "
	}
	title += "[gray]" + s.pagination.FormatPageInfo() + "[-] "
	s.table.SetTitle(title)

	if len(pageItems) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *ListScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.filter.Active {
				s.ClearFilter()
				return nil
			}
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case ui.KeyCreate:
			if s.onCreate != nil {
				s.onCreate()
			}
			return nil
		case ui.KeyRefresh:
			s.refreshWithStatus()
			return nil
		case ui.KeyPageUp:
			if s.pagination.PrevPage() {
				s.render()
			}
			return nil
		case ui.KeyPageDown:
			if s.pagination.NextPage() {
				s.render()
			}
			return nil
		}

		switch event.Rune() {
		case ui.RuneCreate:
			if s.onCreate != nil {
				s.onCreate()
			}
			return nil
		case ui.RuneUpload:
			if st, ok := s.GetSelectedStudent(); ok && s.onUploadForm != nil {
				s.onUploadForm(st)
			}
			return nil
		case ui.RuneRefresh:
			s.refreshWithStatus()
			return nil
		case ui.RuneFilter:
			s.showFilterDialog()
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

func (s *ListScreen) refreshWithStatus() {
	go func() {
		s.app.QueueUpdateDraw(func() {
			if err := s.Refresh(context.Background()); err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
			} else {
				s.app.GetStatusBar().ShowSuccess("Refreshed (" + strconv.Itoa(len(s.students)) + " students)")
			}
		})
	}()
}

func (s *ListScreen) showFilterDialog() {
	dialog := ui.NewInputDialog(
		"Filter Students",
		"Name/Admission# contains:",
		s.filter.Query,
		func(value string) {
			s.SetFilter(value)
			s.app.HidePage("filter-dialog")
			s.app.RemovePage("filter-dialog")
			s.app.SetFocus(s.table)
		},
		func() {
			s.app.HidePage("filter-dialog")
			s.app.RemovePage("filter-dialog")
			s.app.SetFocus(s.table)
		},
	)

	s.app.AddPage("filter-dialog", ui.Centered(dialog.GetForm(), 50, 7), true, true)
	s.app.SetFocus(dialog.GetForm())
}
