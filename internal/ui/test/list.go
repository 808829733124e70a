// Package test はテストの作成・採点・結果共有画面を提供する。
package test

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

// ListScreen はテスト一覧画面（管理者用）を表す。
type ListScreen struct {
	table      *tview.Table
	app        *ui.App
	client     *api.Client
	tests      []model.Test
	classOnly  bool // 選択中クラスのテストのみ表示
	filter     *ui.Filter
	pagination *ui.Pagination
	onCreate   func()
	onMarks    func(test model.Test)
	onShare    func(test model.Test)
	onBack     func()
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, client *api.Client) *ListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Tests ").
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

// SetOnCreate は新規作成時のコールバックを設定する。
func (s *ListScreen) SetOnCreate(handler func()) {
	s.onCreate = handler
}

// SetOnMarks は採点画面遷移のコールバックを設定する。
func (s *ListScreen) SetOnMarks(handler func(test model.Test)) {
	s.onMarks = handler
}

// SetOnShare は結果共有画面遷移のコールバックを設定する。
func (s *ListScreen) SetOnShare(handler func(test model.Test)) {
	s.onShare = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ListScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.table
}

// Load はテスト一覧を読み込む。
func (s *ListScreen) Load(ctx context.Context) error {
	var tests []model.Test
	var err error
	if s.classOnly {
		tests, err = s.client.ListClassTests(ctx)
	} else {
		tests, err = s.client.ListTests(ctx)
	}
	if err != nil {
		return err
	}

	// 新しい実施日順
	sort.Slice(tests, func(i, j int) bool {
		return tests[i].Date > tests[j].Date
	})
	s.tests = tests

	s.render()
	return nil
}

// Refresh はデータを再読み込みする。
func (s *ListScreen) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// ToggleClassOnly は全テスト表示と選択中クラスのみの表示を切り替える。
func (s *ListScreen) ToggleClassOnly() {
	s.classOnly = !s.classOnly
	s.pagination.FirstPage()
	go func() {
		s.app.QueueUpdateDraw(func() {
			if err := s.Load(context.Background()); err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

// GetSelectedTest は選択されているテストを返す。
func (s *ListScreen) GetSelectedTest() (model.Test, bool) {
	row, _ := s.table.GetSelection()
	filtered := s.getFilteredTests()
	pageItems := ui.GetPageItems(filtered, s.pagination)
	idx := row - 1
	if idx < 0 || idx >= len(pageItems) {
		return model.Test{}, false
	}
	return pageItems[idx], true
}

func (s *ListScreen) getFilteredTests() []model.Test {
	return ui.FilterItems(s.tests, s.filter, func(t model.Test) []string {
		return []string{t.Name, t.Subject, t.ClassLevel}
	})
}

func (s *ListScreen) render() {
	s.table.Clear()

	headers := []string{"Name", "Subject", "Class", "Date", "Max"}
	for col, header := range headers {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(ui.ColorHeader).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1))
	}

	filtered := s.getFilteredTests()
	pageItems := ui.GetPageItems(filtered, s.pagination)

	for i, t := range pageItems {
		row := i + 1

		s.table.SetCell(row, 0, tview.NewTableCell(format.Truncate(t.Name, 30)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(2))

		s.table.SetCell(row, 1, tview.NewTableCell(t.Subject).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 2, tview.NewTableCell(t.ClassLevel).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 3, tview.NewTableCell(format.DisplayDate(t.Date)).
			SetTextColor(ui.ColorTextMuted).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 4, tview.NewTableCell(strconv.Itoa(t.MaxMarks)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
	}

	title := " Tests "
	if s.classOnly {
		title += "[yellow](selected class)[-] "
	}
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
				s.filter.Clear()
				s.pagination.FirstPage()
				s.render()
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
		case tcell.KeyEnter:
			if t, ok := s.GetSelectedTest(); ok && s.onMarks != nil {
				s.onMarks(t)
			}
			return nil
		}

		switch event.Rune() {
		case ui.RuneCreate:
			if s.onCreate != nil {
				s.onCreate()
			}
			return nil
		case ui.RuneMarks:
			if t, ok := s.GetSelectedTest(); ok && s.onMarks != nil {
				s.onMarks(t)
			}
			return nil
		case ui.RuneShare, ui.RuneGenerate:
			if t, ok := s.GetSelectedTest(); ok && s.onShare != nil {
				s.onShare(t)
			}
			return nil
		case ui.RuneRefresh:
			s.refreshWithStatus()
			return nil
		case 'c':
			s.ToggleClassOnly()
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
				s.app.GetStatusBar().ShowSuccess("Refreshed")
			}
		})
	}()
}

func (s *ListScreen) showFilterDialog() {
	dialog := ui.NewInputDialog(
		"Filter Tests",
		"Name/Subject contains:",
		s.filter.Query,
		func(value string) {
			s.filter.SetQuery(value)
			s.pagination.FirstPage()
			s.render()
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
