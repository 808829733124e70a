package test

import (
	"context"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/format"
	"github.com/omkar381/pcc-console/internal/model"
	"github.com/omkar381/pcc-console/internal/ui"
)

// ResultsScreen は自分のテスト結果一覧画面（生徒用）を表す。
type ResultsScreen struct {
	table   *tview.Table
	app     *ui.App
	client  *api.Client
	results []model.StudentTestResult
	onBack  func()
}

// NewResultsScreen は新しいResultsScreenを生成する。
func NewResultsScreen(app *ui.App, client *api.Client) *ResultsScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" My Test Results ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &ResultsScreen{
		table:  table,
		app:    app,
		client: client,
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ResultsScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *ResultsScreen) GetTable() *tview.Table {
	return s.table
}

// Load はテスト結果を読み込む。
func (s *ResultsScreen) Load(ctx context.Context) error {
	results, err := s.client.StudentTests(ctx)
	if err != nil {
		return err
	}

	// 新しい実施日順
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date > results[j].Date
	})
	s.results = results

	s.render()
	return nil
}

// Refresh はデータを再読み込みする。
func (s *ResultsScreen) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *ResultsScreen) render() {
	s.table.Clear()

	headers := []string{"Test", "Subject", "Date", "Marks", "%"}
	for col, header := range headers {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(ui.ColorHeader).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1))
	}

	for i, r := range s.results {
		row := i + 1

		s.table.SetCell(row, 0, tview.NewTableCell(format.Truncate(r.TestName, 30)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(2))

		s.table.SetCell(row, 1, tview.NewTableCell(r.Subject).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 2, tview.NewTableCell(format.DisplayDate(r.Date)).
			SetTextColor(ui.ColorTextMuted).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 3, tview.NewTableCell(format.Marks(r.MarksObtained, r.MaxMarks)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 4, tview.NewTableCell(fmt.Sprintf("%.1f", r.Percentage())).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
	}

	if len(s.results) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *ResultsScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == ui.RuneQuit {
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}
		if event.Key() == ui.KeyRefresh || event.Rune() == ui.RuneRefresh {
			go func() {
				s.app.QueueUpdateDraw(func() {
					if err := s.Refresh(context.Background()); err != nil {
						s.app.GetStatusBar().ShowError(api.UserMessage(err))
					} else {
						s.app.GetStatusBar().ShowSuccess("Refreshed")
					}
				})
			}()
			return nil
		}
		return event
	})
}
