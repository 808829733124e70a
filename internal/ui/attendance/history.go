package attendance

import (
	"context"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/format"
	"github.com/omkar381/pcc-console/internal/model"
	"github.com/omkar381/pcc-console/internal/ui"
)

// HistoryScreen は出欠履歴画面（生徒用）を表す。
type HistoryScreen struct {
	flex    *tview.Flex
	summary *tview.TextView
	table   *tview.Table
	app     *ui.App
	client  *api.Client
	records []model.AttendanceRecord
	onBack  func()
}

// NewHistoryScreen は新しいHistoryScreenを生成する。
func NewHistoryScreen(app *ui.App, client *api.Client) *HistoryScreen {
	summary := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(summary, 2, 0, false).
		AddItem(table, 0, 1, true)

	flex.SetBorder(true).
		SetTitle(" My Attendance ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorBlue)

	screen := &HistoryScreen{
		flex:    flex,
		summary: summary,
		table:   table,
		app:     app,
		client:  client,
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *HistoryScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetFlex は内部のtview.Flexを返す。
func (s *HistoryScreen) GetFlex() *tview.Flex {
	return s.flex
}

// Load は出欠履歴を読み込む。
func (s *HistoryScreen) Load(ctx context.Context) error {
	records, err := s.client.StudentAttendance(ctx)
	if err != nil {
		return err
	}

	// 新しい日付順
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	s.records = records

	s.render()
	return nil
}

// Refresh はデータを再読み込みする。
func (s *HistoryScreen) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *HistoryScreen) render() {
	sum := model.Summarize(s.records)
	s.summary.SetText(" Attended [green]" + format.Marks(float64(sum.Attended), sum.TotalClasses) +
		"[-] classes (" + format.Percent(sum.Percentage) + ")")

	s.table.Clear()

	headers := []string{"Date", "Status"}
	for col, header := range headers {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(ui.ColorHeader).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1))
	}

	for i, r := range s.records {
		row := i + 1

		s.table.SetCell(row, 0, tview.NewTableCell(format.DisplayDate(r.Date)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		status := "Present"
		statusColor := ui.ColorPresent
		if !r.Present {
			status = "Absent"
			statusColor = ui.ColorAbsent
		}
		s.table.SetCell(row, 1, tview.NewTableCell(status).
			SetTextColor(statusColor).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
	}

	if len(s.records) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *HistoryScreen) setupKeyBindings() {
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
