// Package classsel は操作対象クラスの選択画面を提供する。
package classsel

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/audit"
	"github.com/omkar381/pcc-console/internal/ui"
	"github.com/omkar381/pcc-console/internal/validation"
)

// Screen はクラス選択画面を表す。
// 出欠登録と採点は選択中クラスの生徒を対象に行われる。
type Screen struct {
	list        *tview.List
	app         *ui.App
	client      *api.Client
	auditLogger *audit.Logger
	current     string
	busy        bool
	onSelected  func(classLevel string)
	onBack      func()
}

// NewScreen は新しいクラス選択画面を生成する。
func NewScreen(app *ui.App, client *api.Client, auditLogger *audit.Logger) *Screen {
	list := tview.NewList().
		ShowSecondaryText(false)

	list.SetTitle(" Select Class ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &Screen{
		list:        list,
		app:         app,
		client:      client,
		auditLogger: auditLogger,
	}

	for i, classLevel := range validation.ClassLevels {
		cl := classLevel
		list.AddItem(cl, "", rune('1'+i), func() {
			screen.handleSelect(cl)
		})
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == ui.RuneQuit {
			if screen.onBack != nil {
				screen.onBack()
			}
			return nil
		}
		return event
	})

	return screen
}

// SetOnSelected はクラス切替成功時のコールバックを設定する。
func (s *Screen) SetOnSelected(handler func(classLevel string)) {
	s.onSelected = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *Screen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetList は内部のtview.Listを返す。
func (s *Screen) GetList() *tview.List {
	return s.list
}

// Current は読み込み済みの選択中クラスを返す。未選択時は空文字列。
func (s *Screen) Current() string {
	return s.current
}

// Load は選択中クラスを読み込み、カーソルを合わせる。
func (s *Screen) Load(ctx context.Context) error {
	current, err := s.client.CurrentClass(ctx)
	if err != nil {
		return err
	}
	s.current = current

	title := " Select Class "
	if current != "" {
		title = " Select Class [gray](current: " + current + ")[-] "
		for i, classLevel := range validation.ClassLevels {
			if classLevel == current {
				s.list.SetCurrentItem(i)
				break
			}
		}
	}
	s.list.SetTitle(title)
	return nil
}

func (s *Screen) handleSelect(classLevel string) {
	if s.busy {
		return
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Switching class...")

	go func() {
		err := s.client.SelectClass(context.Background(), classLevel)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			s.current = classLevel
			s.auditLogger.Log(audit.OpSelect, audit.TargetClass, classLevel, "class selected")
			s.app.GetStatusBar().ShowSuccess("Class selected: " + classLevel)
			if s.onSelected != nil {
				s.onSelected(classLevel)
			}
		})
	}()
}
