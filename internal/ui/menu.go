package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuItem はメニュー項目を表す。
type MenuItem struct {
	Label       string
	Description string
	Key         rune
	Action      func()
}

// Menu は選択式メニュー画面を表示する。
// 管理者コンソール・生徒コンソールの両方のトップ画面に使う。
type Menu struct {
	list   *tview.List
	items  []MenuItem
	onQuit func()
}

// NewMenu は新しいMenuを生成する。
func NewMenu(title string, items []MenuItem) *Menu {
	list := tview.NewList().
		ShowSecondaryText(true)

	menu := &Menu{
		list:  list,
		items: items,
	}

	for i, item := range items {
		idx := i // クロージャ用にコピー
		list.AddItem(item.Label, item.Description, item.Key, func() {
			if items[idx].Action != nil {
				items[idx].Action()
			}
		})
	}

	list.SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == RuneQuit {
			if menu.onQuit != nil {
				menu.onQuit()
			}
			return nil
		}
		return event
	})

	return menu
}

// SetOnQuit はメニューから抜ける際のコールバックを設定する。
func (m *Menu) SetOnQuit(handler func()) {
	m.onQuit = handler
}

// GetList は内部のtview.Listを返す。
func (m *Menu) GetList() *tview.List {
	return m.list
}
