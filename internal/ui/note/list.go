// Package note は授業ノート（配布資料）の管理・閲覧画面を提供する。
package note

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/format"
	"github.com/omkar381/pcc-console/internal/model"
	"github.com/omkar381/pcc-console/internal/ui"
	"github.com/omkar381/pcc-console/internal/validation"
)

// ListScreen はノート一覧画面を表す。
// 管理者と生徒で共用し、削除・アップロードは管理者のみ有効。
type ListScreen struct {
	table       *tview.Table
	app         *ui.App
	client      *api.Client
	downloadDir string
	adminMode   bool
	notes       []model.Note
	subjectIdx  int // 0 = All, 1以降はvalidation.Subjectsのインデックス+1
	onUpload    func()
	onDelete    func(note model.Note)
	onBack      func()
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, client *api.Client, downloadDir string, adminMode bool) *ListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Notes ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &ListScreen{
		table:       table,
		app:         app,
		client:      client,
		downloadDir: downloadDir,
		adminMode:   adminMode,
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnUpload はアップロード画面遷移のコールバックを設定する。
func (s *ListScreen) SetOnUpload(handler func()) {
	s.onUpload = handler
}

// SetOnDelete は削除時のコールバックを設定する。
func (s *ListScreen) SetOnDelete(handler func(note model.Note)) {
	s.onDelete = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ListScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.table
}

// subject は現在の科目フィルタを返す。空文字列は全科目。
func (s *ListScreen) subject() string {
	if s.subjectIdx == 0 {
		return ""
	}
	return validation.Subjects[s.subjectIdx-1]
}

// Load はノート一覧を読み込む。科目フィルタはサーバー側で適用される。
func (s *ListScreen) Load(ctx context.Context) error {
	notes, err := s.client.ListNotes(ctx, s.subject())
	if err != nil {
		return err
	}
	s.notes = notes
	s.render()
	return nil
}

// Refresh はデータを再読み込みする。
func (s *ListScreen) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// CycleSubject は科目フィルタを次に進めて再読み込みする。
func (s *ListScreen) CycleSubject() {
	s.subjectIdx = (s.subjectIdx + 1) % (len(validation.Subjects) + 1)
	go func() {
		s.app.QueueUpdateDraw(func() {
			if err := s.Load(context.Background()); err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

// GetSelectedNote は選択されているノートを返す。
func (s *ListScreen) GetSelectedNote() (model.Note, bool) {
	row, _ := s.table.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(s.notes) {
		return model.Note{}, false
	}
	return s.notes[idx], true
}

func (s *ListScreen) render() {
	s.table.Clear()

	headers := []string{"Title", "Subject", "Uploaded"}
	for col, header := range headers {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(ui.ColorHeader).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1))
	}

	for i, n := range s.notes {
		row := i + 1

		s.table.SetCell(row, 0, tview.NewTableCell(format.Truncate(n.Title, 40)).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(2))

		s.table.SetCell(row, 1, tview.NewTableCell(n.Subject).
			SetTextColor(ui.ColorText).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))

		s.table.SetCell(row, 2, tview.NewTableCell(format.DisplayDate(n.UploadDate)).
			SetTextColor(ui.ColorTextMuted).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
	}

	title := " Notes "
	if subj := s.subject(); subj != "" {
		title += "[yellow](" + subj + ")[-] "
	}
	title += "[gray]" + strconv.Itoa(len(s.notes)) + " items[-] "
	s.table.SetTitle(title)

	if len(s.notes) > 0 {
		s.table.Select(1, 0)
	}
}

// downloadSelected は選択中のノートをダウンロードディレクトリに保存する。
func (s *ListScreen) downloadSelected() {
	n, ok := s.GetSelectedNote()
	if !ok {
		return
	}

	dest := filepath.Join(s.downloadDir, safeFileName(n.Title)+".pdf")
	s.app.GetStatusBar().ShowInfo("Downloading " + n.Title + "...")

	go func() {
		err := s.client.DownloadNote(context.Background(), n.ID, dest)
		var size int64
		if err == nil {
			if info, statErr := os.Stat(dest); statErr == nil {
				size = info.Size()
			}
		}

		s.app.QueueUpdateDraw(func() {
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			s.app.GetStatusBar().ShowSuccess("Saved " + dest + " (" + format.Bytes(size) + ")")
		})
	}()
}

// showShareLink は選択中ノートの直接ダウンロードURLを表示する。
// アプリ外（ブラウザ、メッセージ等）からも開けるトークン付きURL。
func (s *ListScreen) showShareLink() {
	n, ok := s.GetSelectedNote()
	if !ok {
		return
	}

	dialog := ui.NewInfoDialog(
		"Download Link - "+n.Title,
		s.client.NoteDownloadURL(n.ID),
		func() {
			s.app.HidePage("note-link")
			s.app.RemovePage("note-link")
			s.app.SetFocus(s.table)
		},
	)

	s.app.AddPage("note-link", dialog.GetModal(), true, true)
}

// safeFileName はタイトルをファイル名に使える形に変換する。
func safeFileName(title string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	name := replacer.Replace(strings.TrimSpace(title))
	if name == "" {
		name = "note"
	}
	return name
}

func (s *ListScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case ui.KeyRefresh:
			s.refreshWithStatus()
			return nil
		case ui.KeyFilter:
			s.CycleSubject()
			return nil
		case tcell.KeyEnter:
			s.downloadSelected()
			return nil
		}

		switch event.Rune() {
		case ui.RuneDownload:
			s.downloadSelected()
			return nil
		case ui.RuneUpload:
			if s.adminMode && s.onUpload != nil {
				s.onUpload()
			}
			return nil
		case ui.RuneCreate:
			if s.adminMode && s.onUpload != nil {
				s.onUpload()
			}
			return nil
		case ui.RuneDelete:
			if !s.adminMode {
				return nil
			}
			if n, ok := s.GetSelectedNote(); ok && s.onDelete != nil {
				s.onDelete(n)
			}
			return nil
		case ui.RuneRefresh:
			s.refreshWithStatus()
			return nil
		case ui.RuneFilter:
			s.CycleSubject()
			return nil
		case ui.RuneShare:
			s.showShareLink()
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
