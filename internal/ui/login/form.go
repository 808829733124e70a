// Package login はログイン画面を提供する。
package login

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/session"
	"github.com/omkar381/pcc-console/internal/ui"
	"github.com/omkar381/pcc-console/internal/validation"
)

// roleLabels はログイン種別ドロップダウンの表示順
var roleLabels = []string{"Admin", "Student"}

// Screen はログイン画面を表す。
type Screen struct {
	form       *tview.Form
	app        *ui.App
	client     *api.Client
	busy       bool
	onLoggedIn func(role session.Role, token string)
}

// NewScreen は新しいログイン画面を生成する。
func NewScreen(app *ui.App, client *api.Client) *Screen {
	form := tview.NewForm()

	form.SetBorder(true).
		SetTitle(" PCC Console - Login ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorBlue)

	screen := &Screen{
		form:   form,
		app:    app,
		client: client,
	}

	form.AddDropDown("Login as", roleLabels, 0, nil)
	form.AddInputField("Username", "", 30, nil, nil)
	form.AddPasswordField("Password", "", 30, '*', nil)
	form.AddButton("Login", screen.handleLogin)

	return screen
}

// SetOnLoggedIn はログイン成功時のコールバックを設定する。
func (s *Screen) SetOnLoggedIn(handler func(role session.Role, token string)) {
	s.onLoggedIn = handler
}

// GetForm は内部のtview.Formを返す。
func (s *Screen) GetForm() *tview.Form {
	return s.form
}

func (s *Screen) handleLogin() {
	// 応答待ちの間は二重送信を防ぐ
	if s.busy {
		return
	}

	roleIdx, _ := s.form.GetFormItemByLabel("Login as").(*tview.DropDown).GetCurrentOption()
	username := s.form.GetFormItemByLabel("Username").(*tview.InputField).GetText()
	password := s.form.GetFormItemByLabel("Password").(*tview.InputField).GetText()

	if err := validation.ValidateLogin(username, password); err != nil {
		s.app.GetStatusBar().ShowError(err.Error())
		return
	}

	role := session.RoleAdmin
	if roleIdx == 1 {
		role = session.RoleStudent
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Logging in...")

	go func() {
		var token string
		var err error
		if role == session.RoleAdmin {
			token, err = s.client.LoginAdmin(context.Background(), username, password)
		} else {
			token, err = s.client.LoginStudent(context.Background(), username, password)
		}

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(api.UserMessage(err))
				return
			}
			if s.onLoggedIn != nil {
				s.onLoggedIn(role, token)
			}
		})
	}()
}
