// PCC Console - コーチング教室管理TUIクライアント
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/omkar381/pcc-console/internal/api"
	"github.com/omkar381/pcc-console/internal/audit"
	"github.com/omkar381/pcc-console/internal/config"
	"github.com/omkar381/pcc-console/internal/model"
	"github.com/omkar381/pcc-console/internal/session"
	"github.com/omkar381/pcc-console/internal/ui"
	"github.com/omkar381/pcc-console/internal/ui/attendance"
	"github.com/omkar381/pcc-console/internal/ui/classsel"
	"github.com/omkar381/pcc-console/internal/ui/login"
	"github.com/omkar381/pcc-console/internal/ui/note"
	"github.com/omkar381/pcc-console/internal/ui/student"
	"github.com/omkar381/pcc-console/internal/ui/test"
)

// Application はアプリケーション全体を管理する。
type Application struct {
	app         *ui.App
	cfg         *config.Config
	client      *api.Client
	controller  *session.Controller
	auditLogger *audit.Logger
	nav         *ui.Navigator

	// 画面遷移で引き回す状態
	activeTest   model.Test
	currentClass string
}

func main() {
	// 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// ロガー初期化（JSON形式、INFO以上）
	// TUIが端末を占有するため、ログはセッションファイルと同じディレクトリに書く。
	logWriter := openLogFile(cfg.SessionPath)
	slog.SetDefault(slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("app", "pcc-console"))

	// セッション復元
	sessions := session.NewStore(cfg.SessionPath)
	controller := session.NewController(sessions)

	// 監査ログ初期化
	auditLogger := audit.NewLoggerWithWriter(logWriter, string(controller.Role()))

	// アプリケーション作成
	application := &Application{
		app:         ui.NewApp(),
		cfg:         cfg,
		client:      api.NewClient(cfg, sessions),
		controller:  controller,
		auditLogger: auditLogger,
	}

	application.nav = ui.NewNavigator(controller)
	application.registerRoutes()

	// グローバルキーバインド設定
	application.setupGlobalKeyBindings()

	application.app.GetStatusBar().SetApp(application.app.GetApplication())
	application.refreshStatusDefault()

	// セッション状態に応じた着地画面
	application.nav.NavigateLanding()
	if application.controller.Role() == session.RoleAdmin {
		application.loadCurrentClass()
	}

	// アプリケーション実行
	if err := application.app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// openLogFile はログファイルを開く。開けない場合はログを捨てる。
func openLogFile(sessionPath string) io.Writer {
	dir := filepath.Dir(sessionPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "console.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard
	}
	return f
}

func (a *Application) registerRoutes() {
	a.nav.Register(ui.Route{Name: ui.RouteLogin, Public: true, Show: a.showLogin})

	a.nav.Register(ui.Route{Name: ui.RouteAdminMenu, RequiredRole: session.RoleAdmin, Show: a.showAdminMenu})
	a.nav.Register(ui.Route{Name: ui.RouteStudentList, RequiredRole: session.RoleAdmin, Show: a.showStudentList})
	a.nav.Register(ui.Route{Name: ui.RouteStudentForm, RequiredRole: session.RoleAdmin, Show: a.showStudentForm})
	a.nav.Register(ui.Route{Name: ui.RouteAttendanceMark, RequiredRole: session.RoleAdmin, Show: a.showAttendanceMark})
	a.nav.Register(ui.Route{Name: ui.RouteNoteUpload, RequiredRole: session.RoleAdmin, Show: a.showNoteUpload})
	a.nav.Register(ui.Route{Name: ui.RouteTestList, RequiredRole: session.RoleAdmin, Show: a.showTestList})
	a.nav.Register(ui.Route{Name: ui.RouteTestForm, RequiredRole: session.RoleAdmin, Show: a.showTestForm})
	a.nav.Register(ui.Route{Name: ui.RouteTestMarks, RequiredRole: session.RoleAdmin, Show: a.showTestMarks})
	a.nav.Register(ui.Route{Name: ui.RouteTestShare, RequiredRole: session.RoleAdmin, Show: a.showTestShare})
	a.nav.Register(ui.Route{Name: ui.RouteClassSelect, RequiredRole: session.RoleAdmin, Show: a.showClassSelect})

	a.nav.Register(ui.Route{Name: ui.RouteStudentMenu, RequiredRole: session.RoleStudent, Show: a.showStudentMenu})
	a.nav.Register(ui.Route{Name: ui.RouteAttendanceView, RequiredRole: session.RoleStudent, Show: a.showAttendanceView})
	a.nav.Register(ui.Route{Name: ui.RouteTestResults, RequiredRole: session.RoleStudent, Show: a.showTestResults})

	// ノート一覧は管理者・生徒の両方が使う
	a.nav.Register(ui.Route{Name: ui.RouteNoteList, Show: a.showNoteList})
}

func (a *Application) setupGlobalKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Ctrl+Q で終了
		if event.Key() == tcell.KeyCtrlQ {
			a.app.Stop()
			return nil
		}

		// F1 でヘルプ
		if event.Key() == tcell.KeyF1 {
			a.showHelp()
			return nil
		}

		return event
	})
}

func (a *Application) showHelp() {
	helpModal := ui.NewHelpModal(ui.GetDefaultHelpSections(), func() {
		a.app.HidePage("help")
		a.app.RemovePage("help")
	})

	a.app.AddPage("help", helpModal.GetModal(), true, true)
}

// refreshStatusDefault はステータスバーの常時表示テキストを更新する。
func (a *Application) refreshStatusDefault() {
	text := " " + ui.FormatKeyBindingHint(ui.DefaultStatusHints())
	switch a.controller.Role() {
	case session.RoleAdmin:
		if a.currentClass != "" {
			text = " admin | Class: " + a.currentClass + " |" + text
		} else {
			text = " admin |" + text
		}
	case session.RoleStudent:
		text = " student |" + text
	}
	a.app.GetStatusBar().SetDefaultText(text)
	a.app.GetStatusBar().ShowDefault()
}

// loadCurrentClass は選択中クラスを取得してステータスバーに反映する。
func (a *Application) loadCurrentClass() {
	go func() {
		current, err := a.client.CurrentClass(context.Background())

		a.app.QueueUpdateDraw(func() {
			if err != nil {
				return
			}
			a.currentClass = current
			a.refreshStatusDefault()
		})
	}()
}

// Login / Logout

func (a *Application) showLogin() {
	screen := login.NewScreen(a.app, a.client)

	screen.SetOnLoggedIn(func(role session.Role, token string) {
		if err := a.controller.Login(token, role); err != nil {
			a.app.GetStatusBar().ShowError("Failed to save session: " + err.Error())
			return
		}
		a.auditLogger.SetActor(string(role))
		a.auditLogger.LogLogin(string(role))

		a.app.HidePage(ui.RouteLogin)
		a.app.RemovePage(ui.RouteLogin)

		a.currentClass = ""
		a.refreshStatusDefault()
		a.nav.NavigateLanding()
		if role == session.RoleAdmin {
			a.loadCurrentClass()
		}
	})

	a.app.AddPage(ui.RouteLogin, ui.Centered(screen.GetForm(), 52, 13), true, true)
	a.app.SwitchToPage(ui.RouteLogin)
	a.app.SetFocus(screen.GetForm())
}

func (a *Application) showLogoutConfirm(returnTo string) {
	dialog := ui.NewConfirmDialog(
		"Confirm Logout",
		"Are you sure you want to log out?",
		func() {
			a.app.HidePage("logout-confirm")
			a.app.RemovePage("logout-confirm")

			if err := a.controller.Logout(); err != nil {
				a.app.GetStatusBar().ShowError("Failed to clear session: " + err.Error())
				return
			}
			a.auditLogger.LogLogout()
			a.auditLogger.SetActor("")

			a.currentClass = ""
			a.refreshStatusDefault()
			a.nav.Navigate(ui.RouteLogin)
		},
		func() {
			a.app.HidePage("logout-confirm")
			a.app.RemovePage("logout-confirm")
			a.app.SwitchToPage(returnTo)
		},
	)

	a.app.AddPage("logout-confirm", dialog.GetModal(), true, true)
}

// Menus

func (a *Application) showAdminMenu() {
	menu := ui.NewMenu("PCC Console - Admin", []ui.MenuItem{
		{Label: "Students", Description: "Manage student roster and admission forms", Key: '1', Action: func() {
			a.nav.Navigate(ui.RouteStudentList)
		}},
		{Label: "Attendance", Description: "Mark attendance for the selected class", Key: '2', Action: func() {
			a.nav.Navigate(ui.RouteAttendanceMark)
		}},
		{Label: "Notes", Description: "Upload and manage class notes", Key: '3', Action: func() {
			a.nav.Navigate(ui.RouteNoteList)
		}},
		{Label: "Tests", Description: "Create tests, enter marks and share results", Key: '4', Action: func() {
			a.nav.Navigate(ui.RouteTestList)
		}},
		{Label: "Select Class", Description: "Switch the working class", Key: '5', Action: func() {
			a.nav.Navigate(ui.RouteClassSelect)
		}},
		{Label: "Logout", Description: "Log out and return to login", Key: '6', Action: func() {
			a.showLogoutConfirm(ui.RouteAdminMenu)
		}},
	})

	menu.SetOnQuit(func() {
		a.showLogoutConfirm(ui.RouteAdminMenu)
	})

	a.app.AddPage(ui.RouteAdminMenu, menu.GetList(), true, false)
	a.app.SwitchToPage(ui.RouteAdminMenu)
	a.app.SetFocus(menu.GetList())
}

func (a *Application) showStudentMenu() {
	menu := ui.NewMenu("PCC Console - Student", []ui.MenuItem{
		{Label: "My Attendance", Description: "View attendance history and summary", Key: '1', Action: func() {
			a.nav.Navigate(ui.RouteAttendanceView)
		}},
		{Label: "Notes", Description: "Browse and download class notes", Key: '2', Action: func() {
			a.nav.Navigate(ui.RouteNoteList)
		}},
		{Label: "My Results", Description: "View test results", Key: '3', Action: func() {
			a.nav.Navigate(ui.RouteTestResults)
		}},
		{Label: "Logout", Description: "Log out and return to login", Key: '4', Action: func() {
			a.showLogoutConfirm(ui.RouteStudentMenu)
		}},
	})

	menu.SetOnQuit(func() {
		a.showLogoutConfirm(ui.RouteStudentMenu)
	})

	a.app.AddPage(ui.RouteStudentMenu, menu.GetList(), true, false)
	a.app.SwitchToPage(ui.RouteStudentMenu)
	a.app.SetFocus(menu.GetList())
}

// Student Management

func (a *Application) showStudentList() {
	screen := student.NewListScreen(a.app, a.client)

	screen.SetOnCreate(func() {
		a.nav.Navigate(ui.RouteStudentForm)
	})

	screen.SetOnUploadForm(func(st model.Student) {
		a.showAdmissionFormUpload(st, screen)
	})

	screen.SetOnBack(func() {
		a.app.SwitchToPage(ui.RouteAdminMenu)
	})

	a.app.AddPage(ui.RouteStudentList, screen.GetTable(), true, false)
	a.app.SwitchToPage(ui.RouteStudentList)
	a.app.SetFocus(screen.GetTable())

	// データ読み込み
	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

func (a *Application) showStudentForm() {
	screen := student.NewFormScreen(a.app, a.client, a.auditLogger)

	screen.SetOnCreated(func(creds *api.StudentCredentials) {
		a.app.HidePage(ui.RouteStudentForm)
		a.app.RemovePage(ui.RouteStudentForm)
		a.showCredentials(creds)
	})

	screen.SetOnCancel(func() {
		a.app.HidePage(ui.RouteStudentForm)
		a.app.RemovePage(ui.RouteStudentForm)
		a.nav.Navigate(ui.RouteStudentList)
	})

	a.app.AddPage(ui.RouteStudentForm, ui.Centered(screen.GetForm(), 60, 17), true, true)
	a.app.SetFocus(screen.GetForm())
}

// showCredentials は新規生徒のログイン情報を表示する。
// この情報はサーバーから二度と取得できないため、閉じる前に控えるよう促す。
func (a *Application) showCredentials(creds *api.StudentCredentials) {
	message := "Student created.\n\n" +
		"Admission Number: " + creds.AdmissionNumber + "\n" +
		"Username: " + creds.Username + "\n" +
		"Password: " + creds.Password + "\n\n" +
		"Write these down now.\nCredentials are shown only once."

	dialog := ui.NewInfoDialog("Student Credentials", message, func() {
		a.app.HidePage("credentials")
		a.app.RemovePage("credentials")
		a.nav.Navigate(ui.RouteStudentList)
	})

	a.app.AddPage("credentials", dialog.GetModal(), true, true)
}

func (a *Application) showAdmissionFormUpload(st model.Student, listScreen *student.ListScreen) {
	dialog := ui.NewInputDialog(
		"Upload Admission Form - "+st.Name,
		"PDF path:",
		"",
		func(value string) {
			a.app.HidePage("admission-upload")
			a.app.RemovePage("admission-upload")
			a.app.SetFocus(listScreen.GetTable())

			if !strings.EqualFold(filepath.Ext(value), ".pdf") {
				a.app.GetStatusBar().ShowError("admission_form: Admission form must be a PDF file")
				return
			}

			a.app.GetStatusBar().ShowInfo("Uploading admission form...")
			go func() {
				err := a.client.UploadAdmissionForm(context.Background(), st.ID, value)

				a.app.QueueUpdateDraw(func() {
					if err != nil {
						a.app.GetStatusBar().ShowError(api.UserMessage(err))
						return
					}
					a.auditLogger.LogUpload(audit.TargetStudent, st.AdmissionNumber, value)
					a.app.GetStatusBar().ShowSuccess("Admission form uploaded: " + st.Name)
					if err := listScreen.Refresh(context.Background()); err != nil {
						a.app.GetStatusBar().ShowError(api.UserMessage(err))
					}
				})
			}()
		},
		func() {
			a.app.HidePage("admission-upload")
			a.app.RemovePage("admission-upload")
			a.app.SetFocus(listScreen.GetTable())
		},
	)

	a.app.AddPage("admission-upload", ui.Centered(dialog.GetForm(), 60, 7), true, true)
	a.app.SetFocus(dialog.GetForm())
}

// Attendance

func (a *Application) showAttendanceMark() {
	screen := attendance.NewMarkScreen(a.app, a.client, a.auditLogger)

	screen.SetOnDone(func() {
		a.app.SwitchToPage(ui.RouteAdminMenu)
	})

	screen.SetOnBack(func() {
		a.app.SwitchToPage(ui.RouteAdminMenu)
	})

	a.app.AddPage(ui.RouteAttendanceMark, screen.GetFlex(), true, false)
	a.app.SwitchToPage(ui.RouteAttendanceMark)
	a.app.SetFocus(screen.GetFlex())

	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

func (a *Application) showAttendanceView() {
	screen := attendance.NewHistoryScreen(a.app, a.client)

	screen.SetOnBack(func() {
		a.app.SwitchToPage(ui.RouteStudentMenu)
	})

	a.app.AddPage(ui.RouteAttendanceView, screen.GetFlex(), true, false)
	a.app.SwitchToPage(ui.RouteAttendanceView)
	a.app.SetFocus(screen.GetFlex())

	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

// Notes

func (a *Application) showNoteList() {
	adminMode := a.controller.Role() == session.RoleAdmin
	screen := note.NewListScreen(a.app, a.client, a.cfg.DownloadDir, adminMode)

	screen.SetOnUpload(func() {
		a.nav.Navigate(ui.RouteNoteUpload)
	})

	screen.SetOnDelete(func(n model.Note) {
		a.showNoteDeleteConfirm(n, screen)
	})

	screen.SetOnBack(func() {
		if adminMode {
			a.app.SwitchToPage(ui.RouteAdminMenu)
		} else {
			a.app.SwitchToPage(ui.RouteStudentMenu)
		}
	})

	a.app.AddPage(ui.RouteNoteList, screen.GetTable(), true, false)
	a.app.SwitchToPage(ui.RouteNoteList)
	a.app.SetFocus(screen.GetTable())

	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

func (a *Application) showNoteDeleteConfirm(n model.Note, listScreen *note.ListScreen) {
	dialog := ui.NewConfirmDialog(
		"Confirm Delete",
		"Are you sure you want to delete this note?\n\n"+n.Title,
		func() {
			a.app.HidePage("note-delete-confirm")
			a.app.RemovePage("note-delete-confirm")
			a.app.SetFocus(listScreen.GetTable())

			go func() {
				err := a.client.DeleteNote(context.Background(), n.ID)

				a.app.QueueUpdateDraw(func() {
					if err != nil {
						a.app.GetStatusBar().ShowError(api.UserMessage(err))
						return
					}
					a.auditLogger.LogDelete(audit.TargetNote, strconv.Itoa(n.ID))
					a.app.GetStatusBar().ShowSuccess("Note deleted: " + n.Title)
					if err := listScreen.Refresh(context.Background()); err != nil {
						a.app.GetStatusBar().ShowError(api.UserMessage(err))
					}
				})
			}()
		},
		func() {
			a.app.HidePage("note-delete-confirm")
			a.app.RemovePage("note-delete-confirm")
			a.app.SetFocus(listScreen.GetTable())
		},
	)

	a.app.AddPage("note-delete-confirm", dialog.GetModal(), true, true)
}

func (a *Application) showNoteUpload() {
	screen := note.NewUploadScreen(a.app, a.client, a.auditLogger)

	screen.SetOnUploaded(func() {
		a.app.HidePage(ui.RouteNoteUpload)
		a.app.RemovePage(ui.RouteNoteUpload)
		a.nav.Navigate(ui.RouteNoteList)
	})

	screen.SetOnCancel(func() {
		a.app.HidePage(ui.RouteNoteUpload)
		a.app.RemovePage(ui.RouteNoteUpload)
		a.app.SwitchToPage(ui.RouteNoteList)
	})

	a.app.AddPage(ui.RouteNoteUpload, ui.Centered(screen.GetForm(), 60, 13), true, true)
	a.app.SetFocus(screen.GetForm())
}

// Test Management

func (a *Application) showTestList() {
	screen := test.NewListScreen(a.app, a.client)

	screen.SetOnCreate(func() {
		a.nav.Navigate(ui.RouteTestForm)
	})

	screen.SetOnMarks(func(t model.Test) {
		a.activeTest = t
		a.nav.Navigate(ui.RouteTestMarks)
	})

	screen.SetOnShare(func(t model.Test) {
		a.activeTest = t
		a.nav.Navigate(ui.RouteTestShare)
	})

	screen.SetOnBack(func() {
		a.app.SwitchToPage(ui.RouteAdminMenu)
	})

	a.app.AddPage(ui.RouteTestList, screen.GetTable(), true, false)
	a.app.SwitchToPage(ui.RouteTestList)
	a.app.SetFocus(screen.GetTable())

	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

func (a *Application) showTestForm() {
	screen := test.NewFormScreen(a.app, a.client, a.auditLogger)

	screen.SetOnCreated(func(t model.Test) {
		a.app.HidePage(ui.RouteTestForm)
		a.app.RemovePage(ui.RouteTestForm)

		// 作成直後にそのまま採点入力へ
		a.activeTest = t
		a.nav.Navigate(ui.RouteTestMarks)
	})

	screen.SetOnCancel(func() {
		a.app.HidePage(ui.RouteTestForm)
		a.app.RemovePage(ui.RouteTestForm)
		a.nav.Navigate(ui.RouteTestList)
	})

	a.app.AddPage(ui.RouteTestForm, ui.Centered(screen.GetForm(), 60, 15), true, true)
	a.app.SetFocus(screen.GetForm())
}

func (a *Application) showTestMarks() {
	screen := test.NewMarksScreen(a.app, a.client, a.auditLogger, a.activeTest)

	screen.SetOnDone(func() {
		a.nav.Navigate(ui.RouteTestList)
	})

	screen.SetOnBack(func() {
		a.nav.Navigate(ui.RouteTestList)
	})

	a.app.AddPage(ui.RouteTestMarks, screen.GetTable(), true, false)
	a.app.SwitchToPage(ui.RouteTestMarks)
	a.app.SetFocus(screen.GetTable())

	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

func (a *Application) showTestShare() {
	screen := test.NewShareScreen(a.app, a.client, a.auditLogger, a.activeTest)

	screen.SetOnBack(func() {
		a.nav.Navigate(ui.RouteTestList)
	})

	a.app.AddPage(ui.RouteTestShare, screen.GetView(), true, false)
	a.app.SwitchToPage(ui.RouteTestShare)
	a.app.SetFocus(screen.GetView())
}

func (a *Application) showTestResults() {
	screen := test.NewResultsScreen(a.app, a.client)

	screen.SetOnBack(func() {
		a.app.SwitchToPage(ui.RouteStudentMenu)
	})

	a.app.AddPage(ui.RouteTestResults, screen.GetTable(), true, false)
	a.app.SwitchToPage(ui.RouteTestResults)
	a.app.SetFocus(screen.GetTable())

	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}

// Class Selection

func (a *Application) showClassSelect() {
	screen := classsel.NewScreen(a.app, a.client, a.auditLogger)

	screen.SetOnSelected(func(classLevel string) {
		a.currentClass = classLevel
		a.refreshStatusDefault()
		a.app.SwitchToPage(ui.RouteAdminMenu)
	})

	screen.SetOnBack(func() {
		a.app.SwitchToPage(ui.RouteAdminMenu)
	})

	a.app.AddPage(ui.RouteClassSelect, ui.Centered(screen.GetList(), 44, 14), true, true)
	a.app.SetFocus(screen.GetList())

	go func() {
		a.app.QueueUpdateDraw(func() {
			if err := screen.Load(context.Background()); err != nil {
				a.app.GetStatusBar().ShowError(api.UserMessage(err))
			}
		})
	}()
}
