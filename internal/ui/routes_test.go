package ui

import (
	"path/filepath"
	"testing"

	"github.com/omkar381/pcc-console/internal/session"
)

// newTestNavigator はテスト用のNavigatorと画面表示の記録を生成する。
func newTestNavigator(t *testing.T) (*Navigator, *session.Controller, *[]string) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	controller := session.NewController(store)
	nav := NewNavigator(controller)

	var shown []string
	record := func(name string) func() {
		return func() { shown = append(shown, name) }
	}

	nav.Register(Route{Name: RouteLogin, Public: true, Show: record(RouteLogin)})
	nav.Register(Route{Name: RouteAdminMenu, RequiredRole: session.RoleAdmin, Show: record(RouteAdminMenu)})
	nav.Register(Route{Name: RouteStudentList, RequiredRole: session.RoleAdmin, Show: record(RouteStudentList)})
	nav.Register(Route{Name: RouteStudentMenu, RequiredRole: session.RoleStudent, Show: record(RouteStudentMenu)})
	nav.Register(Route{Name: RouteAttendanceView, RequiredRole: session.RoleStudent, Show: record(RouteAttendanceView)})

	return nav, controller, &shown
}

func TestNavigateAnonymousRedirectsToLogin(t *testing.T) {
	nav, _, shown := newTestNavigator(t)

	if nav.Navigate(RouteStudentList) {
		t.Error("Navigate should fail when anonymous")
	}
	if len(*shown) != 1 || (*shown)[0] != RouteLogin {
		t.Errorf("shown = %v, want [login]", *shown)
	}
}

func TestNavigateAdminAfterLogin(t *testing.T) {
	nav, controller, shown := newTestNavigator(t)

	if err := controller.Login("tok", session.RoleAdmin); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !nav.Navigate(RouteAdminMenu) {
		t.Error("admin should reach admin menu")
	}
	if !nav.Navigate(RouteStudentList) {
		t.Error("admin should reach student list")
	}
	if len(*shown) != 2 {
		t.Errorf("shown = %v", *shown)
	}
}

func TestNavigateRoleMismatchRedirectsToLogin(t *testing.T) {
	nav, controller, shown := newTestNavigator(t)

	if err := controller.Login("tok", session.RoleStudent); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if nav.Navigate(RouteAdminMenu) {
		t.Error("student should not reach admin menu")
	}
	if (*shown)[len(*shown)-1] != RouteLogin {
		t.Errorf("shown = %v, want redirect to login", *shown)
	}

	// 生徒画面には到達できる
	if !nav.Navigate(RouteAttendanceView) {
		t.Error("student should reach attendance view")
	}
}

func TestNavigateUnknownRoute(t *testing.T) {
	nav, _, shown := newTestNavigator(t)

	if nav.Navigate("no-such-screen") {
		t.Error("unknown route should fail")
	}
	if len(*shown) != 0 {
		t.Errorf("shown = %v, want none", *shown)
	}
}

func TestLandingResolution(t *testing.T) {
	nav, controller, _ := newTestNavigator(t)

	if got := nav.Landing(); got != RouteLogin {
		t.Errorf("anonymous landing = %q, want login", got)
	}

	if err := controller.Login("tok", session.RoleAdmin); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := nav.Landing(); got != RouteAdminMenu {
		t.Errorf("admin landing = %q, want admin-menu", got)
	}

	if err := controller.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := controller.Login("tok2", session.RoleStudent); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := nav.Landing(); got != RouteStudentMenu {
		t.Errorf("student landing = %q, want student-menu", got)
	}

	if err := controller.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if got := nav.Landing(); got != RouteLogin {
		t.Errorf("landing after logout = %q, want login", got)
	}
}

func TestLoginThenLogoutFullCycle(t *testing.T) {
	nav, controller, shown := newTestNavigator(t)

	// ログイン前はログイン画面に着地
	nav.NavigateLanding()
	if (*shown)[0] != RouteLogin {
		t.Fatalf("shown = %v", *shown)
	}

	// 管理者ログイン → 管理者メニューに着地
	if err := controller.Login("tok", session.RoleAdmin); err != nil {
		t.Fatalf("Login: %v", err)
	}
	nav.NavigateLanding()
	if (*shown)[len(*shown)-1] != RouteAdminMenu {
		t.Errorf("shown = %v, want admin-menu last", *shown)
	}

	// ログアウト → ログイン画面に着地、管理画面は到達不可
	if err := controller.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	nav.NavigateLanding()
	if (*shown)[len(*shown)-1] != RouteLogin {
		t.Errorf("shown = %v, want login last", *shown)
	}
	if nav.Navigate(RouteStudentList) {
		t.Error("student list should be blocked after logout")
	}
}
