package ui

import "github.com/omkar381/pcc-console/internal/session"

// 画面名の定数
const (
	RouteLogin          = "login"
	RouteAdminMenu      = "admin-menu"
	RouteStudentMenu    = "student-menu"
	RouteStudentList    = "student-list"
	RouteStudentForm    = "student-form"
	RouteAttendanceMark = "attendance-mark"
	RouteAttendanceView = "attendance-view"
	RouteNoteList       = "note-list"
	RouteNoteUpload     = "note-upload"
	RouteTestList       = "test-list"
	RouteTestForm       = "test-form"
	RouteTestMarks      = "test-marks"
	RouteTestShare      = "test-share"
	RouteTestResults    = "test-results"
	RouteClassSelect    = "class-select"
)

// Route は画面遷移先を表す。
type Route struct {
	Name         string
	RequiredRole session.Role // 要求ロール。空なら認証のみを要求する
	Public       bool         // 未認証でも表示できる画面
	Show         func()
}

// Navigator は画面遷移とアクセス制御を管理する。
// 全ての画面遷移はNavigate経由で行い、ロール判定を一箇所に集約する。
type Navigator struct {
	controller *session.Controller
	routes     map[string]Route
}

// NewNavigator は新しいNavigatorを生成する。
func NewNavigator(controller *session.Controller) *Navigator {
	return &Navigator{
		controller: controller,
		routes:     make(map[string]Route),
	}
}

// Register は画面を登録する。
func (n *Navigator) Register(route Route) {
	n.routes[route.Name] = route
}

// Navigate は指定された画面への遷移を試みる。
// 未認証またはロール不一致の場合はログイン画面に遷移し、falseを返す。
// 未登録の画面名の場合は何もせずfalseを返す。
func (n *Navigator) Navigate(name string) bool {
	route, ok := n.routes[name]
	if !ok {
		return false
	}

	if route.Public {
		route.Show()
		return true
	}

	decision := session.Check(n.controller.IsAuthenticated(), n.controller.Role(), route.RequiredRole)
	if decision == session.RedirectToLogin {
		if login, ok := n.routes[RouteLogin]; ok {
			login.Show()
		}
		return false
	}

	route.Show()
	return true
}

// Landing は現在のセッション状態に応じた着地画面の名前を返す。
func (n *Navigator) Landing() string {
	if !n.controller.IsAuthenticated() {
		return RouteLogin
	}
	switch n.controller.Role() {
	case session.RoleAdmin:
		return RouteAdminMenu
	case session.RoleStudent:
		return RouteStudentMenu
	default:
		return RouteLogin
	}
}

// NavigateLanding はセッション状態に応じた着地画面に遷移する。
func (n *Navigator) NavigateLanding() {
	n.Navigate(n.Landing())
}
