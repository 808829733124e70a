package session

import (
	"path/filepath"
	"testing"
)

func TestControllerStartsAnonymous(t *testing.T) {
	ctrl := NewController(newTestStore(t))

	if ctrl.IsAuthenticated() {
		t.Error("IsAuthenticated = true, want false")
	}
	if ctrl.Role() != "" {
		t.Errorf("Role = %q, want empty", ctrl.Role())
	}
}

func TestControllerHydratesFromStore(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save("t1", RoleStudent); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ctrl := NewController(store)
	if !ctrl.IsAuthenticated() {
		t.Error("IsAuthenticated = false, want true")
	}
	if ctrl.Role() != RoleStudent {
		t.Errorf("Role = %q, want student", ctrl.Role())
	}
}

func TestControllerLoginPersists(t *testing.T) {
	store := newTestStore(t)
	ctrl := NewController(store)

	if err := ctrl.Login("t1", RoleAdmin); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if !ctrl.IsAuthenticated() {
		t.Error("IsAuthenticated = false, want true")
	}
	if ctrl.Role() != RoleAdmin {
		t.Errorf("Role = %q, want admin", ctrl.Role())
	}

	sess := store.Load()
	if sess.Token != "t1" || sess.Role != RoleAdmin {
		t.Errorf("persisted session = %+v, want (t1, admin)", sess)
	}
}

func TestControllerLogoutClears(t *testing.T) {
	store := newTestStore(t)
	ctrl := NewController(store)
	if err := ctrl.Login("t1", RoleAdmin); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := ctrl.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if ctrl.IsAuthenticated() {
		t.Error("IsAuthenticated = true, want false")
	}
	if ctrl.Role() != "" {
		t.Errorf("Role = %q, want empty", ctrl.Role())
	}
	if sess := store.Load(); sess.Present() {
		t.Errorf("session after Logout = %+v, want absent", sess)
	}
}

func TestControllerLoginFromAuthenticated(t *testing.T) {
	// ログイン済み状態からの再ログインも有効（状態を置き換える）
	store := newTestStore(t)
	ctrl := NewController(store)
	if err := ctrl.Login("t1", RoleAdmin); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := ctrl.Login("t2", RoleStudent); err != nil {
		t.Fatalf("second Login failed: %v", err)
	}
	if ctrl.Role() != RoleStudent {
		t.Errorf("Role = %q, want student", ctrl.Role())
	}
	if sess := store.Load(); sess.Token != "t2" {
		t.Errorf("persisted token = %q, want t2", sess.Token)
	}
}

func TestControllerLogoutFromAnonymous(t *testing.T) {
	ctrl := NewController(NewStore(filepath.Join(t.TempDir(), "session.json")))
	if err := ctrl.Logout(); err != nil {
		t.Errorf("Logout from anonymous failed: %v", err)
	}
}
