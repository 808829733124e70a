package session

// State は認証状態を表す。
type State int

const (
	// StateAnonymous は未ログイン状態
	StateAnonymous State = iota
	// StateAuthenticated はログイン済み状態
	StateAuthenticated
)

// Controller はプロセス内の認証状態を所有する。
// 状態は起動時にStoreから1回だけ復元され、Login/Logoutでのみ遷移する。
// トークンリフレッシュの遷移は存在しない。期限切れは個々のリクエスト失敗
// として各画面に表面化する。
type Controller struct {
	store *Store
	state State
	role  Role
}

// NewController はStoreから状態を復元してControllerを生成する。
func NewController(store *Store) *Controller {
	c := &Controller{store: store, state: StateAnonymous}
	if sess := store.Load(); sess.Present() {
		c.state = StateAuthenticated
		c.role = sess.Role
	}
	return c
}

// IsAuthenticated はログイン済みかどうかを返す。
func (c *Controller) IsAuthenticated() bool {
	return c.state == StateAuthenticated
}

// Role は現在のロールを返す。未ログイン時は空文字列。
func (c *Controller) Role() Role {
	if c.state != StateAuthenticated {
		return ""
	}
	return c.role
}

// Login はセッションを永続化してAuthenticated(role)に遷移する。
// どの状態からでも有効。
func (c *Controller) Login(token string, role Role) error {
	if err := c.store.Save(token, role); err != nil {
		return err
	}
	c.state = StateAuthenticated
	c.role = role
	return nil
}

// Logout はセッションを消去してAnonymousに遷移する。
// どの状態からでも有効。
func (c *Controller) Logout() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.state = StateAnonymous
	c.role = ""
	return nil
}
