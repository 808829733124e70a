package api

// HTTPヘッダー関連の定数
const (
	// HeaderAuthorization は認証ヘッダー名
	HeaderAuthorization = "Authorization"
	// HeaderContentType はContent-Typeヘッダー名
	HeaderContentType = "Content-Type"
	// HeaderTraceID はリクエスト追跡用ヘッダー名
	HeaderTraceID = "X-Trace-ID"

	// BearerPrefix はAuthorizationヘッダーの値の接頭辞
	BearerPrefix = "Bearer "
	// ContentTypeJSON はJSONのContent-Type
	ContentTypeJSON = "application/json"
)
