package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/omkar381/pcc-console/internal/config"
	"github.com/omkar381/pcc-console/internal/session"
)

// newTestClient はhttptestサーバーに向けたClientとStoreを生成する。
func newTestClient(t *testing.T, srv *httptest.Server) (*Client, *session.Store) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	cfg := &config.Config{
		APIBaseURL:     srv.URL,
		RequestTimeout: 5 * time.Second,
		LogMaskToken:   true,
	}
	return NewClient(cfg, store), store
}

func TestBearerAttachedWhenSessionPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(HeaderAuthorization)
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv)
	if err := store.Save("tok-12345", session.RoleAdmin); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := client.ListStudents(context.Background()); err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if gotAuth != "Bearer tok-12345" {
		t.Errorf("Authorization = %q, want Bearer tok-12345", gotAuth)
	}
}

func TestBearerOmittedWhenNoSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(HeaderAuthorization)
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	if _, err := client.ListNotes(context.Background(), ""); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestTraceIDAttached(t *testing.T) {
	var gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace = r.Header.Get(HeaderTraceID)
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv)

	if _, err := client.ListNotes(context.Background(), ""); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if gotTrace == "" {
		t.Error("X-Trace-ID not attached")
	}
}

func TestBearerReflectsStoreAfterLogout(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(HeaderAuthorization)
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv)
	if err := store.Save("tok-12345", session.RoleAdmin); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, err := client.ListNotes(context.Background(), ""); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization after logout = %q, want empty", gotAuth)
	}
}
