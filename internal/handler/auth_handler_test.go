package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// newAuthEngine mounts the auth endpoints plus one guarded probe route
// behind the same session middleware the real router uses.
func newAuthEngine(api *API) *gin.Engine {
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("trisikkim_session", store))

	r.POST("/api/auth/login", api.Login)
	r.POST("/api/auth/logout", api.Logout)
	r.GET("/api/auth/session", api.Session)
	admin := r.Group("/api/admin", AuthRequired())
	admin.GET("/hero-slides", api.ListHeroSlidesAdmin)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedAdmin(t *testing.T, api *API) {
	t.Helper()
	if _, err := api.users.Register("admin", "correct-horse", "Site Admin"); err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}
}

func TestAuthRequiredRejectsAnonymous(t *testing.T) {
	api := setupTestAPI(t)
	r := newAuthEngine(api)

	w := doJSON(t, r, http.MethodGet, "/api/admin/hero-slides", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Success || env.Error == "" {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	api := setupTestAPI(t)
	seedAdmin(t, api)
	r := newAuthEngine(api)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "correct-horse",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/hero-slides", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected guarded route to accept session, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/session", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected session probe to succeed, got %d", w.Code)
	}
	var identity map[string]any
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &identity); err != nil {
		t.Fatalf("failed to decode identity: %v", err)
	}
	if identity["username"] != "admin" {
		t.Fatalf("expected admin identity, got %+v", identity)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	api := setupTestAPI(t)
	seedAdmin(t, api)
	r := newAuthEngine(api)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	api := setupTestAPI(t)
	seedAdmin(t, api)
	r := newAuthEngine(api)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "correct-horse",
	}, nil)
	cookies := w.Result().Cookies()

	w = doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cleared := w.Result().Cookies()

	w = doJSON(t, r, http.MethodGet, "/api/admin/hero-slides", nil, cleared)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}
