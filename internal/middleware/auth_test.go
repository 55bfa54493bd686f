package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	router.GET("/fake-login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionEmailKey, "jane@x.com")
		_ = session.Save()
		c.Status(http.StatusOK)
	})

	protected := router.Group("/", RequireAuth())
	protected.GET("/myjobs", func(c *gin.Context) {
		c.String(http.StatusOK, SessionEmail(c))
	})

	return router
}

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	router := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/myjobs", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect location = %q, want /login", loc)
	}
}

func TestRequireAuth_AllowsLoggedIn(t *testing.T) {
	router := setupAuthRouter()

	// Establish a session first, then replay its cookie.
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, httptest.NewRequest(http.MethodGet, "/fake-login", nil))

	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/myjobs", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "jane@x.com" {
		t.Errorf("body = %q, want session email", w.Body.String())
	}
}
