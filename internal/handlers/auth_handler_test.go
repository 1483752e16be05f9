package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"selfrental/internal/handlers"
	"selfrental/internal/logger"
	"selfrental/internal/middleware"
	"selfrental/internal/repository"
	"selfrental/internal/routes"
	"selfrental/internal/services"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// Полный стек поверх файлового хранилища во временной папке.
func newTestServer(t *testing.T) (*mux.Router, *services.TokenService) {
	t.Helper()

	repo := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "users.json"))
	tokens := services.NewTokenService("test-secret", time.Minute, 10*time.Minute)
	authService := services.NewAuthService(repo, tokens)

	router := mux.NewRouter()
	routes.InitRoutes(router, tokens,
		handlers.NewPageHandler(),
		handlers.NewAuthHandler(authService),
		handlers.NewPasswordHandler(services.NewPasswordService(repo, tokens, noopSender{}, "http://localhost:8080")),
	)
	return router, tokens
}

// Почта в этих тестах не участвует
type noopSender struct{}

func (noopSender) SendPasswordReset(_ context.Context, _, _ string) error {
	return nil
}

func postForm(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHome_WithoutCookieRedirects(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("ожидался редирект на /login, получили %d -> %s", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRegisterLoginHome_Flow(t *testing.T) {
	router, _ := newTestServer(t)

	// Регистрация
	rec := postForm(router, "/register", url.Values{
		"username": {"testuser"},
		"email":    {"test@example.com"},
		"password": {"secret"},
	})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("регистрация: ожидался редирект на /login, получили %d", rec.Code)
	}

	// Вход
	rec = postForm(router, "/login", url.Values{
		"username": {"testuser"},
		"password": {"secret"},
	})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/home" {
		t.Fatalf("вход: ожидался редирект на /home, получили %d", rec.Code)
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	if session == nil || session.Value == "" || !session.HttpOnly {
		t.Fatal("сессионная кука не выставлена или не HTTP-only")
	}

	// Защищённая страница с кукой
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(session)
	home := httptest.NewRecorder()
	router.ServeHTTP(home, req)

	if home.Code != http.StatusOK || !strings.Contains(home.Body.String(), "testuser") {
		t.Fatalf("домашняя страница не показала username: %d", home.Code)
	}
}

func TestLogin_GenericErrorPage(t *testing.T) {
	router, _ := newTestServer(t)

	postForm(router, "/register", url.Values{
		"username": {"known"},
		"email":    {"known@example.com"},
		"password": {"secret"},
	})

	unknown := postForm(router, "/login", url.Values{"username": {"ghost"}, "password": {"secret"}})
	wrongPass := postForm(router, "/login", url.Values{"username": {"known"}, "password": {"wrong"}})

	// Обе неудачи выглядят одинаково
	if unknown.Code != wrongPass.Code {
		t.Fatalf("коды различаются: %d и %d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatal("страницы ошибок различаются — утечка, какое поле не совпало")
	}
	if !strings.Contains(unknown.Body.String(), "Invalid credentials") {
		t.Fatal("нет сообщения Invalid credentials")
	}
}

func TestHome_ResetTokenRejected(t *testing.T) {
	router, tokens := newTestServer(t)

	// Токен сброса в сессионной куке не открывает /home
	reset, err := tokens.IssueReset("test@example.com")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: reset})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("токен сброса открыл сессию: %d", rec.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("ожидался редирект на /login, получили %d", rec.Code)
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("кука не сброшена")
	}

	// Повторный выход так же безвреден
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("повторный выход сломался: %d", rec.Code)
	}
}
