package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestResetForm_InvalidToken(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/reset-password?token=garbage", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "Invalid or expired token.") {
		t.Fatalf("нет сообщения о невалидном токене: %s", rec.Body.String())
	}
}

func TestResetFlow_EndToEnd(t *testing.T) {
	router, tokens := newTestServer(t)

	postForm(router, "/register", url.Values{
		"username": {"testuser"},
		"email":    {"test@example.com"},
		"password": {"old-password"},
	})

	token, err := tokens.IssueReset("test@example.com")
	if err != nil {
		t.Fatal(err)
	}

	// Приземление по ссылке: форма несёт email и токен
	req := httptest.NewRequest(http.MethodGet, "/reset-password?token="+token, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "test@example.com") {
		t.Fatalf("форма сброса не показала email: %d", rec.Code)
	}

	// Отправка нового пароля
	rec = postForm(router, "/reset-password", url.Values{
		"token":    {token},
		"password": {"new-password"},
	})
	if !strings.Contains(rec.Body.String(), "Password reset successful") {
		t.Fatalf("сброс не подтверждён: %s", rec.Body.String())
	}

	// Старый пароль больше не подходит, новый — работает
	rec = postForm(router, "/login", url.Values{"username": {"testuser"}, "password": {"old-password"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("старый пароль всё ещё подходит: %d", rec.Code)
	}
	rec = postForm(router, "/login", url.Values{"username": {"testuser"}, "password": {"new-password"}})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/home" {
		t.Fatalf("новый пароль не подошёл: %d", rec.Code)
	}
}

func TestResetSubmit_SessionTokenRejected(t *testing.T) {
	router, tokens := newTestServer(t)

	session, err := tokens.IssueSession("testuser", "test@example.com")
	if err != nil {
		t.Fatal(err)
	}

	rec := postForm(router, "/reset-password", url.Values{
		"token":    {session},
		"password": {"new-password"},
	})
	if !strings.Contains(rec.Body.String(), "Invalid or expired token.") {
		t.Fatalf("сессионный токен принят формой сброса: %s", rec.Body.String())
	}
}
