package handlers

import (
	"net/http"
	"selfrental/internal/logger"
	"selfrental/internal/middleware"
	"selfrental/internal/services"
	helpers "selfrental/internal/utils/helpres"
	"strings"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register принимает форму регистрации. Дубликат логина или почты —
// та же страница с ошибкой, успех — редирект на /login.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Warn("Невалидная форма в Register", zap.Error(err))
		helpers.HTML(w, http.StatusBadRequest, helpers.BuildRegisterHTML("Invalid form data"))
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	log.Info("Регистрация пользователя", zap.String("username", username), zap.String("email", email))

	if username == "" || email == "" || password == "" {
		helpers.HTML(w, http.StatusBadRequest, helpers.BuildRegisterHTML("All fields are required"))
		return
	}

	if err := h.authService.RegisterUser(r.Context(), username, email, password); err != nil {
		log.Warn("Ошибка регистрации пользователя", zap.Error(err))
		helpers.HTML(w, http.StatusBadRequest, helpers.BuildRegisterHTML("Username or email already exists"))
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// Login проверяет учётные данные и кладёт сессионный токен в HTTP-only куку.
// На любую неудачу — одинаковый "Invalid credentials".
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Warn("Невалидная форма в Login", zap.Error(err))
		helpers.HTML(w, http.StatusBadRequest, helpers.BuildLoginHTML("Invalid form data"))
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	log.Info("Попытка входа", zap.String("username", username))

	token, user, err := h.authService.LoginUser(r.Context(), username, password)
	if err != nil {
		log.Warn("Ошибка входа пользователя", zap.String("username", username), zap.Error(err))
		helpers.HTML(w, http.StatusUnauthorized, helpers.BuildLoginHTML("Invalid credentials"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("Вход выполнен", zap.String("username", user.Username))
	http.Redirect(w, r, "/home", http.StatusFound)
}

// Logout сбрасывает куку безусловно — повторный выход безвреден.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger.WithCtx(r.Context()).Info("Выход пользователя")

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/login", http.StatusFound)
}

// Home — защищённая страница; username кладёт в контекст SessionAuth.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value(middleware.ContextUsername).(string)
	if !ok || username == "" {
		// Сюда можно попасть только мимо middleware — перестрахуемся
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	helpers.HTML(w, http.StatusOK, helpers.BuildHomeHTML(username))
}
