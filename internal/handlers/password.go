package handlers

import (
	"errors"
	"net/http"
	"selfrental/internal/logger"
	"selfrental/internal/repository"
	"selfrental/internal/services"
	helpers "selfrental/internal/utils/helpres"
	"strings"

	"go.uber.org/zap"
)

type PasswordHandler struct {
	svc *services.PasswordService
}

func NewPasswordHandler(svc *services.PasswordService) *PasswordHandler {
	return &PasswordHandler{svc: svc}
}

func (h *PasswordHandler) ForgotForm(w http.ResponseWriter, r *http.Request) {
	helpers.HTML(w, http.StatusOK, helpers.BuildForgotPasswordHTML("", ""))
}

// Forgot отправляет письмо со ссылкой на сброс. Форма различает
// «почта не найдена» и «письмо не ушло» — так она вела себя всегда.
func (h *PasswordHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Warn("Невалидная форма в Forgot", zap.Error(err))
		helpers.HTML(w, http.StatusBadRequest, helpers.BuildForgotPasswordHTML("", "Invalid form data"))
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		helpers.HTML(w, http.StatusBadRequest, helpers.BuildForgotPasswordHTML("", "Email is required"))
		return
	}

	err := h.svc.RequestReset(r.Context(), email)
	switch {
	case errors.Is(err, services.ErrEmailNotFound):
		helpers.HTML(w, http.StatusOK, helpers.BuildForgotPasswordHTML("", "Email not found"))
	case errors.Is(err, services.ErrMailSend):
		helpers.HTML(w, http.StatusOK, helpers.BuildForgotPasswordHTML("", "Failed to send email"))
	case err != nil:
		log.Error("Сбой при запросе восстановления пароля", zap.Error(err))
		helpers.HTML(w, http.StatusOK, helpers.BuildForgotPasswordHTML("", "Failed to send email"))
	default:
		helpers.HTML(w, http.StatusOK, helpers.BuildForgotPasswordHTML("Reset link sent to your email", ""))
	}
}

// ResetForm — приземление по ссылке из письма.
func (h *PasswordHandler) ResetForm(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	email, err := h.svc.VerifyResetToken(token)
	if err != nil {
		// Причина (подпись/срок/подделка) наружу не уходит
		helpers.Text(w, http.StatusOK, "Invalid or expired token.")
		return
	}

	helpers.HTML(w, http.StatusOK, helpers.BuildResetPasswordHTML(email, token))
}

// Reset повторно проверяет токен и ставит новый пароль.
func (h *PasswordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Warn("Невалидная форма в Reset", zap.Error(err))
		helpers.Text(w, http.StatusBadRequest, "Invalid or expired token.")
		return
	}

	token := r.FormValue("token")
	password := r.FormValue("password")
	if token == "" || password == "" {
		helpers.Text(w, http.StatusBadRequest, "Invalid or expired token.")
		return
	}

	err := h.svc.ResetPassword(r.Context(), token, password)
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		helpers.Text(w, http.StatusOK, "Invalid or expired token.")
	case errors.Is(err, repository.ErrUserNotFound):
		helpers.Text(w, http.StatusOK, "User not found.")
	case err != nil:
		log.Error("Не удалось сбросить пароль", zap.Error(err))
		helpers.Text(w, http.StatusInternalServerError, "Something went wrong. Please request a new link.")
	default:
		log.Info("Пароль успешно сброшен")
		helpers.HTML(w, http.StatusOK, "Password reset successful. <a href='/login'>Login now</a>")
	}
}
