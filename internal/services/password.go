package services

import (
	"context"
	"errors"
	"fmt"
	"selfrental/internal/logger"
	"selfrental/internal/repository"
	"selfrental/internal/utils"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrEmailNotFound показывается пользователю как есть. Да, это раскрывает
	// наличие аккаунта — так ведёт себя форма с самого начала.
	ErrEmailNotFound = errors.New("email not found")

	ErrMailSend = errors.New("failed to send email")
)

// mailTimeout ограничивает ожидание SMTP — единственного I/O с
// непредсказуемой задержкой в этих потоках.
const mailTimeout = 15 * time.Second

type PasswordService struct {
	repo        UserRepo
	tokens      *TokenService
	emailSender EmailSender // интерфейс отправки писем
	siteURL     string      // базовый URL: ссылка вида /reset-password?token=...
}

type EmailSender interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

func NewPasswordService(repo UserRepo, tokens *TokenService, emailSender EmailSender, siteURL string) *PasswordService {
	return &PasswordService{
		repo:        repo,
		tokens:      tokens,
		emailSender: emailSender,
		siteURL:     siteURL,
	}
}

// RequestReset выпускает токен сброса и отправляет письмо со ссылкой.
func (s *PasswordService) RequestReset(ctx context.Context, email string) error {
	logger.Log.Info("Запрос на сброс пароля", zap.String("email", email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Warn("Email не найден при запросе сброса", zap.String("email", email), zap.Error(err))
		return ErrEmailNotFound
	}

	token, err := s.tokens.IssueReset(user.Email)
	if err != nil {
		logger.Log.Error("Ошибка генерации токена сброса", zap.Error(err))
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.siteURL, token)

	sendCtx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()
	if err := s.emailSender.SendPasswordReset(sendCtx, user.Email, resetLink); err != nil {
		logger.Log.Error("Ошибка отправки письма для сброса пароля",
			zap.String("email", email),
			zap.Error(err),
		)
		// Повторов нет: пользователь запросит ссылку заново сам
		return ErrMailSend
	}

	logger.Log.Info("Письмо со ссылкой на сброс пароля отправлено", zap.String("email", email))
	return nil
}

// VerifyResetToken проверяет токен из ссылки и возвращает привязанный email
// для формы нового пароля.
func (s *PasswordService) VerifyResetToken(token string) (string, error) {
	email, err := s.tokens.ParseReset(token)
	if err != nil {
		logger.Log.Warn("Неверный или просроченный токен сброса", zap.Error(err))
		return "", ErrInvalidToken
	}
	return email, nil
}

// ResetPassword повторно проверяет токен и устанавливает новый пароль.
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword string) error {
	logger.Log.Info("Попытка сброса пароля по токену")

	email, err := s.tokens.ParseReset(token)
	if err != nil {
		logger.Log.Warn("Неверный или просроченный токен при сбросе пароля", zap.Error(err))
		return ErrInvalidToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Ошибка генерации хеша пароля", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePasswordByEmail(ctx, email, hashed); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Пользователь исчез между кликом по ссылке и отправкой формы
			logger.Log.Warn("Пользователь не найден при сбросе пароля", zap.String("email", email))
			return err
		}
		logger.Log.Error("Ошибка обновления пароля пользователя", zap.String("email", email), zap.Error(err))
		return err
	}

	logger.Log.Info("Пароль успешно сброшен", zap.String("email", email))
	return nil
}
