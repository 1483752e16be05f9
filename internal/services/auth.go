package services

import (
	"context"
	"errors"
	"selfrental/internal/logger"
	"selfrental/internal/models"
	"selfrental/internal/repository"
	"selfrental/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrUserExists = errors.New("username or email already exists")

	// ErrInvalidCredentials — один и тот же ответ и на неизвестный логин,
	// и на неверный пароль, чтобы не подсказывать, что именно не совпало.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	repo   UserRepo
	tokens *TokenService
}

func NewAuthService(repo UserRepo, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}

func (s *AuthService) RegisterUser(ctx context.Context, username, email, plainPassword string) error {
	logger.Log.Info("Регистрация пользователя (service)", zap.String("username", username), zap.String("email", email))

	if existing, err := s.repo.FindByUsernameOrEmail(ctx, username, email); existing != nil {
		logger.Log.Warn("Пользователь уже существует (service)",
			zap.String("username", username), zap.String("email", email))
		return ErrUserExists
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		logger.Log.Error("Ошибка проверки уникальности", zap.Error(err))
		return err
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.Log.Error("Ошибка создания пользователя", zap.Error(err))
		return err
	}
	logger.Log.Info("Пользователь зарегистрирован (service)", zap.String("username", username))
	return nil
}

// LoginUser проверяет пару логин/пароль и выдаёт сессионный токен.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, *models.User, error) {
	logger.Log.Info("Попытка входа (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Warn("Пользователь не найден (service)", zap.String("username", username), zap.Error(err))
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Log.Warn("Неверный пароль (service)", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueSession(user.Username, user.Email)
	if err != nil {
		logger.Log.Error("Ошибка генерации сессионного токена", zap.Error(err))
		return "", nil, err
	}

	logger.Log.Info("Вход выполнен (service)", zap.String("username", username))
	return token, user, nil
}
