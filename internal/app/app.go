package app

import (
	"fmt"
	"selfrental/internal/config"
	"selfrental/internal/db"
	"selfrental/internal/handlers"
	"selfrental/internal/repository"
	"selfrental/internal/routes"
	"selfrental/internal/services"
	"time"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	// Хранилище: users.json по умолчанию, Postgres — по конфигу.
	// Потоки авторизации не знают, какой драйвер под ними.
	var userRepo services.UserRepo
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := db.NewPostgresConnection(cfg)
		if err != nil {
			return nil, err
		}
		userRepo = repository.NewPostgresUserRepository(pool)
	case "file":
		userRepo = repository.NewFileUserRepository(cfg.UsersFile)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("bad SESSION_TOKEN_TTL: %w", err)
	}
	resetTTL, err := time.ParseDuration(cfg.ResetTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("bad RESET_TOKEN_TTL: %w", err)
	}

	// Сервисы
	tokenService := services.NewTokenService(cfg.JWTSecret, sessionTTL, resetTTL)
	authService := services.NewAuthService(userRepo, tokenService)
	emailService := services.NewEmailService(cfg)
	passwordService := services.NewPasswordService(userRepo, tokenService, emailService, cfg.SiteURL)

	// Хендлеры
	pageHandler := handlers.NewPageHandler()
	authHandler := handlers.NewAuthHandler(authService)
	passwordHandler := handlers.NewPasswordHandler(passwordService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, tokenService, pageHandler, authHandler, passwordHandler)

	return router, nil
}
