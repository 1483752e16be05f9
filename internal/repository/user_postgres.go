package repository

import (
	"context"
	"errors"
	"selfrental/internal/logger"
	"selfrental/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresUserRepository — тот же контракт хранилища поверх Postgres.
// Уникальность username/email обеспечивают констрейнты таблицы,
// потоки авторизации при подмене драйвера не меняются.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT username, email, password_hash FROM users WHERE username = $1`, username)

	var u models.User
	if err := row.Scan(&u.Username, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT username, email, password_hash FROM users WHERE lower(email) = lower($1)`, email)

	var u models.User
	if err := row.Scan(&u.Username, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT username, email, password_hash FROM users WHERE username = $1 OR email = $2 LIMIT 1`,
		username, email)

	var u models.User
	if err := row.Scan(&u.Username, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)`,
		user.Username, user.Email, user.PasswordHash,
	)
	if err != nil {
		logger.Log.Error("Создание пользователя не удалось", zap.Error(err), zap.String("username", user.Username))
	}
	return err
}

func (r *PostgresUserRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE lower(email) = lower($2)`,
		passwordHash, email,
	)
	if err != nil {
		logger.Log.Error("Обновление пароля не удалось", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
